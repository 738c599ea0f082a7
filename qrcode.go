/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package qrcode builds QR Code symbols (ISO/IEC 18004) from text: it picks
// an encoding, an error-correction level and a symbol version, lays out the
// function patterns and codewords, and selects a masking pattern, returning
// the finished module grid.
package qrcode

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultQuietZone is the number of all-white modules DrawIter and String
// pad the symbol with by default (§4.11).
const defaultQuietZone = 4

var padCodewords = [2]byte{0xEC, 0x11}

// Builder assembles a QrCode from text and a set of constraints, using
// chainable setter methods: each setter returns the receiver so calls can
// be chained, and Build() runs the pipeline once all constraints are in
// place (§4.12).
type Builder struct {
	text          string
	versionC      VersionConstraint
	eccC          ECCConstraint
	mask          MaskPattern
	maskSpecified bool
}

// NewBuilder starts a Builder for text with the most permissive defaults:
// any version up to MaxVersion, at least Low error correction, and an
// automatically chosen mask.
func NewBuilder(text string) *Builder {
	return &Builder{
		text:     text,
		versionC: maxVersionConstraint(MaxVersion),
		eccC:     minECCConstraint(Low),
	}
}

// MaxVersion restricts the symbol to v or smaller; the builder still picks
// the smallest version the payload fits in.
func (b *Builder) MaxVersion(v Version) *Builder {
	b.versionC = maxVersionConstraint(v)
	return b
}

// SpecificVersion fixes the symbol to exactly v, disabling auto-shrinking.
func (b *Builder) SpecificVersion(v Version) *Builder {
	b.versionC = specificVersionConstraint(v)
	return b
}

// MinErrorCorrection requires at least e; the builder still boosts to a
// stronger level when the payload has room to spare at the chosen version.
func (b *Builder) MinErrorCorrection(e ECC) *Builder {
	b.eccC = minECCConstraint(e)
	return b
}

// SpecificErrorCorrection fixes the error-correction level to exactly e,
// disabling auto-boosting.
func (b *Builder) SpecificErrorCorrection(e ECC) *Builder {
	b.eccC = specificECCConstraint(e)
	return b
}

// MaskReference fixes the mask pattern instead of letting Build choose the
// one with the lowest penalty score.
func (b *Builder) MaskReference(m MaskPattern) *Builder {
	b.mask = m
	b.maskSpecified = true
	return b
}

// QrCode is a finished, immutable QR Code symbol: a module grid plus the
// version, error-correction level, and mask pattern it was built with.
type QrCode struct {
	version Version
	ecc     ECC
	mask    MaskPattern
	matrix  *Matrix
}

// Version returns the symbol's version.
func (q *QrCode) Version() Version { return q.version }

// ErrorCorrectionLevel returns the symbol's error-correction level.
func (q *QrCode) ErrorCorrectionLevel() ECC { return q.ecc }

// Mask returns the mask pattern applied to the symbol.
func (q *QrCode) Mask() MaskPattern { return q.mask }

// Size returns the symbol's side length, in modules, excluding any quiet
// zone.
func (q *QrCode) Size() int { return q.matrix.Size() }

// At returns the color of the module at (row, col), with row and col in
// [0, Size()).
func (q *QrCode) At(row, col int) Color {
	return q.matrix.cells[row][col].Color()
}

// Build runs the full symbol-construction pipeline (§4): select a version
// and error-correction level, encode and pad the bit stream, compute and
// interleave Reed-Solomon codewords, lay out function patterns and data,
// choose or apply a mask, and write format/version information.
func (b *Builder) Build() (q *QrCode, err error) {
	defer func() {
		if r := recover(); r != nil {
			q = nil
			err = fmt.Errorf("%w: %v", ErrEncodingViolation, r)
		}
	}()

	if b.text == "" {
		return nil, fmt.Errorf("%w: missing payload text", ErrInvalidConfiguration)
	}

	sel, err := selectVersionAndECC(b.text, b.versionC, b.eccC)
	if err != nil {
		return nil, err
	}

	if b.maskSpecified && !b.mask.Valid() {
		return nil, fmt.Errorf("%w: mask pattern %d", ErrInvalidConfiguration, b.mask)
	}

	capacityBits := sel.version.DataCodewordCount(sel.ecc) * 8
	data := newBuffer(capacityBits)
	for _, seg := range sel.segs {
		data.AppendNumber(int(seg.mode.modeBits), 4)
		if ccBits := seg.mode.numCharCountBits(sel.version); ccBits > 0 {
			data.AppendNumber(seg.numChars, ccBits)
		}
		data.AppendBuffer(seg.payload)
	}

	terminatorBits := capacityBits - data.BitLen()
	if terminatorBits > 4 {
		terminatorBits = 4
	}
	for i := 0; i < terminatorBits; i++ {
		data.AppendBit(0)
	}
	for data.BitLen()%8 != 0 {
		data.AppendBit(0)
	}
	for i := 0; data.BitLen() < capacityBits; i++ {
		data.AppendByte(padCodewords[i%2])
	}

	codewords, err := errorCorrectAndInterleave(data.Data(), sel.version, sel.ecc)
	if err != nil {
		return nil, err
	}

	matrix := newMatrix(sel.version.Width())
	matrix.fillSymbol(sel.version)
	if err := matrix.placeCodewords(codewords); err != nil {
		return nil, err
	}

	mask := b.mask
	if b.maskSpecified {
		matrix.applyMask(mask)
	} else {
		mask = chooseMaskPattern(matrix)
	}

	matrix.writeFormatInformation(sel.ecc, mask)
	matrix.writeVersionInformation(sel.version)

	return &QrCode{version: sel.version, ecc: sel.ecc, mask: mask, matrix: matrix}, nil
}

// DrawIter calls visit once for every module in row-major order, including
// a surrounding quiet zone of all-White modules quietZone modules wide on
// each side (§4.11). Coordinates outside [0, Size()) identify quiet-zone
// modules.
func (q *QrCode) DrawIter(quietZone int, visit func(c Coordinate, color Color)) {
	size := q.matrix.Size()
	for x := -quietZone; x < size+quietZone; x++ {
		for y := -quietZone; y < size+quietZone; y++ {
			color := White
			if x >= 0 && x < size && y >= 0 && y < size {
				color = q.matrix.cells[x][y].Color()
			}
			visit(Coordinate{X: x, Y: y}, color)
		}
	}
}

// String renders the symbol as half-block Unicode characters suitable for
// a monospace terminal, with the default quiet zone.
func (q *QrCode) String() string {
	size := q.matrix.Size() + 2*defaultQuietZone
	colors := make([][]Color, size)
	for i := range colors {
		colors[i] = make([]Color, size)
	}
	q.DrawIter(defaultQuietZone, func(c Coordinate, color Color) {
		colors[c.X+defaultQuietZone][c.Y+defaultQuietZone] = color
	})

	var sb strings.Builder
	for row := 0; row < size; row += 2 {
		for col := 0; col < size; col++ {
			top := colors[row][col] == Black
			bottom := row+1 < size && colors[row+1][col] == Black
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top && !bottom:
				sb.WriteRune('▀')
			case !top && bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ToSVGString renders the symbol as a standalone SVG document: a white
// background <rect> and a single <path> holding one unit square per dark
// module, with border modules of quiet zone on each side.
func (q *QrCode) ToSVGString(border int) string {
	if border < 0 {
		border = 0
	}
	dim := q.matrix.Size() + border*2

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 `)
	sb.WriteString(strconv.Itoa(dim))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(dim))
	sb.WriteString(`" stroke="none">` + "\n")
	sb.WriteString(`<rect width="100%" height="100%" fill="#FFFFFF"/>` + "\n")
	sb.WriteString(`<path d="`)

	q.DrawIter(0, func(c Coordinate, color Color) {
		if color != Black {
			return
		}
		fmt.Fprintf(&sb, "M%d,%dh1v1h-1z ", c.Y+border, c.X+border)
	})

	sb.WriteString(`" fill="#000000"/>` + "\n")
	sb.WriteString("</svg>\n")
	return sb.String()
}
