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

package qrcode

import "fmt"

// Color is the color of a single module: White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// Inverse flips the color.
func (c Color) Inverse() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// moduleKind tags which of the four states (§3) a Module is in.
type moduleKind uint8

const (
	kindEmpty moduleKind = iota
	kindFilled
	kindStatic
	kindReserved
)

// Module is one cell of the symbol grid. The zero value is Empty.
//   - Empty: in the data region, not yet placed.
//   - Filled(Color): a placed data-region bit; maskable.
//   - Static(Color): a function pattern or written format/version bit; not
//     maskable.
//   - Reserved: format/version region awaiting a later write.
type Module struct {
	kind  moduleKind
	color Color
}

func filledModule(c Color) Module   { return Module{kind: kindFilled, color: c} }
func staticModule(c Color) Module   { return Module{kind: kindStatic, color: c} }
func reservedModule() Module        { return Module{kind: kindReserved} }
func boolToStatic(black bool) Module {
	if black {
		return staticModule(Black)
	}
	return staticModule(White)
}

// IsEmpty reports whether this module is unplaced data-region space.
func (m Module) IsEmpty() bool { return m.kind == kindEmpty }

// IsFilled reports whether this is a placed, maskable data-region module.
func (m Module) IsFilled() bool { return m.kind == kindFilled }

// IsStatic reports whether this is a function-pattern or written
// format/version module; these are never maskable.
func (m Module) IsStatic() bool { return m.kind == kindStatic }

// IsReserved reports whether this module is format/version space awaiting
// a write.
func (m Module) IsReserved() bool { return m.kind == kindReserved }

// Color returns the module's color. It is meaningful only for Filled and
// Static modules; Empty and Reserved modules have no color yet.
func (m Module) Color() Color { return m.color }

// Coordinate is an (X, Y) position in a Matrix: X is the row, Y is the
// column, origin top-left (§3).
type Coordinate struct {
	X, Y int
}

// Matrix is the square module grid a symbol is built in.
type Matrix struct {
	cells [][]Module
	size  int
}

func newMatrix(size int) *Matrix {
	cells := make([][]Module, size)
	for i := range cells {
		cells[i] = make([]Module, size)
	}
	return &Matrix{cells: cells, size: size}
}

// Size returns the logical side length, in modules.
func (m *Matrix) Size() int { return m.size }

// At returns the module at c.
func (m *Matrix) At(c Coordinate) Module { return m.cells[c.X][c.Y] }

func (m *Matrix) set(row, col int, mod Module) { m.cells[row][col] = mod }

func (m *Matrix) inBounds(row, col int) bool {
	return 0 <= row && row < m.size && 0 <= col && col < m.size
}

// fillSymbol paints every function pattern (finder+separator, timing,
// alignment), reserves the format and version-information regions, and
// leaves everything else Empty (§4.7).
func (m *Matrix) fillSymbol(v Version) {
	m.drawTimingPatterns()
	m.drawFinderPattern(3, 3)
	m.drawFinderPattern(m.size-4, 3)
	m.drawFinderPattern(3, m.size-4)
	m.drawAlignmentPatterns(v)
	m.reserveFormatRegion()
	m.reserveVersionRegion(v)
}

// drawTimingPatterns paints row 6 and column 6 with alternating modules,
// black at even coordinates, between the finder patterns.
func (m *Matrix) drawTimingPatterns() {
	for i := 0; i < m.size; i++ {
		m.set(6, i, boolToStatic(i%2 == 0))
		m.set(i, 6, boolToStatic(i%2 == 0))
	}
}

// drawFinderPattern paints a 9x9 region (7x7 finder plus its 1-module
// white separator ring) centered at (centerRow, centerCol). Painting the
// separator as part of the same square (rather than as a distinct second
// pass) is what the reference this is modeled on does; the result is
// identical to painting them separately.
func (m *Matrix) drawFinderPattern(centerRow, centerCol int) {
	for dRow := -4; dRow <= 4; dRow++ {
		for dCol := -4; dCol <= 4; dCol++ {
			dist := maxInt(absInt(dRow), absInt(dCol))
			row, col := centerRow+dRow, centerCol+dCol
			if m.inBounds(row, col) {
				m.set(row, col, boolToStatic(dist != 2 && dist != 4))
			}
		}
	}
}

// drawAlignmentPattern paints a 5x5 pattern (black frame, white ring,
// black center) centered at (centerRow, centerCol).
func (m *Matrix) drawAlignmentPattern(centerRow, centerCol int) {
	for dRow := -2; dRow <= 2; dRow++ {
		for dCol := -2; dCol <= 2; dCol++ {
			m.set(centerRow+dRow, centerCol+dCol, boolToStatic(maxInt(absInt(dRow), absInt(dCol)) != 1))
		}
	}
}

// drawAlignmentPatterns paints every alignment pattern for v, skipping the
// three combinations that would overlap a finder pattern (§4.7).
func (m *Matrix) drawAlignmentPatterns(v Version) {
	centers := v.alignmentPatternCenters()
	n := len(centers)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue // Overlaps a finder pattern; skip.
			}
			m.drawAlignmentPattern(centers[i], centers[j])
		}
	}
}

// reserveFormatRegion marks the format-information strips alongside the
// top-left finder, plus the corresponding strips mirrored along the other
// two finders, as Reserved (§4.7 step 2). format.go overwrites these with
// Static modules once the format bits are known.
func (m *Matrix) reserveFormatRegion() {
	for i := 0; i <= 5; i++ {
		m.set(i, 8, reservedModule())
	}
	m.set(7, 8, reservedModule())
	m.set(8, 8, reservedModule())
	m.set(8, 7, reservedModule())
	for i := 9; i < 15; i++ {
		m.set(8, 14-i, reservedModule())
	}

	for i := 0; i < 8; i++ {
		m.set(8, m.size-1-i, reservedModule())
	}
	for i := 8; i < 15; i++ {
		m.set(m.size-15+i, 8, reservedModule())
	}
	m.set(m.size-8, 8, reservedModule()) // The always-black "dark module".
}

// reserveVersionRegion marks the two 6x3 version-information blocks as
// Reserved for versions >= 7; versions below 7 carry no version
// information (§4.10, supplemented feature).
func (m *Matrix) reserveVersionRegion(v Version) {
	if v < 7 {
		return
	}
	for i := 0; i < 18; i++ {
		row, col := i/3, m.size-11+i%3
		m.set(row, col, reservedModule())
		m.set(col, row, reservedModule())
	}
}

// positionWalkOrder returns every data-region coordinate in the QR zig-zag
// placement order (§4.8): starting at the bottom-right corner, sweeping
// two-column strips that alternate direction, skipping the column-6
// timing strip.
func positionWalkOrder(size int) []Coordinate {
	order := make([]Coordinate, 0, size*size)
	for col := size - 1; col >= 1; col -= 2 {
		if col == 6 {
			col = 5
		}
		for i := 0; i < size; i++ {
			upward := (col+1)&2 == 0
			row := i
			if upward {
				row = size - 1 - i
			}
			order = append(order, Coordinate{X: row, Y: col})
			order = append(order, Coordinate{X: row, Y: col - 1})
		}
	}
	return order
}

// placeCodewords walks the position order and writes codewords MSB-first
// into every Empty module it finds, skipping Static/Reserved modules
// (§4.8). A short tail of "remainder bits" (0-7, depending on version) may
// remain after the last codeword bit; these are data-region modules with
// no assigned meaning, so they are filled White rather than left Empty,
// preserving the "no Empty module survives placement" invariant. Returns
// ErrEncodingViolation if the position walker runs out of Empty modules
// before the codeword stream does, or vice versa.
func (m *Matrix) placeCodewords(codewords []byte) error {
	order := positionWalkOrder(m.size)
	totalBits := len(codewords) * 8
	bitIndex := 0
	remainder := 0

	for _, c := range order {
		if !m.At(c).IsEmpty() {
			continue
		}
		if bitIndex < totalBits {
			bit := codewords[bitIndex/8] >> uint(7-bitIndex%8) & 1
			color := White
			if bit == 1 {
				color = Black
			}
			m.set(c.X, c.Y, filledModule(color))
			bitIndex++
		} else {
			m.set(c.X, c.Y, filledModule(White)) // Remainder bit.
			remainder++
		}
	}

	if bitIndex != totalBits {
		return fmt.Errorf("%w: placed %d of %d codeword bits", ErrEncodingViolation, bitIndex, totalBits)
	}
	if remainder > 7 {
		return fmt.Errorf("%w: %d data modules left after the last codeword bit", ErrEncodingViolation, remainder)
	}
	return nil
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
