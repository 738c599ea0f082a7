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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator and
 * https://github.com/grkuntzmd/qrcodegen. See
 * https://www.thonky.com/qr-code-tutorial/introduction and ISO/IEC 18004
 * for the tables these functions reproduce.
 */

package qrcode

// Version identifies a QR code symbol's size class, 1..=40.
type Version int

// MinVersion and MaxVersion bound the versions this package can produce.
// Symbols are square with side length Width(v) = v*4 + 17: version 1 is
// 21x21, version 40 is 177x177.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// Width returns the side length, in modules, of a symbol at this version.
func (v Version) Width() int {
	return int(v)*4 + 17
}

// Valid reports whether v is within [MinVersion, MaxVersion].
func (v Version) Valid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// eccCodewordsPerBlock[ecc][version] is the number of error-correction
// codewords contributed by each block, copied verbatim from ISO/IEC 18004
// Table 9 (index 0 is unused padding).
var eccCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
}

// errorCorrectionBlockCount[ecc][version] is the number of Reed-Solomon
// blocks a symbol is split into, copied verbatim from ISO/IEC 18004 Table 9.
var errorCorrectionBlockCount = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
}

// rawDataModules returns the number of bits available for codewords (data +
// ECC, including any unused remainder bits) at this version, after
// excluding every function pattern. This is a pure computation, not a
// lookup table: it follows directly from the geometry of the finder,
// timing, alignment, and version-information patterns.
func (v Version) rawDataModules() int {
	result := (16*int(v)+128)*int(v) + 64
	if v >= 2 {
		numAlign := int(v)/7 + 2
		result -= (25*numAlign-10)*numAlign - 55 // Subtract alignment patterns.
		if v >= 7 {
			result -= 36 // Subtract version information.
		}
	}
	return result
}

// TotalCodewordCount returns the total number of 8-bit codewords (data plus
// error correction) a symbol at this version carries.
func (v Version) TotalCodewordCount() int {
	return v.rawDataModules() / 8
}

// ErrorCorrectionCodewordBlocks returns the total number of ECC codewords
// across all blocks, and the number of blocks, for (v, ecc). It is always
// true that totalECC % blockCount == 0 (§4.2 invariant 1).
func (v Version) ErrorCorrectionCodewordBlocks(ecc ECC) (totalECC, blockCount int) {
	blockCount = errorCorrectionBlockCount[ecc][v]
	totalECC = eccCodewordsPerBlock[ecc][v] * blockCount
	return totalECC, blockCount
}

// DataCodewordCount returns the number of data (non-ECC) codewords carried
// at (v, ecc).
func (v Version) DataCodewordCount(ecc ECC) int {
	totalECC, _ := v.ErrorCorrectionCodewordBlocks(ecc)
	return v.TotalCodewordCount() - totalECC
}

// alignmentPatternCenters returns the ascending list of row/column centers
// at which alignment patterns are placed for this version (ISO/IEC 18004
// Table E.1's generating algorithm, not its literal table). Every
// combination of two centers from this list is a candidate alignment
// pattern center, except the three combinations that coincide with a
// finder pattern (§4.7).
func (v Version) alignmentPatternCenters() []int {
	if v == 1 {
		return nil
	}

	numAlign := int(v)/7 + 2
	var step int
	if v == 32 { // Irregular spacing; called out explicitly by the standard.
		step = 26
	} else {
		step = (int(v)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, v.Width()-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}
