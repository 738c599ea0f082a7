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

// EncodingMode is the bit-stream mode indicator of a segment: the 4-bit tag
// that precedes its character-count indicator and payload.
type EncodingMode struct {
	modeBits int8
	numBits  [3]int8 // character-count indicator width for version bands 1-9, 10-26, 27-40
}

// EncodingMode values. eci is not user-selectable; it is emitted internally
// as the prefix of a Unicode segment.
var (
	numericMode      = EncodingMode{0b0001, [3]int8{10, 12, 14}}
	alphanumericMode = EncodingMode{0b0010, [3]int8{9, 11, 13}}
	byteMode         = EncodingMode{0b0100, [3]int8{8, 16, 16}}
	eciMode          = EncodingMode{0b0111, [3]int8{0, 0, 0}}
)

// numCharCountBits returns the character-count indicator width for the given
// version, per ISO/IEC 18004 Table 3.
func (m EncodingMode) numCharCountBits(version Version) int {
	switch {
	case version <= 9:
		return int(m.numBits[0])
	case version <= 26:
		return int(m.numBits[1])
	default:
		return int(m.numBits[2])
	}
}

// CharacterSet is the result of scanning a payload string once and picking
// the most restrictive representation that can hold it (§4.3).
type CharacterSet int8

const (
	// Numeric holds only ASCII digits.
	Numeric CharacterSet = iota
	// Alphanumeric holds digits, uppercase letters, space, and $%*+-./:.
	Alphanumeric
	// Iso8859_1 holds any code point in [0, 0xFF], encoded in Byte mode
	// without an ECI prefix.
	Iso8859_1
	// Unicode holds arbitrary text, encoded as UTF-8 bytes in Byte mode with
	// a preceding ECI designator (26 = UTF-8).
	Unicode
)

// eciUTF8 is the ECI designator value for UTF-8 (ISO/IEC 18004 Annex C).
const eciUTF8 = 26

// encodingMode returns the bit-stream mode used to encode this character
// set. Unicode shares Byte mode with Iso8859_1; its ECI prefix is emitted
// separately by the segment encoder.
func (c CharacterSet) encodingMode() EncodingMode {
	switch c {
	case Numeric:
		return numericMode
	case Alphanumeric:
		return alphanumericMode
	default:
		return byteMode
	}
}

// String names the character set, for diagnostics.
func (c CharacterSet) String() string {
	switch c {
	case Numeric:
		return "Numeric"
	case Alphanumeric:
		return "Alphanumeric"
	case Iso8859_1:
		return "Iso8859_1"
	case Unicode:
		return "Unicode"
	default:
		return "Invalid"
	}
}
