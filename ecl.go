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

// ECC is the error correction level of a QR code symbol, ordered from
// weakest to strongest recovery capacity.
type ECC int8

// ECC values, in increasing order of error-correction strength.
const (
	Low      ECC = iota // Recovers ~7% of lost codewords.
	Medium              // Recovers ~15% of lost codewords.
	Quartile            // Recovers ~25% of lost codewords.
	High                // Recovers ~30% of lost codewords.
)

// String returns a human-readable name for the level.
func (e ECC) String() string {
	switch e {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case Quartile:
		return "Quartile"
	case High:
		return "High"
	default:
		return "Invalid"
	}
}

// formatBits returns the 2-bit ECC indicator used by the format information
// (ISO/IEC 18004 Table 25); these bits are not in level order.
func (e ECC) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrcode: unknown ECC level")
	}
}

// Increment returns the next stronger error-correction level and true, or
// (High, false) if e is already the strongest level. Used to "boost" ECC
// when a payload still fits at a stronger level (§4.4 step 3).
func (e ECC) Increment() (ECC, bool) {
	if e >= High {
		return High, false
	}
	return e + 1, true
}
