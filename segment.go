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

import (
	"fmt"
	"strconv"
	"strings"
)

// alphanumericCharset lists the 45 characters the Alphanumeric mode can
// represent; a character's index in this string is its encoded value.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// bitAt returns the i-th bit (MSB-first within its byte) of a packed
// buffer, so a finished segment's payload can be re-appended bit-by-bit
// into the symbol's master bit stream.
func (b *buffer) bitAt(i int) int {
	return int(b.bytes[i/8]>>(7-uint(i%8))) & 1
}

// AppendBuffer appends every bit already written to other onto b, in order.
func (b *buffer) AppendBuffer(other *buffer) {
	for i := 0; i < other.bitLen; i++ {
		b.AppendBit(other.bitAt(i))
	}
}

// Segment is one mode-tagged unit of a symbol's data stream: a mode
// indicator, a character-count indicator, and an encoded payload.
type Segment struct {
	mode     EncodingMode
	numChars int
	payload  *buffer
}

// detectCharacterSet walks text once and returns the most restrictive
// character set that can represent every character, per §4.3:
// Numeric < Alphanumeric < Iso8859_1 < Unicode.
func detectCharacterSet(text string) CharacterSet {
	allNumeric := true
	allAlphanumeric := true
	allLatin1 := true

	for _, r := range text {
		if r < '0' || r > '9' {
			allNumeric = false
		}
		if strings.IndexRune(alphanumericCharset, r) < 0 {
			allAlphanumeric = false
		}
		if r > 0xFF {
			allLatin1 = false
		}
		if !allAlphanumeric && !allLatin1 {
			break // Already forced to Unicode; no need to keep scanning.
		}
	}

	switch {
	case allNumeric:
		return Numeric
	case allAlphanumeric:
		return Alphanumeric
	case allLatin1:
		return Iso8859_1
	default:
		return Unicode
	}
}

// encodeNumericPayload packs digits 3-at-a-time into 10-bit groups, with a
// 7-bit group for a trailing pair and a 4-bit group for a trailing single
// digit.
func encodeNumericPayload(digits string) *buffer {
	b := newBuffer(10 * (len(digits)/3 + 1))
	for i := 0; i < len(digits); {
		n := len(digits) - i
		if n > 3 {
			n = 3
		}
		value, _ := strconv.Atoi(digits[i : i+n]) // detectCharacterSet already guarantees digits-only.
		b.AppendNumber(value, n*3+1)               // n=3->10, n=2->7, n=1->4 bits.
		i += n
	}
	return b
}

// encodeAlphanumericPayload packs characters two at a time as 45*c1+c2 in
// 11 bits, with a 6-bit group for a trailing single character.
func encodeAlphanumericPayload(text string) *buffer {
	b := newBuffer(11 * (len(text)/2 + 1))
	i := 0
	for ; i+1 < len(text); i += 2 {
		v1 := strings.IndexByte(alphanumericCharset, text[i])
		v2 := strings.IndexByte(alphanumericCharset, text[i+1])
		b.AppendNumber(v1*45+v2, 11)
	}
	if i < len(text) {
		v := strings.IndexByte(alphanumericCharset, text[i])
		b.AppendNumber(v, 6)
	}
	return b
}

// encodeBytePayload emits one 8-bit codeword per input byte.
func encodeBytePayload(data []byte) *buffer {
	b := newBuffer(8 * len(data))
	b.AppendBytes(data)
	return b
}

// eciPrefixPayload encodes an ECI designator per ISO/IEC 18004 Annex C's
// variable-width assignment encoding: 8 bits below 128, 2+14 bits below
// 16384, 3+21 bits otherwise.
func eciPrefixPayload(designator int) (*buffer, error) {
	b := newBuffer(24)
	switch {
	case designator < 1<<7:
		b.AppendNumber(designator, 8)
	case designator < 1<<14:
		b.AppendNumber(0b10, 2)
		b.AppendNumber(designator, 14)
	case designator < 1_000_000:
		b.AppendNumber(0b110, 3)
		b.AppendNumber(designator, 21)
	default:
		return nil, fmt.Errorf("qrcode: ECI designator %d out of range", designator)
	}
	return b, nil
}

// buildSegments turns text into the ordered list of segments that make up
// its data stream: a single payload segment for Numeric/Alphanumeric/
// Iso8859_1, or an ECI segment followed by a Byte-mode UTF-8 payload
// segment for Unicode (§4.3, §9 Open Question resolution).
func buildSegments(text string, charset CharacterSet) ([]Segment, error) {
	switch charset {
	case Numeric:
		return []Segment{{mode: numericMode, numChars: len(text), payload: encodeNumericPayload(text)}}, nil
	case Alphanumeric:
		return []Segment{{mode: alphanumericMode, numChars: len(text), payload: encodeAlphanumericPayload(text)}}, nil
	case Iso8859_1:
		data := make([]byte, 0, len(text))
		for _, r := range text {
			data = append(data, byte(r)) // detectCharacterSet guarantees r <= 0xFF.
		}
		return []Segment{{mode: byteMode, numChars: len(data), payload: encodeBytePayload(data)}}, nil
	case Unicode:
		eci, err := eciPrefixPayload(eciUTF8)
		if err != nil {
			return nil, err
		}
		data := []byte(text)
		return []Segment{
			{mode: eciMode, numChars: 0, payload: eci},
			{mode: byteMode, numChars: len(data), payload: encodeBytePayload(data)},
		}, nil
	default:
		return nil, fmt.Errorf("qrcode: unknown character set %v", charset)
	}
}

// totalBits returns the number of bits segs would occupy at the given
// version, including every segment's mode indicator and character-count
// indicator, or ok=false if any segment's character count overflows its
// indicator's width.
func totalBits(segs []Segment, version Version) (bits int, ok bool) {
	for _, seg := range segs {
		ccBits := seg.mode.numCharCountBits(version)
		if ccBits > 0 && seg.numChars >= 1<<ccBits {
			return 0, false
		}
		bits += 4 + ccBits + seg.payload.bitLen
	}
	return bits, true
}
