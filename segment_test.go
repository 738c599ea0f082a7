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
	"testing"

	"github.com/stretchr/testify/assert"
)

func bufferBits(b *buffer) []int {
	bits := make([]int, b.BitLen())
	for i := range bits {
		bits[i] = b.bitAt(i)
	}
	return bits
}

func TestDetectCharacterSet(t *testing.T) {
	cases := []struct {
		text string
		want CharacterSet
	}{
		{"", Numeric},
		{"0123456789", Numeric},
		{"HELLO WORLD", Alphanumeric},
		{"hello", Iso8859_1},
		{"café", Iso8859_1},
		{"日本語", Unicode},
		{"hi ☃", Unicode},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, detectCharacterSet(tc.text))
		})
	}
}

func TestEncodeNumericPayload(t *testing.T) {
	cases := []struct {
		text string
		bits []int
	}{
		{"", []int{}},
		{"9", []int{1, 0, 0, 1}},
		{"81", []int{1, 0, 1, 0, 0, 0, 1}},
		{"673", []int{1, 0, 1, 0, 1, 0, 0, 0, 0, 1}},
		{"3141592653", []int{
			0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1,
			1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			b := encodeNumericPayload(tc.text)
			assert.Equal(t, tc.bits, bufferBits(b))
		})
	}
}

func TestEncodeAlphanumericPayload(t *testing.T) {
	cases := []struct {
		text string
		bits []int
	}{
		{"", []int{}},
		{"A", []int{0, 0, 1, 0, 1, 0}},
		{"%:", []int{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0}},
		{"Q R", []int{1, 0, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			b := encodeAlphanumericPayload(tc.text)
			assert.Equal(t, tc.bits, bufferBits(b))
		})
	}
}

func TestEncodeBytePayload(t *testing.T) {
	b := encodeBytePayload([]byte{0xEF, 0xBB, 0xBF})
	assert.Equal(t, 24, b.BitLen())
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, b.Data())
}

func TestEciPrefixPayload(t *testing.T) {
	cases := []struct {
		designator int
		bits       []int
	}{
		{127, []int{0, 1, 1, 1, 1, 1, 1, 1}},
		{10345, []int{1, 0, 1, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1}},
		{999999, []int{1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.designator), func(t *testing.T) {
			b, err := eciPrefixPayload(tc.designator)
			assert.NoError(t, err)
			assert.Equal(t, tc.bits, bufferBits(b))
		})
	}
}

func TestEciPrefixPayloadOutOfRange(t *testing.T) {
	_, err := eciPrefixPayload(1_000_000)
	assert.Error(t, err)
}

func TestBuildSegmentsNumeric(t *testing.T) {
	segs, err := buildSegments("12345", Numeric)
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, numericMode, segs[0].mode)
	assert.Equal(t, 5, segs[0].numChars)
}

func TestBuildSegmentsUnicodeAddsEciPrefix(t *testing.T) {
	segs, err := buildSegments("résumé", Unicode)
	assert.NoError(t, err)
	assert.Len(t, segs, 2)
	assert.Equal(t, eciMode, segs[0].mode)
	assert.Equal(t, byteMode, segs[1].mode)
	assert.Equal(t, 8, segs[1].numChars) // UTF-8 byte count ("résumé" has 2 two-byte runes), not rune count.
}

func TestBuildSegmentsIso8859_1UsesCodePoints(t *testing.T) {
	segs, err := buildSegments("café", Iso8859_1)
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, byteMode, segs[0].mode)
	assert.Equal(t, 4, segs[0].numChars) // 4 code points, not 5 UTF-8 bytes.
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, segs[0].payload.Data())
}

func TestTotalBits(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		bits, ok := totalBits(nil, 1)
		assert.True(t, ok)
		assert.Equal(t, 0, bits)
	})

	t.Run("single byte segment", func(t *testing.T) {
		segs := []Segment{{mode: byteMode, numChars: 3, payload: newBuffer(24)}}
		for i := 0; i < 24; i++ {
			segs[0].payload.AppendBit(0)
		}
		bits, ok := totalBits(segs, 2)
		assert.True(t, ok)
		assert.Equal(t, 36, bits) // 4 (mode) + 8 (count) + 24 (payload)

		bits, ok = totalBits(segs, 10)
		assert.True(t, ok)
		assert.Equal(t, 44, bits) // 16-bit count indicator at version 10
	})

	t.Run("character count overflow", func(t *testing.T) {
		segs := []Segment{{mode: byteMode, numChars: 4093, payload: newBuffer(0)}}
		_, ok := totalBits(segs, 1) // 8-bit indicator tops out at 255
		assert.False(t, ok)
	})
}
