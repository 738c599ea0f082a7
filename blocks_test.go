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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBlockLengths(t *testing.T) {
	// Version 5-Q: 2 blocks of 15 data codewords, 2 blocks of 16 (Table 9).
	blocks := computeBlockLengths(5, Quartile)
	assert.Len(t, blocks, 4)
	assert.Equal(t, 15, blocks[0].DataLen)
	assert.Equal(t, 15, blocks[1].DataLen)
	assert.Equal(t, 16, blocks[2].DataLen)
	assert.Equal(t, 16, blocks[3].DataLen)
	assert.Equal(t, 0, blocks[0].DataPos)
	assert.Equal(t, 15, blocks[1].DataPos)
	assert.Equal(t, 30, blocks[2].DataPos)
	assert.Equal(t, 46, blocks[3].DataPos)

	total := 0
	for _, b := range blocks {
		total += b.DataLen
	}
	assert.Equal(t, Version(5).DataCodewordCount(Quartile), total)
}

func TestErrorCorrectAndInterleaveLength(t *testing.T) {
	for _, v := range []Version{1, 5, 7, 27, 40} {
		for _, ecc := range []ECC{Low, Medium, Quartile, High} {
			data := make([]byte, v.DataCodewordCount(ecc))
			for i := range data {
				data[i] = byte(i)
			}
			out, err := errorCorrectAndInterleave(data, v, ecc)
			assert.NoError(t, err)
			assert.Equal(t, v.TotalCodewordCount(), len(out))
		}
	}
}

func TestErrorCorrectAndInterleaveRejectsWrongLength(t *testing.T) {
	_, err := errorCorrectAndInterleave([]byte{1, 2, 3}, 5, Quartile)
	assert.ErrorIs(t, err, ErrEncodingViolation)
}
