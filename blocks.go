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

// BlockLength describes one Reed-Solomon block's position within the
// unsplit data-codeword and ECC-codeword streams (§3, §4.6).
type BlockLength struct {
	BlockNumber int
	BlockCount  int
	DataPos     int
	DataLen     int
	EccPos      int
	EccLen      int
}

// computeBlockLengths splits DataCodewordCount(v, ecc) data codewords into
// ErrorCorrectionCodewordBlocks(v, ecc)'s block count. The first
// (blockCount - dataCodewords%blockCount) blocks get the shorter length;
// the remainder are one codeword longer, per ISO/IEC 18004 §6.5.2.
func computeBlockLengths(v Version, ecc ECC) []BlockLength {
	totalECC, blockCount := v.ErrorCorrectionCodewordBlocks(ecc)
	eccLen := totalECC / blockCount
	dataTotal := v.DataCodewordCount(ecc)
	short := dataTotal / blockCount
	longBlocksFrom := blockCount - dataTotal%blockCount

	blocks := make([]BlockLength, blockCount)
	dataPos, eccPos := 0, dataTotal
	for i := 0; i < blockCount; i++ {
		dataLen := short
		if i >= longBlocksFrom {
			dataLen = short + 1
		}
		blocks[i] = BlockLength{
			BlockNumber: i,
			BlockCount:  blockCount,
			DataPos:     dataPos,
			DataLen:     dataLen,
			EccPos:      eccPos,
			EccLen:      eccLen,
		}
		dataPos += dataLen
		eccPos += eccLen
	}
	return blocks
}

// errorCorrectAndInterleave computes per-block Reed-Solomon ECC codewords
// and returns the final codeword stream: data codewords interleaved
// across blocks, then ECC codewords interleaved across blocks (§4.5,
// §4.6). data must have exactly v.DataCodewordCount(ecc) bytes.
func errorCorrectAndInterleave(data []byte, v Version, ecc ECC) ([]byte, error) {
	if len(data) != v.DataCodewordCount(ecc) {
		return nil, fmt.Errorf("%w: data codeword count %d, expected %d", ErrEncodingViolation, len(data), v.DataCodewordCount(ecc))
	}

	blocks := computeBlockLengths(v, ecc)
	totalECC, blockCount := v.ErrorCorrectionCodewordBlocks(ecc)
	if blockCount == 0 || totalECC%blockCount != 0 {
		return nil, fmt.Errorf("%w: %d ECC codewords do not divide evenly across %d blocks", ErrEncodingViolation, totalECC, blockCount)
	}

	eccLen := totalECC / blockCount
	generator := generatorPolynomial(eccLen)

	blockData := make([][]byte, len(blocks))
	blockECC := make([][]byte, len(blocks))
	maxDataLen := 0
	for i, bl := range blocks {
		blockData[i] = data[bl.DataPos : bl.DataPos+bl.DataLen]
		blockECC[i] = reedSolomonEncode(blockData[i], generator)
		if bl.DataLen > maxDataLen {
			maxDataLen = bl.DataLen
		}
	}

	result := make([]byte, v.TotalCodewordCount())
	k := 0
	for j := 0; j < maxDataLen; j++ {
		for i := range blocks {
			if j < len(blockData[i]) {
				result[k] = blockData[i][j]
				k++
			}
		}
	}
	for j := 0; j < eccLen; j++ {
		for i := range blocks {
			result[k] = blockECC[i][j]
			k++
		}
	}

	if k != len(result) {
		return nil, fmt.Errorf("%w: interleaver emitted %d codewords, expected %d", ErrEncodingViolation, k, len(result))
	}
	return result, nil
}
