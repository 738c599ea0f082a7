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

// buffer is an append-only, MSB-first bit writer backed by a packed byte
// slice. It never reads or overwrites what it has already written;
// bitLen only grows.
//
// The reference this package is modeled on (grkuntzmd/qrcodegen's
// bitBuffer) keeps one byte of Go slice per *bit*, which is simple but
// wasteful, and only packs bits into codewords once at the very end. This
// buffer packs eagerly, which is what lets Data() hand back a ready-to-use
// byte view at any point, not just after the whole segment stream is built.
//
// The symbology caps a symbol's bit capacity well under 64Kbit even at
// version 40-L, so growth is bounded in practice; this buffer does not
// pre-size a fixed 1024-byte array the way an embedded target might (see
// DESIGN.md), since this package supports the full version range.
type buffer struct {
	bytes  []byte
	bitLen int
}

// newBuffer returns an empty buffer with room pre-reserved for capacityBits
// bits, to avoid reallocation while encoding a symbol of known size.
func newBuffer(capacityBits int) *buffer {
	return &buffer{bytes: make([]byte, 0, (capacityBits+7)/8)}
}

// BitLen returns the number of bits written so far.
func (b *buffer) BitLen() int {
	return b.bitLen
}

// ByteBitLen returns (bitLen/8, bitLen%8): the number of whole bytes written
// and the number of extra bits in the trailing fractional byte.
func (b *buffer) ByteBitLen() (int, int) {
	return b.bitLen / 8, b.bitLen % 8
}

// AppendBit appends one bit, MSB-first within the current byte.
func (b *buffer) AppendBit(bit int) {
	byteIndex, bitOffset := b.bitLen/8, b.bitLen%8
	if bitOffset == 0 {
		b.bytes = append(b.bytes, 0)
	}
	if bit != 0 {
		b.bytes[byteIndex] |= 1 << (7 - bitOffset)
	}
	b.bitLen++
}

// AppendByte appends a full byte. When the buffer is currently byte-aligned
// this is a single append; otherwise it falls back to bit-by-bit writes.
func (b *buffer) AppendByte(v byte) {
	if b.bitLen%8 == 0 {
		b.bytes = append(b.bytes, v)
		b.bitLen += 8
		return
	}
	for i := 7; i >= 0; i-- {
		b.AppendBit(int(v >> i & 1))
	}
}

// AppendBytes appends a sequence of bytes in order.
func (b *buffer) AppendBytes(vs []byte) {
	for _, v := range vs {
		b.AppendByte(v)
	}
}

// AppendBits appends a sequence of already-expanded bit values (each 0 or
// 1), in order.
func (b *buffer) AppendBits(bits []int) {
	for _, bit := range bits {
		b.AppendBit(bit)
	}
}

// AppendNumber appends the low `width` bits of n, MSB-first. width must be
// in [0, 31] and n must fit in width bits.
func (b *buffer) AppendNumber(n, width int) {
	if width < 0 || width > 31 || (width < 31 && n>>width != 0) {
		panic("qrcode: value out of range for requested bit width")
	}
	for i := width - 1; i >= 0; i-- {
		b.AppendBit(n >> i & 1)
	}
}

// Data returns a contiguous byte view of length ceil(bitLen/8). Any bits in
// the trailing fractional byte beyond bitLen are zero, because AppendBit
// only ever sets bits it is asked to set.
func (b *buffer) Data() []byte {
	return b.bytes
}
