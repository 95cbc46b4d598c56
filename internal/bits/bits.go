/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package bits provides the 64-bit word primitives the rest of the engine
// is built on: population count, trailing/leading zero scan, byte swap and
// a parallel-bits-extract with a portable multiply-shift fallback. Every
// higher layer (attacks, board, movegen) treats a chess position purely as
// bit-parallel operations on these words.
package bits

import "math/bits"

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board.
type Bitboard uint64

// Zero is the empty bitboard.
const Zero Bitboard = 0

// All is the full bitboard - all 64 squares set.
const All Bitboard = 0xFFFFFFFFFFFFFFFF

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit (trailing zero
// count). Calling this on an empty bitboard is undefined - callers must
// check PopCount() or compare against Zero first.
func (b Bitboard) Lsb() int {
	return bits.TrailingZeros64(uint64(b))
}

// Msb returns the index of the most significant set bit. Calling this on
// an empty bitboard is undefined.
func (b Bitboard) Msb() int {
	return 63 - bits.LeadingZeros64(uint64(b))
}

// PopLsb clears and returns the index of the least significant set bit.
func (b *Bitboard) PopLsb() int {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// ByteSwap mirrors the bitboard vertically (rank for rank). This is the
// operation behind board rotation: after swapping bytes, what used to be
// rank 8 becomes rank 1 and vice versa, so "north" and "south" trade
// places without touching file alignment.
func (b Bitboard) ByteSwap() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// Has reports whether bit sq is set.
func (b Bitboard) Has(sq int) bool {
	return b&(1<<uint(sq)) != 0
}

// Set returns b with bit sq set.
func (b Bitboard) Set(sq int) Bitboard {
	return b | (1 << uint(sq))
}

// Clear returns b with bit sq cleared.
func (b Bitboard) Clear(sq int) Bitboard {
	return b &^ (1 << uint(sq))
}

// NextSubset advances the Carry-Rippler enumeration of all subsets of
// mask. Start the iteration with subset == 0 and stop once NextSubset
// returns 0 again:
//
//	for sub := bits.Zero; ; {
//		... use sub ...
//		sub = sub.NextSubset(mask)
//		if sub == 0 {
//			break
//		}
//	}
//
// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
func (b Bitboard) NextSubset(mask Bitboard) Bitboard {
	return (b - mask) & mask
}

// Extract gathers the bits of b selected by mask into the low-order bits
// of the result, preserving their relative order (a software PEXT). The
// attacks package does not call it; its tables are indexed by magic
// multiplication instead.
func Extract(b, mask Bitboard) Bitboard {
	var res Bitboard
	bitpos := uint(0)
	for m := mask; m != 0; {
		sq := uint(m.Lsb())
		if b.Has(int(sq)) {
			res |= 1 << bitpos
		}
		bitpos++
		m &= m - 1
	}
	return res
}
