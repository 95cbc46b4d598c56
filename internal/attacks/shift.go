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

// Package attacks precomputes every lookup table the move generator needs:
// knight and king leaper attacks, magic-indexed sliding attacks for bishops
// and rooks (queens are the union of the two), and the line_between table
// used for pin and check-evasion detection. Everything here is pure,
// read-only data computed once at package init time.
package attacks

import (
	"github.com/nilboard/boson/internal/bits"
	. "github.com/nilboard/boson/internal/types"
)

// Shift moves every bit of b by one square in direction d, clearing
// whichever edge file the shift would otherwise wrap around. Exported for
// the move generator's bit-parallel pawn push/capture computations.
func Shift(b bits.Bitboard, d Direction) bits.Bitboard {
	return shift(b, d)
}

// shift moves every bit of b by one square in direction d, clearing
// whichever edge file the shift would otherwise wrap around.
func shift(b bits.Bitboard, d Direction) bits.Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH.Bb()) << 1
	case West:
		return (b &^ FileA.Bb()) >> 1
	case Northeast:
		return (b &^ FileH.Bb()) << 9
	case Southeast:
		return (b &^ FileH.Bb()) >> 7
	case Southwest:
		return (b &^ FileA.Bb()) >> 9
	case Northwest:
		return (b &^ FileA.Bb()) << 7
	default:
		return b
	}
}

// squareDistance returns the Chebyshev (king-move) distance between two
// squares, used only during sliding table initialization to stop a ray
// step that wrapped around a board edge.
func squareDistance(a, b Square) int {
	fa, fb := int(a.FileOf()), int(b.FileOf())
	ra, rb := int(a.RankOf()), int(b.RankOf())
	df := fa - fb
	if df < 0 {
		df = -df
	}
	dr := ra - rb
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
