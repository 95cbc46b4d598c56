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

package attacks

import (
	"github.com/nilboard/boson/internal/bits"
	. "github.com/nilboard/boson/internal/types"
)

// KnightAttacks holds the knight attack bitboard for every square.
var KnightAttacks [64]bits.Bitboard

// KingAttacks holds the (non-castling) king attack bitboard for every
// square - the one-step moves in all eight directions.
var KingAttacks [64]bits.Bitboard

var knightDirections = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var allDirections = append(append([]Direction{}, RookDirections[:]...), BishopDirections[:]...)

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		var knight, king bits.Bitboard
		f, r := int(sq.FileOf()), int(sq.RankOf())

		for _, o := range knightDirections {
			nf, nr := f+o[0], r+o[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			knight = knight.Set(int(SquareOf(File(nf), Rank(nr))))
		}

		for _, d := range allDirections {
			dest := sq.To(d)
			if dest.IsValid() {
				king = king.Set(int(dest))
			}
		}

		KnightAttacks[sq] = knight
		KingAttacks[sq] = king
	}
}
