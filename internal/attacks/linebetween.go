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

// LineBetween[a][b] holds every square strictly between a and b on their
// common rank, file or diagonal, plus b itself - so a ray from a through
// an occupied b is exactly LineBetween[a][b]. It is bits.Zero when a and b
// don't share a line. Pin and check-evasion detection both reduce to
// intersecting this table with the actual piece occupancy.
var LineBetween [64][64]bits.Bitboard

// populateLineBetween fills LineBetween. Called from sliding.go's init
// after the rook/bishop magic tables are ready, since it depends on
// RookAttacks/BishopAttacks - Go only guarantees init() order within one
// file, not across the files of a package.
func populateLineBetween() {
	for a := SqA1; a <= SqH8; a++ {
		for b := SqA1; b <= SqH8; b++ {
			if a == b {
				continue
			}
			if onSameRookLine(a, b) {
				LineBetween[a][b] = (RookAttacks(a, b.Bb()) & RookAttacks(b, a.Bb())) | b.Bb()
			} else if onSameBishopLine(a, b) {
				LineBetween[a][b] = (BishopAttacks(a, b.Bb()) & BishopAttacks(b, a.Bb())) | b.Bb()
			}
		}
	}
}

func onSameRookLine(a, b Square) bool {
	return SameRookLine(a, b)
}

func onSameBishopLine(a, b Square) bool {
	return SameBishopLine(a, b)
}

// SameRookLine reports whether a and b share a rank or file. Exported so
// pin detection can tell a rook-line LineBetween entry from a bishop-line
// one - the table itself doesn't carry which rule populated it.
func SameRookLine(a, b Square) bool {
	return a.FileOf() == b.FileOf() || a.RankOf() == b.RankOf()
}

// SameBishopLine reports whether a and b share a diagonal.
func SameBishopLine(a, b Square) bool {
	df := int(a.FileOf()) - int(b.FileOf())
	dr := int(a.RankOf()) - int(b.RankOf())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df == dr
}
