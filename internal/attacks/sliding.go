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

// Table sizes for the non-PEXT "fancy magic" layout: 102400 occupancy
// slots across all rook squares plus 5248 across all bishop squares,
// 107648 entries total (860KB of *bits.Bitboard).
const (
	rookTableSize   = 102400
	bishopTableSize = 5248
)

var (
	rookTable   [rookTableSize]bits.Bitboard
	bishopTable [bishopTableSize]bits.Bitboard

	// RookMagics and BishopMagics hold the per-square magic data computed
	// at init time.
	RookMagics   [64]Magic
	BishopMagics [64]Magic
)

func init() {
	initMagics(rookTable[:], &RookMagics, RookDirections)
	initMagics(bishopTable[:], &BishopMagics, BishopDirections)
	populateLineBetween()
}

// RookAttacks returns the rook attack bitboard from sq given the current
// board occupancy (blockers truncate the ray and are themselves included
// as attacked, since they may be capturable).
func RookAttacks(sq Square, occupied bits.Bitboard) bits.Bitboard {
	m := &RookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// BishopAttacks returns the bishop attack bitboard from sq given the
// current board occupancy.
func BishopAttacks(sq Square, occupied bits.Bitboard) bits.Bitboard {
	m := &BishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// QueenAttacks returns the queen attack bitboard, the union of the rook
// and bishop rays from sq.
func QueenAttacks(sq Square, occupied bits.Bitboard) bits.Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// Attacks returns the attack bitboard for pt from sq given occupied,
// dispatching to the leaper tables or the sliding tables as appropriate.
// pt must be a real attacking piece type; pawns are handled separately by
// the move generator since their attacks depend on color/side-to-move.
func Attacks(pt PieceType, sq Square, occupied bits.Bitboard) bits.Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks[sq]
	case King:
		return KingAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook, Castle:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return bits.Zero
	}
}
