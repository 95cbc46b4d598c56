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

package types

import "fmt"

// PieceType identifies what occupies a square, independent of color. A
// board encodes it in three bitboard words x, y, z - value = z*4 + y*2 + x -
// so PieceType itself is just that 3 bit number.
//
// Castle is a rook that still carries its castling right. It behaves like
// a Rook for attack generation and is retagged to a plain Rook the moment
// it moves or its king moves: the move generator emits its moves as Rook
// moves, and making a king move clears the castle tag of both rooks.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Castle
	Rook
	Queen
	King
)

// Decayed returns the piece type a Castle becomes once it loses its
// castling right (a plain Rook). Every other piece type is unaffected.
func (pt PieceType) Decayed() PieceType {
	if pt == Castle {
		return Rook
	}
	return pt
}

// IsValid reports whether pt is one of the seven real piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// String returns a single upper-case FEN-style letter for the piece type.
// Castle prints as "R" since it is a rook for every purpose but the
// castling right itself.
func (pt PieceType) String() string {
	switch pt {
	case NoPieceType:
		return "-"
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Castle, Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		panic(fmt.Sprintf("invalid piece type %d", pt))
	}
}
