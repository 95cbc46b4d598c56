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

// Package board holds the rotated four-bitboard position representation
// and the pure make_move transition. A Board never carries an explicit
// side-to-move flag: after every move the board is vertically mirrored so
// the side to move is always "white" in board-local terms, and colors
// stay implicit in the White word.
package board

import (
	"strings"

	"github.com/nilboard/boson/internal/bits"
	. "github.com/nilboard/boson/internal/types"
)

// Board is the four-bitboard position: for every square, the triple
// (bit(X,s), bit(Y,s), bit(Z,s)) encodes its PieceType. White overlays two
// meanings: on occupied squares, a set bit marks a friendly (side-to-move)
// piece; on unoccupied squares, a set bit marks the current en-passant
// target. The two never collide since occupied and empty partition the
// board.
type Board struct {
	X, Y, Z, White bits.Bitboard
}

// Occupied returns every square carrying a piece.
func (b Board) Occupied() bits.Bitboard {
	return b.X | b.Y | b.Z
}

// FriendlyOccupied returns the side-to-move's own pieces.
func (b Board) FriendlyOccupied() bits.Bitboard {
	return b.Occupied() & b.White
}

// EnemyOccupied returns the opponent's pieces.
func (b Board) EnemyOccupied() bits.Bitboard {
	return b.Occupied() &^ b.White
}

// EnPassantSquare returns the current en-passant target square, or SqNone
// if none is available. The target is the one unoccupied square (if any)
// still carrying a White bit.
func (b Board) EnPassantSquare() Square {
	ep := b.White &^ b.Occupied()
	if ep == bits.Zero {
		return SqNone
	}
	return Square(ep.Lsb())
}

// PieceTypeAt decodes the piece type standing on sq, or NoPieceType if the
// square is empty.
func (b Board) PieceTypeAt(sq Square) PieceType {
	if !b.Occupied().Has(int(sq)) {
		return NoPieceType
	}
	v := 0
	if b.X.Has(int(sq)) {
		v |= 1
	}
	if b.Y.Has(int(sq)) {
		v |= 2
	}
	if b.Z.Has(int(sq)) {
		v |= 4
	}
	return PieceType(v)
}

// Extract returns the bitboard of every square occupied by pt. As a
// special case, Extract(Rook) returns rooks AND castles: both have z=1,
// y=0 and differ only in the bit that also distinguishes them from each
// other (x), so z &^ y alone selects the pair - this is the trick that
// lets a move generator treat "rook-like" pieces uniformly.
func (b Board) Extract(pt PieceType) bits.Bitboard {
	if pt == Rook {
		return b.Z &^ b.Y
	}
	return extractExact(b.X, b.Y, b.Z, pt)
}

// extractExact returns the squares whose (x,y,z) bits match pt's encoding
// exactly. Relies on the invariant that x, y and z are all zero on every
// unoccupied square, so no additional occupied mask is needed.
func extractExact(x, y, z bits.Bitboard, pt PieceType) bits.Bitboard {
	v := int(pt)
	result := bits.All
	if v&1 != 0 {
		result &= x
	} else {
		result &= ^x
	}
	if v&2 != 0 {
		result &= y
	} else {
		result &= ^y
	}
	if v&4 != 0 {
		result &= z
	} else {
		result &= ^z
	}
	return result
}

// setPiece writes pt onto sq in the given piece-bit words, returning the
// updated words. It does not clear any prior occupant - callers must
// clear the destination first.
func setPiece(x, y, z bits.Bitboard, sq Square, pt PieceType) (bits.Bitboard, bits.Bitboard, bits.Bitboard) {
	v := int(pt)
	if v&1 != 0 {
		x = x.Set(int(sq))
	}
	if v&2 != 0 {
		y = y.Set(int(sq))
	}
	if v&4 != 0 {
		z = z.Set(int(sq))
	}
	return x, y, z
}

// String renders the board as eight ranks of FEN-style piece letters,
// rank 8 first, for debugging and test failure messages. Uppercase
// letters are the side to move (White in board-local terms).
func (b Board) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := int(FileA); f <= int(FileH); f++ {
			sq := SquareOf(File(f), Rank(r))
			pt := b.PieceTypeAt(sq)
			if pt == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := pt.String()
			if !b.White.Has(int(sq)) {
				letter = strings.ToLower(letter)
			}
			sb.WriteString(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > int(Rank1) {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// StartPosition returns the standard chess starting position, already in
// the canonical "white to move" rotated form, with both a1/h1 rooks
// tagged Castle.
func StartPosition() Board {
	var x, y, z, white bits.Bitboard
	place := func(sq Square, pt PieceType, friendly bool) {
		x, y, z = setPiece(x, y, z, sq, pt)
		if friendly {
			white = white.Set(int(sq))
		}
	}

	backRank := [8]PieceType{Castle, Knight, Bishop, Queen, King, Bishop, Knight, Castle}
	for f := 0; f < 8; f++ {
		place(SquareOf(File(f), Rank1), backRank[f], true)
		place(SquareOf(File(f), Rank2), Pawn, true)
		place(SquareOf(File(f), Rank7), Pawn, false)
		place(SquareOf(File(f), Rank8), backRank[f], false)
	}

	return Board{X: x, Y: y, Z: z, White: white}
}
