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

package board

import (
	"github.com/nilboard/boson/internal/bits"
	. "github.com/nilboard/boson/internal/types"
)

// MakeMove applies m to b and returns the resulting board from the
// opponent's point of view: a pure board to board transition, no mutation
// of b. The move is trusted to be legal and pseudo-legal-consistent with
// b - MakeMove itself does not validate legality, only plays it out.
func MakeMove(b Board, m Move) Board {
	init, dest := m.Init(), m.Dest()
	movingPiece := b.PieceTypeAt(init)

	// Step 1: squares to clear.
	epCapture := SqNone
	if movingPiece == Pawn && dest == b.EnPassantSquare() {
		epCapture = Square(int(dest) - int(North))
	}
	rookFrom, rookTo := SqNone, SqNone
	if m.IsCastling() {
		if dest.FileOf() == FileG {
			rookFrom, rookTo = SqH1, SqF1
		} else {
			rookFrom, rookTo = SqA1, SqD1
		}
	}

	// Step 2: zero the three piece-bit words at every cleared square.
	nx, ny, nz := b.X, b.Y, b.Z
	for _, sq := range [...]Square{init, dest, epCapture, rookFrom} {
		if sq == SqNone {
			continue
		}
		nx, ny, nz = nx.Clear(int(sq)), ny.Clear(int(sq)), nz.Clear(int(sq))
	}

	// Step 3: write the resulting piece onto dest. For promotions m.Piece()
	// already carries the promotion target; otherwise it is movingPiece
	// (decayed to Rook by the move generator when a Castle-tagged rook moves).
	nx, ny, nz = setPiece(nx, ny, nz, dest, m.Piece())

	// Step 4: castling also places a Rook on the square the king crossed.
	if m.IsCastling() {
		nx, ny, nz = setPiece(nx, ny, nz, rookTo, Rook)
	}

	// Step 5: moving the king forfeits both castling rights.
	if movingPiece == King {
		lostRights := extractExact(nx, ny, nz, Castle) & Rank1.Bb()
		nx ^= lostRights
	}

	// Step 6: a two-square pawn push opens an en-passant target one square
	// north of init, recorded in the opponent's incoming White word.
	var epBit bits.Bitboard
	if movingPiece == Pawn && int(dest)-int(init) == 2*int(North) {
		epBit = Square(int(init) + int(North)).Bb()
	}

	// Step 7: byteswap into the opponent's frame. The new White marks the
	// squares that are friendly to the NEW side to move, i.e. whatever was
	// "theirs" before this move, minus anything just captured, plus the
	// fresh en-passant target.
	theirs := b.Occupied() &^ b.White
	theirs &^= dest.Bb()
	if epCapture != SqNone {
		theirs &^= epCapture.Bb()
	}

	return Board{
		X:     nx.ByteSwap(),
		Y:     ny.ByteSwap(),
		Z:     nz.ByteSwap(),
		White: (theirs | epBit).ByteSwap(),
	}
}
