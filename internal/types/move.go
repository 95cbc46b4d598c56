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

// Move packs a chess move into 16 bits:
//
//	BITMAP 16-bit
//	|c|piece|---dest----|---init----|
//	 1 1 1 1 1 1
//	 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//
// init and dest are the origin and destination squares. piece is the piece
// type occupying dest after the move is played: the promotion piece type
// for a promoting pawn move, the moving piece type for everything else.
// castling distinguishes a castling king move from an ordinary king move,
// so the move can be applied without re-deriving it from the board.
type Move uint16

const (
	// MoveNone is the zero value: not a legal move, used as a sentinel.
	MoveNone Move = 0

	initMask     Move = 0x3F
	destShift         = 6
	destMask     Move = 0x3F << destShift
	pieceShift        = 12
	pieceMask    Move = 0x7 << pieceShift
	castleShift       = 15
	castleMask   Move = 0x1 << castleShift
)

// CreateMove packs a non-castling move.
func CreateMove(init, dest Square, piece PieceType) Move {
	return Move(init) | Move(dest)<<destShift | Move(piece)<<pieceShift
}

// CreateCastlingMove packs a castling king move.
func CreateCastlingMove(init, dest Square) Move {
	return CreateMove(init, dest, King) | castleMask
}

// Init returns the move's origin square.
func (m Move) Init() Square {
	return Square(m & initMask)
}

// Dest returns the move's destination square.
func (m Move) Dest() Square {
	return Square((m & destMask) >> destShift)
}

// Piece returns the piece type occupying Dest() after the move: the
// promotion target for a promoting pawn move, the moving piece type
// otherwise.
func (m Move) Piece() PieceType {
	return PieceType((m & pieceMask) >> pieceShift)
}

// IsCastling reports whether this move is a castling king move rather than
// an ordinary one.
func (m Move) IsCastling() bool {
	return m&castleMask != 0
}

// IsPromotion reports whether Piece() names a promotion target, i.e. the
// moving piece was a pawn reaching its back rank.
func (m Move) IsPromotion(movingPiece PieceType) bool {
	return movingPiece == Pawn && m.Piece() != Pawn
}

// String renders the move in bare coordinate notation (e.g. "e2e4"). Move
// alone cannot tell a promotion from an ordinary move of the piece named
// by Piece() - that requires knowing what piece stood on Init() before the
// move - so callers that need SAN/UCI promotion suffixes should use
// StringPromotion with the moving piece type.
func (m Move) String() string {
	if m == MoveNone {
		return "-"
	}
	return m.Init().String() + m.Dest().String()
}

// StringPromotion renders the move in UCI notation, appending the
// promotion letter when movingPiece was a pawn reaching its back rank.
func (m Move) StringPromotion(movingPiece PieceType) string {
	s := m.String()
	if m.IsPromotion(movingPiece) {
		s += promotionLetter(m.Piece())
	}
	return s
}

func promotionLetter(pt PieceType) string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook, Castle:
		return "r"
	case Queen:
		return "q"
	default:
		panic(fmt.Sprintf("invalid promotion piece type %d", pt))
	}
}
