package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nilboard/boson/internal/board"
	. "github.com/nilboard/boson/internal/types"
)

func perft(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	list := Generate(b)
	if depth == 1 {
		return uint64(list.Len())
	}
	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		nodes += perft(board.MakeMove(b, list.At(i)), depth-1)
	}
	return nodes
}

func TestPerftStartPositionShallow(t *testing.T) {
	b := board.StartPosition()
	assert.EqualValues(t, 20, perft(b, 1))
	assert.EqualValues(t, 400, perft(b, 2))
	assert.EqualValues(t, 8902, perft(b, 3))
}

func TestPerftStartPositionDepth4(t *testing.T) {
	b := board.StartPosition()
	assert.EqualValues(t, 197281, perft(b, 4))
}

func TestGenerateStartPositionMoveCount(t *testing.T) {
	list := Generate(board.StartPosition())
	assert.Equal(t, 20, list.Len())
}

func TestPinnedRookCannotLeaveFile(t *testing.T) {
	// White king e1, white rook e2, black queen e8: the rook is pinned on
	// the e-file and may only move along it.
	var b board.Board
	place(&b, SqE1, King, true)
	place(&b, SqE2, Rook, true)
	place(&b, SqE8, Queen, false)

	list := Generate(b)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Init() == SqE2 {
			assert.Equal(t, FileE, m.Dest().FileOf(), "pinned rook must stay on the e-file")
		}
	}
}

func TestPinnedBishopHasNoRookMoves(t *testing.T) {
	// White king e1, white bishop e2 pinned by a rook on e8: a bishop can
	// never move along the pin line (it's orthogonal), so it has no moves.
	var b board.Board
	place(&b, SqE1, King, true)
	place(&b, SqE2, Bishop, true)
	place(&b, SqE8, Rook, false)

	list := Generate(b)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, SqE2, list.At(i).Init(), "pinned bishop has zero legal moves against an orthogonal pinner")
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	var b board.Board
	place(&b, SqE1, King, true)
	place(&b, SqA1, Rook, true) // an otherwise-movable friendly piece
	place(&b, SqE8, Rook, false)
	place(&b, SqD3, Knight, false)

	list := Generate(b)
	for i := 0; i < list.Len(); i++ {
		assert.Equal(t, SqE1, list.At(i).Init(), "under double check only the king may move")
	}
}

func TestEnPassantCaptureAvailable(t *testing.T) {
	var b board.Board
	place(&b, SqE1, King, true)
	place(&b, SqE5, Pawn, true)
	place(&b, SqD5, Pawn, false)
	place(&b, SqE8, King, false)
	b.White = b.White.Set(int(SqD6)) // en-passant target after ...d7d5

	found := false
	list := Generate(b)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Init() == SqE5 && m.Dest() == SqD6 {
			found = true
		}
	}
	assert.True(t, found, "en passant capture onto d6 should be generated")
}

func TestEnPassantCaptureForbiddenOffDiagonalPin(t *testing.T) {
	// White king h1, black bishop a8 pins the d5 pawn on the a8-h1 diagonal.
	// Capturing en passant onto e6 would step the pawn off that diagonal,
	// so it must not be generated even though the straight capture square
	// lies within the pin mask's rank.
	var b board.Board
	place(&b, SqH1, King, true)
	place(&b, SqD5, Pawn, true)
	place(&b, SqE5, Pawn, false)
	place(&b, SqE8, King, false)
	place(&b, SqA8, Bishop, false)
	b.White = b.White.Set(int(SqE6)) // en-passant target after ...e7e5

	list := Generate(b)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.Init() == SqD5 && m.Dest() == SqE6, "pinned pawn must not capture en passant off its pin diagonal")
	}
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	var b board.Board
	place(&b, SqE1, King, true)
	place(&b, SqH1, Castle, true)
	place(&b, SqE8, King, false)
	place(&b, SqF8, Rook, false) // attacks f1 down the f-file

	list := Generate(b)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, m.IsCastling(), "castling through an attacked square must not be generated")
	}
}

func TestCastlingAvailableWhenClear(t *testing.T) {
	var b board.Board
	place(&b, SqE1, King, true)
	place(&b, SqH1, Castle, true)
	place(&b, SqA1, Castle, true)
	place(&b, SqE8, King, false)

	found := 0
	list := Generate(b)
	for i := 0; i < list.Len(); i++ {
		if list.At(i).IsCastling() {
			found++
		}
	}
	assert.Equal(t, 2, found, "both castling sides should be available on a clear back rank")
}

// place sets pt on sq in b's piece-bit words, marking it friendly when
// friendly is true. Test-only helper mirroring board.StartPosition's own
// construction style.
func place(b *board.Board, sq Square, pt PieceType, friendly bool) {
	v := int(pt)
	if v&1 != 0 {
		b.X = b.X.Set(int(sq))
	}
	if v&2 != 0 {
		b.Y = b.Y.Set(int(sq))
	}
	if v&4 != 0 {
		b.Z = b.Z.Set(int(sq))
	}
	if friendly {
		b.White = b.White.Set(int(sq))
	}
}
