package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nilboard/boson/internal/types"
)

func TestMakeMoveSimpleNonCapture(t *testing.T) {
	b := StartPosition()
	m := CreateMove(SqB1, SqC3, Knight)
	nb := MakeMove(b, m)

	assert.Equal(t, 32, nb.Occupied().PopCount())
	assert.Equal(t, SqNone, nb.EnPassantSquare())

	dest := SquareOf(FileC, Rank6) // b1c3 byteswapped into the opponent's frame
	assert.Equal(t, Knight, nb.PieceTypeAt(dest))
	assert.False(t, nb.White.Has(int(dest)), "the piece that just moved belongs to the previous mover")
}

func TestMakeMoveDoublePawnPushOpensEnPassant(t *testing.T) {
	b := StartPosition()
	m := CreateMove(SqE2, SqE4, Pawn)
	nb := MakeMove(b, m)

	assert.Equal(t, 32, nb.Occupied().PopCount())
	assert.Equal(t, SquareOf(FileE, Rank6), nb.EnPassantSquare())
}

func TestMakeMoveCapture(t *testing.T) {
	var b Board
	b.Y = b.Y.Set(int(SqD5))             // knight (y bit) on d5
	b.X = b.X.Set(int(SqF6))             // pawn (x bit) on f6
	b.White = b.White.Set(int(SqD5))     // d5 is the mover's own knight

	m := CreateMove(SqD5, SqF6, Knight)
	nb := MakeMove(b, m)

	assert.Equal(t, 1, nb.Occupied().PopCount())
	dest := SquareOf(FileF, Rank3) // f6 byteswapped
	assert.Equal(t, Knight, nb.PieceTypeAt(dest))
	assert.False(t, nb.White.Has(int(dest)))
}

func TestMakeMoveEnPassantCapture(t *testing.T) {
	var b Board
	b.X = b.X.Set(int(SqE5)) // white pawn on e5 (x bit = Pawn)
	b.White = b.White.Set(int(SqE5))
	b.X = b.X.Set(int(SqD5)) // black pawn on d5, just double-pushed
	b.White = b.White.Set(int(SqD6))

	m := CreateMove(SqE5, SqD6, Pawn)
	nb := MakeMove(b, m)

	// Both the d5 pawn and the moved e5 pawn should be the only two pieces,
	// minus the captured one: only the capturing pawn remains.
	assert.Equal(t, 1, nb.Occupied().PopCount())
	dest := SquareOf(FileD, Rank3) // d6 byteswapped
	assert.Equal(t, Pawn, nb.PieceTypeAt(dest))
}

func TestMakeMoveCastlingKingSide(t *testing.T) {
	var b Board
	// King on e1, Castle-tagged rooks on a1 and h1, all friendly.
	for _, sq := range []Square{SqE1, SqA1, SqH1} {
		b.Z = b.Z.Set(int(sq))
		b.White = b.White.Set(int(sq))
	}
	b.Y = b.Y.Set(int(SqE1))
	b.X = b.X.Set(int(SqE1))

	m := CreateCastlingMove(SqE1, SqG1)
	nb := MakeMove(b, m)

	kingSq := SquareOf(FileG, Rank8)
	rookSq := SquareOf(FileF, Rank8)
	queensideRook := SquareOf(FileA, Rank8)
	emptyKingStart := SquareOf(FileE, Rank8)
	emptyRookStart := SquareOf(FileH, Rank8)

	assert.Equal(t, King, nb.PieceTypeAt(kingSq))
	assert.Equal(t, Rook, nb.PieceTypeAt(rookSq))
	assert.Equal(t, Rook, nb.PieceTypeAt(queensideRook), "castling forfeits the other rook's Castle tag too")
	assert.Equal(t, NoPieceType, nb.PieceTypeAt(emptyKingStart))
	assert.Equal(t, NoPieceType, nb.PieceTypeAt(emptyRookStart))
}
