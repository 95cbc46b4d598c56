package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceTypeEncoding(t *testing.T) {
	// value = z*4 + y*2 + x, so the iota order must match exactly.
	assert.Equal(t, PieceType(0), NoPieceType)
	assert.Equal(t, PieceType(1), Pawn)
	assert.Equal(t, PieceType(2), Knight)
	assert.Equal(t, PieceType(3), Bishop)
	assert.Equal(t, PieceType(4), Castle)
	assert.Equal(t, PieceType(5), Rook)
	assert.Equal(t, PieceType(6), Queen)
	assert.Equal(t, PieceType(7), King)
}

func TestPieceTypeDecayed(t *testing.T) {
	assert.Equal(t, Rook, Castle.Decayed())
	assert.Equal(t, Rook, Rook.Decayed())
	assert.Equal(t, Queen, Queen.Decayed())
	assert.Equal(t, Pawn, Pawn.Decayed())
}

func TestPieceTypeIsValid(t *testing.T) {
	assert.True(t, Pawn.IsValid())
	assert.True(t, King.IsValid())
	assert.False(t, NoPieceType.IsValid())
}

func TestPieceTypeString(t *testing.T) {
	assert.Equal(t, "R", Rook.String())
	assert.Equal(t, "R", Castle.String())
	assert.Equal(t, "Q", Queen.String())
	assert.Equal(t, "-", NoPieceType.String())
}
