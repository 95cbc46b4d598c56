package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Pawn)
	assert.Equal(t, SqE2, m.Init())
	assert.Equal(t, SqE4, m.Dest())
	assert.Equal(t, Pawn, m.Piece())
	assert.False(t, m.IsCastling())
}

func TestCreateMovePromotion(t *testing.T) {
	m := CreateMove(SqE7, SqE8, Queen)
	assert.Equal(t, SqE7, m.Init())
	assert.Equal(t, SqE8, m.Dest())
	assert.Equal(t, Queen, m.Piece())
	assert.True(t, m.IsPromotion(Pawn))
	assert.False(t, m.IsPromotion(Knight))
}

func TestCreateCastlingMove(t *testing.T) {
	m := CreateCastlingMove(SqE1, SqG1)
	assert.Equal(t, SqE1, m.Init())
	assert.Equal(t, SqG1, m.Dest())
	assert.Equal(t, King, m.Piece())
	assert.True(t, m.IsCastling())
}

func TestMoveNone(t *testing.T) {
	assert.Equal(t, "-", MoveNone.String())
}

func TestMoveString(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Pawn)
	assert.Equal(t, "e2e4", m.String())
}

func TestMoveStringPromotion(t *testing.T) {
	m := CreateMove(SqE7, SqE8, Queen)
	assert.Equal(t, "e7e8q", m.StringPromotion(Pawn))

	knightMove := CreateMove(SqB1, SqC3, Knight)
	assert.Equal(t, "b1c3", knightMove.StringPromotion(Knight))
}
