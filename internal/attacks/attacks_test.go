package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nilboard/boson/internal/bits"
	. "github.com/nilboard/boson/internal/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	// a1 knight only reaches b3 and c2.
	a1 := KnightAttacks[SqA1]
	assert.Equal(t, 2, a1.PopCount())
	assert.True(t, a1.Has(int(SqB3)))
	assert.True(t, a1.Has(int(SqC2)))
}

func TestKnightAttacksCenter(t *testing.T) {
	assert.Equal(t, 8, KnightAttacks[SqD4].PopCount())
}

func TestKingAttacksCorner(t *testing.T) {
	a1 := KingAttacks[SqA1]
	assert.Equal(t, 3, a1.PopCount())
	assert.True(t, a1.Has(int(SqA2)))
	assert.True(t, a1.Has(int(SqB1)))
	assert.True(t, a1.Has(int(SqB2)))
}

func TestKingAttacksCenter(t *testing.T) {
	assert.Equal(t, 8, KingAttacks[SqE4].PopCount())
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	// a rook on a1 on an empty board sweeps the full a-file and 1st rank.
	attacked := RookAttacks(SqA1, bits.Zero)
	want := FileA.Bb() | Rank1.Bb()
	want &^= SqA1.Bb()
	assert.Equal(t, want, attacked)
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := SqA4.Bb()
	attacked := RookAttacks(SqA1, occ)
	assert.True(t, attacked.Has(int(SqA2)))
	assert.True(t, attacked.Has(int(SqA3)))
	assert.True(t, attacked.Has(int(SqA4))) // blocker itself is attacked (capturable)
	assert.False(t, attacked.Has(int(SqA5)))
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	attacked := BishopAttacks(SqA1, bits.Zero)
	assert.Equal(t, 7, attacked.PopCount()) // full a1-h8 diagonal minus a1 itself
	assert.True(t, attacked.Has(int(SqH8)))
}

func TestQueenAttacksUnion(t *testing.T) {
	occ := bits.Zero
	q := QueenAttacks(SqD4, occ)
	r := RookAttacks(SqD4, occ)
	b := BishopAttacks(SqD4, occ)
	assert.Equal(t, r|b, q)
}

func TestLineBetweenOrthogonal(t *testing.T) {
	line := LineBetween[SqA1][SqA5]
	assert.True(t, line.Has(int(SqA2)))
	assert.True(t, line.Has(int(SqA3)))
	assert.True(t, line.Has(int(SqA4)))
	assert.True(t, line.Has(int(SqA5)))
	assert.False(t, line.Has(int(SqA1)))
	assert.False(t, line.Has(int(SqB1)))
}

func TestLineBetweenDiagonal(t *testing.T) {
	line := LineBetween[SqA1][SqD4]
	assert.True(t, line.Has(int(SqB2)))
	assert.True(t, line.Has(int(SqC3)))
	assert.True(t, line.Has(int(SqD4)))
}

func TestLineBetweenUnrelatedSquares(t *testing.T) {
	assert.Equal(t, bits.Zero, LineBetween[SqA1][SqB3])
}

func TestAttacksDispatch(t *testing.T) {
	assert.Equal(t, KnightAttacks[SqD4], Attacks(Knight, SqD4, bits.Zero))
	assert.Equal(t, KingAttacks[SqD4], Attacks(King, SqD4, bits.Zero))
	assert.Equal(t, RookAttacks(SqD4, bits.Zero), Attacks(Rook, SqD4, bits.Zero))
	assert.Equal(t, RookAttacks(SqD4, bits.Zero), Attacks(Castle, SqD4, bits.Zero))
}
