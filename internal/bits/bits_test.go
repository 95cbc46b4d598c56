package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, Zero.PopCount())
	assert.Equal(t, 64, All.PopCount())
	assert.Equal(t, 1, Bitboard(1).PopCount())
	assert.Equal(t, 8, Bitboard(0xFF).PopCount())
}

func TestLsbMsb(t *testing.T) {
	b := Bitboard(0b1010_1000)
	assert.Equal(t, 3, b.Lsb())
	assert.Equal(t, 7, b.Msb())
}

func TestPopLsb(t *testing.T) {
	b := Bitboard(0b1010_1000)
	sq := b.PopLsb()
	assert.Equal(t, 3, sq)
	assert.Equal(t, Bitboard(0b1010_0000), b)
}

func TestByteSwap(t *testing.T) {
	// rank 1 (low byte) swaps with rank 8 (high byte).
	rank1 := Bitboard(0xFF)
	swapped := rank1.ByteSwap()
	assert.Equal(t, Bitboard(0xFF00000000000000), swapped)
	// involution: swapping twice returns the original.
	assert.Equal(t, rank1, swapped.ByteSwap())
}

func TestHasSetClear(t *testing.T) {
	var b Bitboard
	b = b.Set(5)
	assert.True(t, b.Has(5))
	assert.False(t, b.Has(4))
	b = b.Clear(5)
	assert.False(t, b.Has(5))
}

func TestNextSubsetEnumeratesAllSubsets(t *testing.T) {
	mask := Bitboard(0b1011)
	seen := map[Bitboard]bool{}
	sub := Zero
	for {
		seen[sub] = true
		sub = sub.NextSubset(mask)
		if sub == 0 {
			break
		}
	}
	// mask has 3 set bits -> 8 subsets, including the empty one.
	assert.Len(t, seen, 8)
	for s := range seen {
		assert.Equal(t, s, s&mask)
	}
}

func TestExtractMatchesOrderOfMaskBits(t *testing.T) {
	mask := Bitboard(0b0101_0010)
	b := Bitboard(0b0101_0010) // every masked bit set
	assert.Equal(t, Bitboard(0b111), Extract(b, mask))

	b = Bitboard(0b0100_0010) // only the 1st and 3rd masked bits set (positions 1 and 6)
	assert.Equal(t, Bitboard(0b101), Extract(b, mask))
}
