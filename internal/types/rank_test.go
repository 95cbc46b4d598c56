package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankString(t *testing.T) {
	assert.Equal(t, "1", Rank1.String())
	assert.Equal(t, "8", Rank8.String())
	assert.Equal(t, "-", RankNone.String())
}

func TestRankIsValid(t *testing.T) {
	assert.True(t, Rank1.IsValid())
	assert.False(t, RankNone.IsValid())
}

func TestRankBb(t *testing.T) {
	assert.Equal(t, uint64(0xFF), uint64(Rank1.Bb()))
	assert.True(t, Rank1.Bb().Has(int(SqA1)))
	assert.True(t, Rank1.Bb().Has(int(SqH1)))
	assert.False(t, Rank1.Bb().Has(int(SqA2)))
}
