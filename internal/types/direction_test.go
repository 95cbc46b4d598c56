package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionValues(t *testing.T) {
	assert.EqualValues(t, 8, North)
	assert.EqualValues(t, -8, South)
	assert.EqualValues(t, 1, East)
	assert.EqualValues(t, -1, West)
	assert.Equal(t, North+East, Northeast)
	assert.Equal(t, South+East, Southeast)
	assert.Equal(t, South+West, Southwest)
	assert.Equal(t, North+West, Northwest)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "N", North.String())
	assert.Equal(t, "NE", Northeast.String())
	assert.Equal(t, "SW", Southwest.String())
}

func TestRookAndBishopDirections(t *testing.T) {
	assert.Len(t, RookDirections, 4)
	assert.Len(t, BishopDirections, 4)
	assert.Contains(t, RookDirections, North)
	assert.Contains(t, BishopDirections, Northeast)
}
