package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileString(t *testing.T) {
	assert.Equal(t, "a", FileA.String())
	assert.Equal(t, "h", FileH.String())
	assert.Equal(t, "-", FileNone.String())
}

func TestFileIsValid(t *testing.T) {
	assert.True(t, FileA.IsValid())
	assert.False(t, FileNone.IsValid())
}

func TestFileBb(t *testing.T) {
	assert.Equal(t, uint64(0x0101010101010101), uint64(FileA.Bb()))
	assert.True(t, FileA.Bb().Has(int(SqA1)))
	assert.True(t, FileA.Bb().Has(int(SqA8)))
	assert.False(t, FileA.Bb().Has(int(SqB1)))
}
