package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntRange(353, 596), b.IntRange(353, 596))
		assert.Equal(t, a.Bool(), b.Bool())
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestIntRangeBounds(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 500; i++ {
		v := r.IntRange(3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, 9, r.IntRange(9, 9))
	assert.Equal(t, 9, r.IntRange(9, 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 10))
}
