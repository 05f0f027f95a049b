package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"separate horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"separate vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"fractional overlap", NewRect(0, 0, 10, 10), NewRect(9.5, 9.5, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "intersection must be symmetric")
		})
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := NewRect(100, 100, 50, 50)
	inflated := r.Inflate(20, 20)

	cx, cy := r.Center()
	icx, icy := inflated.Center()
	assert.Equal(t, cx, icx)
	assert.Equal(t, cy, icy)
	assert.Equal(t, NewRect(90, 90, 70, 70), inflated)
}

func TestRectEdgeSetters(t *testing.T) {
	r := NewRect(0, 0, 30, 30)

	r.SetRight(100)
	assert.Equal(t, 70.0, r.X)
	r.SetBottom(50)
	assert.Equal(t, 20.0, r.Y)
	r.SetLeft(5)
	r.SetTop(6)
	assert.Equal(t, NewRect(5, 6, 30, 30), r)
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 10, 10)
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(19.9, 19.9))
	assert.False(t, r.Contains(20, 15))
}

func TestNewRectCentered(t *testing.T) {
	r := NewRectCentered(500, 500, 30, 30)
	assert.Equal(t, NewRect(485, 485, 30, 30), r)
}
