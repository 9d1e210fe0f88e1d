package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var field = Bounds{Width: 256, Height: 256}

func TestBoundsContains(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 255.9, 255.9, true},
		{"negative x", -0.1, 10, false},
		{"x at width", 256, 10, false},
		{"negative y", 10, -1, false},
		{"y at height", 10, 256, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, field.Contains(tt.x, tt.y))
		})
	}
}

func TestBoundsClampFirstViolationWins(t *testing.T) {
	x, y := field.Clamp(-6, -6)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, -6.0, y, "only the x-low side is corrected")

	x, y = field.Clamp(300, 300)
	assert.Equal(t, 255.0, x)
	assert.Equal(t, 300.0, y)

	x, y = field.Clamp(10, -2)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 0.0, y)

	x, y = field.Clamp(10, 262)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 255.0, y)

	x, y = field.Clamp(10, 20)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}

func TestBoundsClampY(t *testing.T) {
	assert.Equal(t, 0.0, field.ClampY(-3))
	assert.Equal(t, 255.0, field.ClampY(257.5))
	assert.Equal(t, 100.0, field.ClampY(100))
}

func TestDistance(t *testing.T) {
	require.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	require.InDelta(t, 0.0, Distance(7, 7, 7, 7), 1e-9)
}

func TestCirclesOverlap(t *testing.T) {
	// 0.75 * (5 + 8) = 9.75 which is not more than 10.
	assert.False(t, CirclesOverlap(0, 0, 5, 10, 0, 8))
	// 0.75 * (7 + 7) = 10.5 which is more than 10.
	assert.True(t, CirclesOverlap(0, 0, 7, 10, 0, 7))
	// Exactly on the threshold is a miss.
	assert.False(t, CirclesOverlap(0, 0, 4, 6, 0, 4))
}
