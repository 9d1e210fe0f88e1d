// Package geom holds the stateless geometry helpers shared by the simulation:
// playfield bounds, distance and the circular overlap test.
package geom

import "math"

// OverlapFactor shrinks the combined radii so sprites visibly touch before
// they register as a hit.
const OverlapFactor = 0.75

// Bounds is the playfield rectangle [0, Width) x [0, Height).
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the playfield.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Clamp pulls an out-of-range point onto the nearest edge. Only the first
// violated side is corrected, checked in the order x-low, x-high, y-low, y-high.
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	switch {
	case x < 0:
		x = 0
	case x >= b.Width:
		x = b.Width - 1
	case y < 0:
		y = 0
	case y >= b.Height:
		y = b.Height - 1
	}
	return x, y
}

// ClampY keeps y inside [0, Height-1] and leaves x alone.
func (b Bounds) ClampY(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > b.Height-1 {
		return b.Height - 1
	}
	return y
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap reports whether two circles count as colliding.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < OverlapFactor*(r1+r2)
}
