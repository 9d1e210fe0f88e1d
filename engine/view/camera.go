// Package view maps the simulation's world coordinates onto a frontend's
// surface. It has no display dependencies so both frontends share it.
package view

import (
	"math"

	"github.com/1siamBot/nachenblaster/engine/geom"
)

// Camera is a fixed orthographic viewport onto the whole playfield.
// World y grows upward, screen y grows downward.
type Camera struct {
	WorldW, WorldH float64
	Scale          float64 // screen units per world unit
	Top            int     // rows reserved above the playfield for the status bar
}

// NewCamera creates a camera covering the playfield at the given scale
func NewCamera(b geom.Bounds, scale float64, top int) *Camera {
	if scale <= 0 {
		scale = 1
	}
	return &Camera{WorldW: b.Width, WorldH: b.Height, Scale: scale, Top: top}
}

// ScreenSize is the surface size needed to show the playfield and status bar
func (c *Camera) ScreenSize() (int, int) {
	w := int(math.Ceil(c.WorldW * c.Scale))
	h := int(math.Ceil(c.WorldH*c.Scale)) + c.Top
	return w, h
}

// WorldToScreen converts a world position to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := wx * c.Scale
	sy := float64(c.Top) + (c.WorldH-1-wy)*c.Scale
	return sx, sy
}

// ScreenToWorld converts screen coordinates back to a world position
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := sx / c.Scale
	wy := c.WorldH - 1 - (sy-float64(c.Top))/c.Scale
	return wx, wy
}

// Length scales a world distance such as a radius
func (c *Camera) Length(r float64) float64 {
	return r * c.Scale
}

// ---- Character grid ----

// Grid maps the playfield onto a terminal of cols x rows cells, with Top
// rows kept free for the status bar. Each axis is scaled independently.
type Grid struct {
	WorldW, WorldH float64
	Cols, Rows     int
	Top            int
}

// NewGrid fits the playfield into a terminal of the given size
func NewGrid(b geom.Bounds, cols, rows, top int) *Grid {
	g := &Grid{WorldW: b.Width, WorldH: b.Height, Top: top}
	g.Resize(cols, rows)
	return g
}

// Resize refits the grid after the terminal changes size
func (g *Grid) Resize(cols, rows int) {
	g.Cols = cols
	g.Rows = rows - g.Top
	if g.Rows < 0 {
		g.Rows = 0
	}
}

// Cell returns the terminal cell for a world position. ok is false when the
// position falls outside the playfield or the grid has no room.
func (g *Grid) Cell(wx, wy float64) (col, row int, ok bool) {
	if g.Cols <= 0 || g.Rows <= 0 {
		return 0, 0, false
	}
	if wx < 0 || wx >= g.WorldW || wy < 0 || wy >= g.WorldH {
		return 0, 0, false
	}
	col = int(wx * float64(g.Cols) / g.WorldW)
	row = g.Top + int((g.WorldH-1-wy)*float64(g.Rows)/g.WorldH)
	return col, row, true
}
