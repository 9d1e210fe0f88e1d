package main

import (
	"image"
	"image/color"
	"math"
)

func setPixelBlend(img *image.RGBA, x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	existing := img.RGBAAt(x, y)
	if existing.A == 0 {
		img.SetRGBA(x, y, c)
		return
	}
	alpha := float64(c.A) / 255.0
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(float64(existing.R)*(1-alpha) + float64(c.R)*alpha),
		G: uint8(float64(existing.G)*(1-alpha) + float64(c.G)*alpha),
		B: uint8(float64(existing.B)*(1-alpha) + float64(c.B)*alpha),
		A: 255,
	})
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: uint8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

func darken(c color.RGBA, amt float64) color.RGBA {
	return lerpColor(c, color.RGBA{0, 0, 0, c.A}, amt)
}

func brighten(c color.RGBA, amt float64) color.RGBA {
	return lerpColor(c, color.RGBA{255, 255, 255, c.A}, amt)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			setPixelBlend(img, px, py, c)
		}
	}
}

// fillCircleGrad shades from center to edge with a soft rim
func fillCircleGrad(img *image.RGBA, cx, cy, r int, center, edge color.RGBA) {
	if r <= 0 {
		setPixelBlend(img, cx, cy, center)
		return
	}
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			d := math.Hypot(float64(px-cx), float64(py-cy))
			if d > float64(r) {
				continue
			}
			c := lerpColor(center, edge, d/float64(r))
			if d > float64(r)-1 {
				c.A = uint8(float64(c.A) * (float64(r) - d))
			}
			setPixelBlend(img, px, py, c)
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			dx := float64(px-cx) / float64(rx)
			dy := float64(py-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 {
				setPixelBlend(img, px, py, c)
			}
		}
	}
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			if pointInTriangle(px, py, x0, y0, x1, y1, x2, y2) {
				setPixelBlend(img, px, py, c)
			}
		}
	}
}

func pointInTriangle(px, py, x0, y0, x1, y1, x2, y2 int) bool {
	d1 := sign(px, py, x0, y0, x1, y1)
	d2 := sign(px, py, x1, y1, x2, y2)
	d3 := sign(px, py, x2, y2, x0, y0)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(px, py, x0, y0, x1, y1 int) int {
	return (px-x1)*(y0-y1) - (x0-x1)*(py-y1)
}
