package main

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/view"
)

type painter struct {
	id   core.SpriteID
	draw func(img *image.RGBA, s int)
}

var painters = []painter{
	{core.SpriteShip, shipSprite},
	{core.SpriteLightAlien, saucer(core.SpriteLightAlien, 1)},
	{core.SpriteMediumAlien, saucer(core.SpriteMediumAlien, 3)},
	{core.SpriteHeavyAlien, heavySprite},
	{core.SpriteBolt, boltSprite},
	{core.SpriteSpore, orb(core.SpriteSpore, 3)},
	{core.SpriteTorpedo, torpedoSprite},
	{core.SpriteLifeGoodie, goodie(core.SpriteLifeGoodie, plusMark)},
	{core.SpriteRepair, goodie(core.SpriteRepair, wrenchMark)},
	{core.SpriteAmmoGoodie, goodie(core.SpriteAmmoGoodie, ammoMark)},
	{core.SpriteStar, orb(core.SpriteStar, 4)},
	{core.SpriteExplosion, explosionSprite},
}

func colorOf(id core.SpriteID) color.RGBA {
	return view.LookOf(id).Color
}

// ---- Player ----

func shipSprite(img *image.RGBA, s int) {
	c := colorOf(core.SpriteShip)
	m := s / 2
	fillTriangle(img, 1, 2, s-2, m, 1, s-3, darken(c, 0.3))
	fillTriangle(img, 4, 6, s-5, m, 4, s-7, c)
	fillEllipse(img, m, m, s/6, s/10, brighten(c, 0.6))
	// engine glow
	fillRect(img, 0, m-2, 3, 4, colornames.Orange)
}

// ---- Aliens ----

func saucer(id core.SpriteID, lights int) func(*image.RGBA, int) {
	return func(img *image.RGBA, s int) {
		c := colorOf(id)
		m := s / 2
		fillEllipse(img, m, m+s/10, s/2-1, s/6, darken(c, 0.25))
		fillCircleGrad(img, m, m, s/5, brighten(c, 0.5), c)
		for i := 0; i < lights; i++ {
			x := m - s/4 + i*(s/2)/max(lights-1, 1)
			if lights == 1 {
				x = m
			}
			setPixelBlend(img, x, m+s/10, colornames.Yellow)
		}
	}
}

func heavySprite(img *image.RGBA, s int) {
	c := colorOf(core.SpriteHeavyAlien)
	m := s / 2
	fillTriangle(img, m, 0, m-s/6, m, m+s/6, m, darken(c, 0.4))
	fillTriangle(img, m, s-1, m-s/6, m, m+s/6, m, darken(c, 0.4))
	fillCircleGrad(img, m, m, s/2-4, brighten(c, 0.3), darken(c, 0.2))
	fillCircleGrad(img, m-s/8, m, s/10, colornames.White, colornames.Red)
}

// ---- Projectiles ----

func boltSprite(img *image.RGBA, s int) {
	c := colorOf(core.SpriteBolt)
	m := s / 2
	fillRect(img, 2, m-2, s-4, 4, darken(c, 0.2))
	fillRect(img, 4, m-1, s-8, 2, brighten(c, 0.7))
}

func torpedoSprite(img *image.RGBA, s int) {
	c := colorOf(core.SpriteTorpedo)
	m := s / 2
	fillRect(img, 3, m-3, s-12, 6, darken(c, 0.2))
	fillTriangle(img, s-9, m-3, s-1, m, s-9, m+2, c)
	fillTriangle(img, 3, m-3, 0, m-7, 7, m-3, colornames.Gray)
	fillTriangle(img, 3, m+2, 0, m+6, 7, m+2, colornames.Gray)
}

func orb(id core.SpriteID, inset int) func(*image.RGBA, int) {
	return func(img *image.RGBA, s int) {
		c := colorOf(id)
		fillCircleGrad(img, s/2, s/2, s/2-inset, brighten(c, 0.8), darken(c, 0.3))
	}
}

// ---- Goodies ----

func goodie(id core.SpriteID, mark func(*image.RGBA, int)) func(*image.RGBA, int) {
	return func(img *image.RGBA, s int) {
		c := colorOf(id)
		fillCircleGrad(img, s/2, s/2, s/2-1, brighten(c, 0.4), darken(c, 0.3))
		mark(img, s)
	}
}

func plusMark(img *image.RGBA, s int) {
	m := s / 2
	fillRect(img, m-1, s/4, 3, s/2, colornames.White)
	fillRect(img, s/4, m-1, s/2, 3, colornames.White)
}

func wrenchMark(img *image.RGBA, s int) {
	m := s / 2
	fillRect(img, m-1, s/4+2, 3, s/2-2, colornames.White)
	fillCircleGrad(img, m, s/4+1, s/8, colornames.White, colornames.Lightgray)
}

func ammoMark(img *image.RGBA, s int) {
	fillRect(img, s/4, s/3, s/2, 3, colornames.White)
	fillRect(img, s/4, s*2/3-3, s/2, 3, colornames.White)
}

// ---- Effects ----

func explosionSprite(img *image.RGBA, s int) {
	c := colorOf(core.SpriteExplosion)
	m := s / 2
	fillCircleGrad(img, m, m, s/2-1, colornames.Yellow, color.RGBA{c.R, c.G, c.B, 0})
	fillCircleGrad(img, m, m, s/4, colornames.White, colornames.Yellow)
}
