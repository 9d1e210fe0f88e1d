package actors

import "github.com/1siamBot/nachenblaster/engine/core"

// Star is background scenery scrolling left
type Star struct {
	core.Entity
}

// NewStar creates a star of the given size at (x, y)
func NewStar(arena Arena, x, y, size float64) *Star {
	sprite := core.Sprite{ID: core.SpriteStar, Size: size, Depth: depthStars}
	return &Star{Entity: core.NewEntity(arena.Bounds(), x, y, 0, sprite)}
}

// NewRandomStar draws a star size between 0.05 and 0.50
func NewRandomStar(arena Arena, x, y float64) *Star {
	return NewStar(arena, x, y, float64(arena.RandInt(5, 50))/100)
}

func (s *Star) Advance() {
	if !s.Alive() {
		return
	}
	s.MoveTo(s.X()-1, s.Y())
}

const (
	explosionGrowth = 1.5
	explosionTicks  = 3
)

// Explosion grows for three ticks after an alien dies and vanishes on the fourth
type Explosion struct {
	core.Entity
	ticks int
}

// NewExplosion creates an explosion at (x, y)
func NewExplosion(arena Arena, x, y float64) *Explosion {
	sprite := core.Sprite{ID: core.SpriteExplosion, Size: 1, Depth: 0}
	return &Explosion{Entity: core.NewEntity(arena.Bounds(), x, y, 0, sprite)}
}

func (e *Explosion) Advance() {
	if !e.Alive() {
		return
	}
	if e.ticks >= explosionTicks {
		e.Kill()
		return
	}
	e.SetSize(e.Sprite().Size * explosionGrowth)
	e.ticks++
}
