package core

import (
	"sync/atomic"

	"github.com/1siamBot/nachenblaster/engine/geom"
)

// EntityID is a unique identifier for game entities
type EntityID uint64

var entityCounter uint64

// NewEntityID generates a unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&entityCounter, 1))
}

// RadiusPerSize converts visual size into collision radius
const RadiusPerSize = 8.0

// ---- Position & Sprite ----

// Position is a world position. Y grows upward.
type Position struct {
	X, Y   float64
	Facing int // degrees, 0 = east, always in [0, 360)
}

// SpriteID names the image a frontend draws for an entity
type SpriteID string

const (
	SpriteShip        SpriteID = "ship"
	SpriteLightAlien  SpriteID = "alien_light"
	SpriteMediumAlien SpriteID = "alien_medium"
	SpriteHeavyAlien  SpriteID = "alien_heavy"
	SpriteBolt        SpriteID = "bolt"
	SpriteSpore       SpriteID = "spore"
	SpriteTorpedo     SpriteID = "torpedo"
	SpriteLifeGoodie  SpriteID = "goodie_life"
	SpriteRepair      SpriteID = "goodie_repair"
	SpriteAmmoGoodie  SpriteID = "goodie_ammo"
	SpriteStar        SpriteID = "star"
	SpriteExplosion   SpriteID = "explosion"
)

// Sprite is the rendering info shared by every entity
type Sprite struct {
	ID    SpriteID
	Size  float64
	Depth int // 0 is drawn on top
}

// ---- Actor contract ----

// Actor is anything the simulation advances once per tick
type Actor interface {
	ID() EntityID
	Advance()
	X() float64
	Y() float64
	Facing() int
	Radius() float64
	Sprite() Sprite
	Alive() bool
	Kill()
	IsAlien() bool
	IsProjectile() bool
	IsGoodie() bool
}

// Entity is the state every actor embeds. Concrete actors supply Advance and
// shadow the capability queries they answer true to.
type Entity struct {
	id     EntityID
	pos    Position
	sprite Sprite
	bounds geom.Bounds
	dead   bool
}

// NewEntity creates a live entity at (x, y) inside bounds
func NewEntity(bounds geom.Bounds, x, y float64, facing int, sprite Sprite) Entity {
	return Entity{
		id:     NewEntityID(),
		pos:    Position{X: x, Y: y, Facing: normalizeDegrees(facing)},
		sprite: sprite,
		bounds: bounds,
	}
}

func (e *Entity) ID() EntityID { return e.id }
func (e *Entity) X() float64 { return e.pos.X }
func (e *Entity) Y() float64 { return e.pos.Y }
func (e *Entity) Position() Position { return e.pos }
func (e *Entity) Facing() int { return e.pos.Facing }
func (e *Entity) Sprite() Sprite { return e.sprite }
func (e *Entity) Bounds() geom.Bounds { return e.bounds }
func (e *Entity) Radius() float64 { return RadiusPerSize * e.sprite.Size }
func (e *Entity) Alive() bool { return !e.dead }
func (e *Entity) IsAlien() bool { return false }
func (e *Entity) IsProjectile() bool { return false }
func (e *Entity) IsGoodie() bool { return false }
func (e *Entity) InBounds() bool { return e.bounds.Contains(e.pos.X, e.pos.Y) }
func (e *Entity) SetSize(size float64) { e.sprite.Size = size }
func (e *Entity) Rotate(degrees int) { e.pos.Facing = normalizeDegrees(e.pos.Facing + degrees) }

// Kill marks the entity dead. Calling it again has no effect.
func (e *Entity) Kill() {
	e.dead = true
}

// MoveTo relocates the entity. A destination outside the playfield kills the
// entity and leaves its position where it was.
func (e *Entity) MoveTo(x, y float64) {
	if !e.bounds.Contains(x, y) {
		e.Kill()
		return
	}
	e.pos.X = x
	e.pos.Y = y
}

func normalizeDegrees(d int) int {
	d %= 360
	if d < 0 {
		d += 360
	}
	return d
}
