package actors

import "github.com/1siamBot/nachenblaster/engine/core"

// ProjectileKind selects a projectile's damage, speed and spin
type ProjectileKind uint8

const (
	KindBolt ProjectileKind = iota
	KindSpore
	KindTorpedo
)

func (k ProjectileKind) String() string {
	switch k {
	case KindBolt:
		return "bolt"
	case KindSpore:
		return "spore"
	case KindTorpedo:
		return "torpedo"
	}
	return "unknown"
}

// Torpedo facings decide who fired them
const (
	FacingPlayer = 0
	FacingAlien  = 180
)

const (
	projectileSize = 0.5
	spinStep       = 20
)

type projectileSpec struct {
	sprite   core.SpriteID
	damage   float64
	delta    float64
	rotates  bool
	byPlayer func(p *Projectile) bool
}

var projectileSpecs = map[ProjectileKind]projectileSpec{
	KindBolt:    {sprite: core.SpriteBolt, damage: 2, delta: 8, rotates: true, byPlayer: always},
	KindSpore:   {sprite: core.SpriteSpore, damage: 2, delta: 6, rotates: true, byPlayer: never},
	KindTorpedo: {sprite: core.SpriteTorpedo, damage: 8, delta: 8, byPlayer: facesEast},
}

func always(*Projectile) bool { return true }
func never(*Projectile) bool { return false }

// a torpedo keeps its launch facing because it never spins
func facesEast(p *Projectile) bool { return p.Facing() == FacingPlayer }

// Projectile is a shot travelling horizontally across the playfield
type Projectile struct {
	core.Entity
	arena Arena
	kind  ProjectileKind
	spec  projectileSpec
}

func newProjectile(arena Arena, kind ProjectileKind, x, y float64, facing int) *Projectile {
	spec := projectileSpecs[kind]
	sprite := core.Sprite{ID: spec.sprite, Size: projectileSize, Depth: depthFront}
	return &Projectile{
		Entity: core.NewEntity(arena.Bounds(), x, y, facing, sprite),
		arena:  arena,
		kind:   kind,
		spec:   spec,
	}
}

// NewBolt creates the player's primary shot
func NewBolt(arena Arena, x, y float64) *Projectile {
	return newProjectile(arena, KindBolt, x, y, FacingPlayer)
}

// NewSpore creates the slow shot fired by light and medium aliens
func NewSpore(arena Arena, x, y float64) *Projectile {
	return newProjectile(arena, KindSpore, x, y, FacingPlayer)
}

// NewTorpedo creates a torpedo. facing is FacingPlayer when the ship fires
// it and FacingAlien when an alien does.
func NewTorpedo(arena Arena, x, y float64, facing int) *Projectile {
	return newProjectile(arena, KindTorpedo, x, y, facing)
}

func (p *Projectile) IsProjectile() bool { return true }
func (p *Projectile) Kind() ProjectileKind { return p.kind }
func (p *Projectile) Damage() float64 { return p.spec.damage }
func (p *Projectile) FiredByPlayer() bool { return p.spec.byPlayer(p) }
func (p *Projectile) FiredByAlien() bool { return !p.spec.byPlayer(p) }

// Advance flies the projectile one step toward its target side
func (p *Projectile) Advance() {
	if !p.Alive() {
		return
	}
	b := p.Bounds()
	if p.X() >= b.Width || p.X() < 0 {
		p.Kill()
		return
	}

	p.arena.Resolve(p)
	if !p.Alive() {
		return
	}

	dx := p.spec.delta
	if p.FiredByAlien() {
		dx = -dx
	}
	p.MoveTo(p.X()+dx, p.Y())
	if p.spec.rotates {
		p.Rotate(spinStep)
	}

	p.arena.Resolve(p)
}
