package actors

import "github.com/1siamBot/nachenblaster/engine/core"

// GoodieKind selects what a goodie does when the ship collects it
type GoodieKind uint8

const (
	GoodieExtraLife GoodieKind = iota
	GoodieRepair
	GoodieAmmo
)

func (k GoodieKind) String() string {
	switch k {
	case GoodieExtraLife:
		return "extra_life"
	case GoodieRepair:
		return "repair"
	case GoodieAmmo:
		return "torpedoes"
	}
	return "unknown"
}

const (
	GoodieScore  = 100
	RepairAmount = 10
	AmmoAmount   = 5
	goodieSize   = 0.5
	goodieDrift  = 0.75
)

type goodieEffect struct {
	sprite core.SpriteID
	apply  func(arena Arena, ship *Ship)
}

var goodieEffects = map[GoodieKind]goodieEffect{
	GoodieExtraLife: {sprite: core.SpriteLifeGoodie, apply: func(a Arena, _ *Ship) { a.AddLife() }},
	GoodieRepair:    {sprite: core.SpriteRepair, apply: func(_ Arena, s *Ship) { s.Heal(RepairAmount) }},
	GoodieAmmo:      {sprite: core.SpriteAmmoGoodie, apply: func(_ Arena, s *Ship) { s.AddTorpedoes(AmmoAmount) }},
}

// Goodie is a pickup dropped by a destroyed alien
type Goodie struct {
	core.Entity
	arena  Arena
	kind   GoodieKind
	effect goodieEffect
}

// NewGoodie creates a goodie of kind at (x, y)
func NewGoodie(arena Arena, kind GoodieKind, x, y float64) *Goodie {
	effect := goodieEffects[kind]
	sprite := core.Sprite{ID: effect.sprite, Size: goodieSize, Depth: depthFront}
	return &Goodie{
		Entity: core.NewEntity(arena.Bounds(), x, y, 0, sprite),
		arena:  arena,
		kind:   kind,
		effect: effect,
	}
}

func (g *Goodie) IsGoodie() bool { return true }
func (g *Goodie) Kind() GoodieKind { return g.kind }

// Collect applies the goodie to ship and consumes it
func (g *Goodie) Collect(ship *Ship) {
	if !g.Alive() {
		return
	}
	g.effect.apply(g.arena, ship)
	g.Kill()
}

// Advance drifts the goodie down and to the left
func (g *Goodie) Advance() {
	if !g.Alive() {
		return
	}
	if !g.InBounds() {
		g.Kill()
		return
	}

	g.arena.Resolve(g)
	if !g.Alive() {
		return
	}

	g.MoveTo(g.X()-goodieDrift, g.Y()-goodieDrift)
	g.arena.Resolve(g)
}
