package actors

import "github.com/1siamBot/nachenblaster/engine/core"

const (
	ShipHitPoints = 50
	MaxEnergy     = 30
	ShotCost      = 5
	ShipStep      = 6
	muzzleOffset  = 12
)

// Ship is the player's craft
type Ship struct {
	core.Damageable
	arena     Arena
	energy    int
	torpedoes int
}

// NewShip places a fresh ship at the left edge, halfway up
func NewShip(arena Arena) *Ship {
	b := arena.Bounds()
	e := core.NewEntity(b, 0, b.Height/2, 0, core.Sprite{ID: core.SpriteShip, Size: 1, Depth: depthShip})
	return &Ship{
		Damageable: core.NewDamageable(e, ShipHitPoints),
		arena:      arena,
		energy:     MaxEnergy,
	}
}

func (s *Ship) Energy() int { return s.energy }
func (s *Ship) Torpedoes() int { return s.torpedoes }

// AddTorpedoes adds secondary ammo
func (s *Ship) AddTorpedoes(n int) { s.torpedoes += n }

// HealthPercent is hit points as a share of a full hull
func (s *Ship) HealthPercent() float64 {
	return s.HitPoints() / ShipHitPoints * 100
}

// EnergyPercent is energy as a share of a full charge
func (s *Ship) EnergyPercent() float64 {
	return float64(s.energy) / MaxEnergy * 100
}

// ApplyDamage hurts the ship whatever the cause
func (s *Ship) ApplyDamage(n float64, _ core.Cause) {
	s.Hurt(n)
	if s.HitPoints() <= 0 {
		s.Kill()
	}
}

// Advance consumes at most one action then recharges energy
func (s *Ship) Advance() {
	if !s.Alive() {
		return
	}
	if act, ok := s.arena.PollAction(); ok {
		switch act {
		case core.ActionFirePrimary:
			if s.energy >= ShotCost {
				s.arena.Spawn(NewBolt(s.arena, s.X()+muzzleOffset, s.Y()))
				s.energy -= ShotCost
				s.arena.PlayEffect(core.EffectPlayerShoot)
			}
		case core.ActionFireSecondary:
			if s.torpedoes > 0 {
				s.arena.Spawn(NewTorpedo(s.arena, s.X()+muzzleOffset, s.Y(), FacingPlayer))
				s.torpedoes--
				s.arena.PlayEffect(core.EffectTorpedo)
			}
		case core.ActionMoveLeft, core.ActionMoveRight, core.ActionMoveUp, core.ActionMoveDown:
			s.move(act)
			if !s.Alive() {
				return
			}
		}
	}
	if s.energy < MaxEnergy {
		s.energy++
	}
}

func (s *Ship) move(act core.Action) {
	x, y := s.X(), s.Y()
	switch act {
	case core.ActionMoveLeft:
		x -= ShipStep
	case core.ActionMoveRight:
		x += ShipStep
	case core.ActionMoveUp:
		y += ShipStep
	case core.ActionMoveDown:
		y -= ShipStep
	}
	b := s.Bounds()
	if !b.Contains(x, y) {
		x, y = b.Clamp(x, y)
	}
	s.MoveTo(x, y)
	s.arena.Resolve(s)
}
