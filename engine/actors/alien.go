package actors

import "github.com/1siamBot/nachenblaster/engine/core"

// AlienClass selects the per-variant behavior of an alien
type AlienClass uint8

const (
	AlienLight AlienClass = iota
	AlienMedium
	AlienHeavy
)

func (c AlienClass) String() string {
	switch c {
	case AlienLight:
		return "light"
	case AlienMedium:
		return "medium"
	case AlienHeavy:
		return "heavy"
	}
	return "unknown"
}

// Heading is one of the three leftward directions an alien flies
type Heading uint8

// Values match the draw RandInt(1, 3).
const (
	HeadingDownLeft Heading = iota + 1
	HeadingUpLeft
	HeadingDueLeft
)

func (h Heading) delta() (int, int) {
	switch h {
	case HeadingDownLeft:
		return -1, -1
	case HeadingUpLeft:
		return -1, 1
	default:
		return -1, 0
	}
}

const (
	// NoReplan marks a flight plan that never counts down or redraws
	NoReplan     = -1
	maxPlan      = 32
	alienSize    = 1.5
	alienMuzzle  = 14
	fireBandY    = 4
	chargeSpeed  = 5
	levelHPScale = 0.1
)

// alienPolicy holds everything that differs between alien classes
type alienPolicy struct {
	sprite  core.SpriteID
	baseHP  float64
	contact float64
	speed   float64
	score   int
	start   func(a *Alien)
	shoot   func(a *Alien) bool
	drop    func(a *Alien)
}

var alienPolicies = map[AlienClass]alienPolicy{
	AlienLight: {
		sprite:  core.SpriteLightAlien,
		baseHP:  5,
		contact: 5,
		speed:   2,
		score:   250,
		shoot:   shootSpore,
		drop:    dropNothing,
	},
	AlienMedium: {
		sprite:  core.SpriteMediumAlien,
		baseHP:  5,
		contact: 5,
		speed:   2,
		score:   250,
		shoot:   shootSporeOrCharge,
		drop:    dropRepairOrAmmo,
	},
	AlienHeavy: {
		sprite:  core.SpriteHeavyAlien,
		baseHP:  10,
		contact: 15,
		speed:   1.75,
		score:   1000,
		start:   startHeavy,
		shoot:   shootTorpedo,
		drop:    dropExtraLife,
	},
}

// Alien is an enemy ship. Its class policy supplies hit points, contact
// damage, speed, score and the shoot and drop rules.
type Alien struct {
	core.Damageable
	arena    Arena
	class    AlienClass
	policy   alienPolicy
	dx, dy   int
	speed    float64
	plan     int
	charging bool
}

// NewAlien creates an alien of class at (x, y). Hit points scale with the
// arena's current level.
func NewAlien(arena Arena, class AlienClass, x, y float64) *Alien {
	p, ok := alienPolicies[class]
	if !ok {
		p = alienPolicies[AlienLight]
		class = AlienLight
	}
	hp := p.baseHP * (1 + levelHPScale*float64(arena.Level()-1))
	e := core.NewEntity(arena.Bounds(), x, y, 0, core.Sprite{ID: p.sprite, Size: alienSize, Depth: depthFront})
	a := &Alien{
		Damageable: core.NewDamageable(e, hp),
		arena:      arena,
		class:      class,
		policy:     p,
		speed:      p.speed,
	}
	if p.start != nil {
		p.start(a)
	}
	return a
}

func (a *Alien) IsAlien() bool { return true }
func (a *Alien) Class() AlienClass { return a.class }
func (a *Alien) ContactDamage() float64 { return a.policy.contact }
func (a *Alien) ScoreValue() int { return a.policy.score }
func (a *Alien) Speed() float64 { return a.speed }
func (a *Alien) FlightPlan() int { return a.plan }
func (a *Alien) Charging() bool { return a.charging }
func (a *Alien) Delta() (dx int, dy int) { return a.dx, a.dy }

func (a *Alien) setHeading(h Heading) {
	a.dx, a.dy = h.delta()
}

// Advance runs one tick of alien behavior
func (a *Alien) Advance() {
	if !a.Alive() {
		return
	}
	if a.X() < 0 {
		a.Kill()
		return
	}

	a.arena.Resolve(a)
	if !a.Alive() {
		return
	}

	b := a.Bounds()
	if !a.charging && (a.plan == 0 || a.Y() >= b.Height-1 || a.Y() <= 0) {
		switch {
		case a.Y() >= b.Height-1:
			a.setHeading(HeadingDownLeft)
		case a.Y() <= 0:
			a.setHeading(HeadingUpLeft)
		default:
			a.setHeading(Heading(a.arena.RandInt(1, 3)))
		}
		if a.plan != NoReplan {
			a.plan = a.arena.RandInt(1, maxPlan)
		}
	}

	if a.arena.PlayerInLineOfFire(a) && a.policy.shoot(a) {
		return
	}

	x := a.X() + float64(a.dx)*a.speed
	y := b.ClampY(a.Y() + float64(a.dy)*a.speed)
	a.MoveTo(x, y)
	if a.plan != NoReplan {
		a.plan--
	}

	a.arena.Resolve(a)
}

// ApplyDamage handles a hit. Ship contact always destroys the alien;
// projectiles destroy it once hit points run out and blast otherwise.
func (a *Alien) ApplyDamage(n float64, cause core.Cause) {
	if !a.Alive() {
		return
	}
	a.Hurt(n)
	if cause == core.CauseShip || a.HitPoints() <= 0 {
		a.destroy()
		return
	}
	a.arena.PlayEffect(core.EffectBlast)
}

func (a *Alien) destroy() {
	a.Kill()
	a.arena.AlienDestroyed(a)
	a.arena.PlayEffect(core.EffectDeath)
	a.arena.Spawn(NewExplosion(a.arena, a.X(), a.Y()))
	a.policy.drop(a)
}

// InLineOfFire reports whether a ship at (x, y) is ahead of the alien and
// within its vertical firing band
func (a *Alien) InLineOfFire(x, y float64) bool {
	dy := a.Y() - y
	if dy < 0 {
		dy = -dy
	}
	return x < a.X() && dy <= fireBandY
}

// heavy aliens enter diving down-left and hold their heading until an edge
func startHeavy(a *Alien) {
	a.setHeading(HeadingDownLeft)
	a.plan = NoReplan
}

// ---- Shoot policies ----

func shootSpore(a *Alien) bool {
	return sporeRoll(a) == 1
}

func shootSporeOrCharge(a *Alien) bool {
	switch sporeRoll(a) {
	case 1:
		return true
	case 2:
		a.charge()
	}
	return false
}

// sporeRoll draws from 1-in-(20/level+5) and fires a spore on a 1
func sporeRoll(a *Alien) int {
	roll := a.arena.RandInt(1, 20/a.arena.Level()+5)
	if roll == 1 {
		a.arena.Spawn(NewSpore(a.arena, a.X()-alienMuzzle, a.Y()))
		a.arena.PlayEffect(core.EffectAlienShoot)
	}
	return roll
}

func shootTorpedo(a *Alien) bool {
	if a.arena.RandInt(1, 15/a.arena.Level()+10) != 1 {
		return false
	}
	a.arena.Spawn(NewTorpedo(a.arena, a.X()-alienMuzzle, a.Y(), FacingAlien))
	a.arena.PlayEffect(core.EffectTorpedo)
	return true
}

// charge commits the alien to a straight run at the left edge
func (a *Alien) charge() {
	a.setHeading(HeadingDueLeft)
	a.plan = int(a.Bounds().Width)
	a.speed = chargeSpeed
	a.charging = true
}

// ---- Drop policies ----

func dropNothing(*Alien) {}

func dropRepairOrAmmo(a *Alien) {
	if a.arena.RandInt(1, 3) != 1 {
		return
	}
	kind := GoodieRepair
	if a.arena.RandInt(1, 2) != 1 {
		kind = GoodieAmmo
	}
	a.arena.Spawn(NewGoodie(a.arena, kind, a.X(), a.Y()))
	a.arena.PlayEffect(core.EffectGoodie)
}

func dropExtraLife(a *Alien) {
	if a.arena.RandInt(1, 6) != 1 {
		return
	}
	a.arena.Spawn(NewGoodie(a.arena, GoodieExtraLife, a.X(), a.Y()))
	a.arena.PlayEffect(core.EffectGoodie)
}
