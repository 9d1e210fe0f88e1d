package core

// ---- Health & Combat ----

// MaxHitPoints caps healing. Entities may start above it but never heal past it.
const MaxHitPoints = 50.0

// Cause says what dealt damage
type Cause uint8

const (
	CauseShip Cause = iota
	CauseProjectile
)

func (c Cause) String() string {
	switch c {
	case CauseShip:
		return "ship"
	case CauseProjectile:
		return "projectile"
	}
	return "unknown"
}

// Damageable is an Entity with hit points
type Damageable struct {
	Entity
	hp float64
}

// NewDamageable wraps an entity with the given starting hit points
func NewDamageable(e Entity, hp float64) Damageable {
	return Damageable{Entity: e, hp: hp}
}

// HitPoints returns the remaining hit points
func (d *Damageable) HitPoints() float64 { return d.hp }

// Heal adds hit points up to MaxHitPoints
func (d *Damageable) Heal(n float64) {
	if d.hp >= MaxHitPoints {
		return
	}
	d.hp += n
	if d.hp > MaxHitPoints {
		d.hp = MaxHitPoints
	}
}

// Hurt subtracts hit points. It never kills; that is up to ApplyDamage.
func (d *Damageable) Hurt(n float64) {
	d.hp -= n
}

// Target is an actor that reacts to damage
type Target interface {
	Actor
	ApplyDamage(n float64, cause Cause)
	HitPoints() float64
}
