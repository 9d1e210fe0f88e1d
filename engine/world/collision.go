package world

import (
	"go.uber.org/zap"

	"github.com/1siamBot/nachenblaster/engine/actors"
	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/geom"
)

func overlaps(a, b core.Actor) bool {
	return geom.CirclesOverlap(a.X(), a.Y(), a.Radius(), b.X(), b.Y(), b.Radius())
}

// Resolve runs the collision rules for subject. Each pair resolves at most
// once per tick: the loser of a collision is dead before anything can check
// it again.
func (m *Manager) Resolve(subject core.Actor) {
	if !subject.Alive() {
		return
	}
	switch {
	case m.ship != nil && subject == core.Actor(m.ship):
		m.resolveShip(m.ship)
	case subject.IsAlien():
		m.resolveAlien(subject.(*actors.Alien))
	case subject.IsProjectile():
		m.resolveProjectile(subject.(*actors.Projectile))
	case subject.IsGoodie():
		m.resolveGoodie(subject.(*actors.Goodie))
	}
}

func (m *Manager) resolveShip(ship *actors.Ship) {
	for i := 0; i < len(m.actors) && ship.Alive(); i++ {
		other := m.actors[i]
		if !other.Alive() || !overlaps(ship, other) {
			continue
		}
		switch {
		case other.IsAlien():
			m.ram(other.(*actors.Alien))
		case other.IsProjectile():
			if p := other.(*actors.Projectile); p.FiredByAlien() {
				m.hitShip(p)
			}
		}
	}
}

func (m *Manager) resolveAlien(alien *actors.Alien) {
	if m.ship != nil && m.ship.Alive() && overlaps(alien, m.ship) {
		m.ram(alien)
		return
	}
	for i := 0; i < len(m.actors) && alien.Alive(); i++ {
		other := m.actors[i]
		if !other.Alive() || !other.IsProjectile() || !overlaps(alien, other) {
			continue
		}
		if p := other.(*actors.Projectile); p.FiredByPlayer() {
			m.hitAlien(alien, p)
		}
	}
}

func (m *Manager) resolveProjectile(p *actors.Projectile) {
	if p.FiredByAlien() {
		if m.ship != nil && m.ship.Alive() && overlaps(p, m.ship) {
			m.hitShip(p)
		}
		return
	}
	for i := 0; i < len(m.actors); i++ {
		other := m.actors[i]
		if !other.Alive() || !other.IsAlien() || !overlaps(p, other) {
			continue
		}
		m.hitAlien(other.(*actors.Alien), p)
	}
}

func (m *Manager) resolveGoodie(g *actors.Goodie) {
	if m.ship == nil || !m.ship.Alive() || !overlaps(g, m.ship) {
		return
	}
	m.board.AddScore(actors.GoodieScore)
	g.Collect(m.ship)
	m.emit(core.EvtGoodieCollected, core.GoodiePayload{Kind: g.Kind().String()})
	m.log.Debug("goodie collected", zap.Stringer("kind", g.Kind()))
}

// ram destroys the alien and charges its contact damage to the ship
func (m *Manager) ram(alien *actors.Alien) {
	alien.ApplyDamage(0, core.CauseShip)
	m.damageShip(alien.ContactDamage(), core.CauseShip)
}

func (m *Manager) hitShip(p *actors.Projectile) {
	p.Kill()
	m.damageShip(p.Damage(), core.CauseProjectile)
}

func (m *Manager) hitAlien(alien *actors.Alien, p *actors.Projectile) {
	p.Kill()
	alien.ApplyDamage(p.Damage(), core.CauseProjectile)
}

func (m *Manager) damageShip(n float64, cause core.Cause) {
	m.ship.ApplyDamage(n, cause)
	m.emit(core.EvtShipDamaged, core.DamagePayload{Amount: n, Cause: cause, HitPoints: m.ship.HitPoints()})
	if !m.ship.Alive() {
		m.log.Debug("ship destroyed", zap.Stringer("cause", cause))
	}
}
