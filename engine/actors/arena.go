// Package actors implements every entity that lives on the playfield: the
// player ship, the three alien classes, projectiles, goodies and the
// decorative stars and explosions.
//
// Actors never touch each other directly. Everything that crosses entity
// boundaries goes through the Arena they were spawned into.
package actors

import (
	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/geom"
)

// Arena is the world as seen by an actor
type Arena interface {
	Bounds() geom.Bounds
	Level() int
	RandInt(lo, hi int) int

	// Spawn adds an actor. It becomes visible to the current tick.
	Spawn(a core.Actor)
	// Resolve runs collision checks for subject against every live actor.
	Resolve(subject core.Actor)

	PlayEffect(e core.Effect)
	PollAction() (core.Action, bool)

	Ship() *Ship
	PlayerInLineOfFire(a *Alien) bool
	AlienDestroyed(a *Alien)
	AddLife()
}

// Depths, lower is drawn on top
const (
	depthShip  = 0
	depthFront = 1
	depthStars = 3
)
