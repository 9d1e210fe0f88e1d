package actors

import (
	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/geom"
	"github.com/1siamBot/nachenblaster/engine/rng"
)

// fakeArena records what actors ask of the world
type fakeArena struct {
	bounds    geom.Bounds
	level     int
	rand      *rng.Script
	spawned   []core.Actor
	effects   []core.Effect
	actions   []core.Action
	resolves  int
	onResolve func(subject core.Actor)
	ship      *Ship
	inLine    bool
	destroyed []*Alien
	lives     int
}

func newFakeArena() *fakeArena {
	return &fakeArena{
		bounds: geom.Bounds{Width: 256, Height: 256},
		level:  1,
		rand:   rng.NewScript(nil),
	}
}

func (f *fakeArena) Bounds() geom.Bounds { return f.bounds }
func (f *fakeArena) Level() int { return f.level }
func (f *fakeArena) RandInt(lo, hi int) int { return f.rand.Int(lo, hi) }
func (f *fakeArena) Spawn(a core.Actor) { f.spawned = append(f.spawned, a) }
func (f *fakeArena) PlayEffect(e core.Effect) {
	f.effects = append(f.effects, e)
}
func (f *fakeArena) Ship() *Ship { return f.ship }
func (f *fakeArena) PlayerInLineOfFire(*Alien) bool { return f.inLine }
func (f *fakeArena) AlienDestroyed(a *Alien) { f.destroyed = append(f.destroyed, a) }
func (f *fakeArena) AddLife() { f.lives++ }

func (f *fakeArena) Resolve(subject core.Actor) {
	f.resolves++
	if f.onResolve != nil {
		f.onResolve(subject)
	}
}

func (f *fakeArena) PollAction() (core.Action, bool) {
	if len(f.actions) == 0 {
		return core.ActionNone, false
	}
	a := f.actions[0]
	f.actions = f.actions[1:]
	return a, true
}
