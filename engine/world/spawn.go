package world

import (
	"go.uber.org/zap"

	"github.com/1siamBot/nachenblaster/engine/actors"
	"github.com/1siamBot/nachenblaster/engine/core"
)

// starChance is the 1-in-N chance of a new star each tick
const starChance = 15

// alienWeight defines how likely a class is to be picked at a given level
type alienWeight struct {
	Class  actors.AlienClass
	Weight func(level int) int
}

var alienWeights = []alienWeight{
	{Class: actors.AlienLight, Weight: func(int) int { return 60 }},
	{Class: actors.AlienMedium, Weight: func(level int) int { return 20 + 5*level }},
	{Class: actors.AlienHeavy, Weight: func(level int) int { return 5 + 10*level }},
}

// pickAlienClass draws one class with probability proportional to its weight
func pickAlienClass(randInt func(lo, hi int) int, level int) actors.AlienClass {
	total := 0
	for _, w := range alienWeights {
		total += w.Weight(level)
	}
	chance := randInt(1, total)
	for _, w := range alienWeights {
		chance -= w.Weight(level)
		if chance <= 0 {
			return w.Class
		}
	}
	return alienWeights[len(alienWeights)-1].Class
}

func (m *Manager) maybeSpawnStar() {
	if m.rand.Int(1, starChance) != 1 {
		return
	}
	y := float64(m.rand.Int(0, int(m.bounds.Height)-1))
	m.actors = append(m.actors, actors.NewRandomStar(m, m.bounds.Width-1, y))
}

func (m *Manager) maybeSpawnAlien() {
	remaining := m.required - m.destroyed
	if m.onScreen >= min(m.maxOnScreen, remaining) {
		return
	}
	class := pickAlienClass(m.rand.Int, m.board.Level())
	y := float64(m.rand.Int(0, int(m.bounds.Height)-1))
	m.SpawnAlien(class, m.bounds.Width-1, y)
}

// SpawnAlien adds an alien and counts it as on screen
func (m *Manager) SpawnAlien(class actors.AlienClass, x, y float64) *actors.Alien {
	alien := actors.NewAlien(m, class, x, y)
	m.actors = append(m.actors, alien)
	m.onScreen++

	m.emit(core.EvtAlienSpawned, core.AlienPayload{ID: alien.ID(), Class: class.String(), X: x, Y: y})
	m.log.Debug("alien spawned",
		zap.Stringer("class", class),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("on_screen", m.onScreen))
	return alien
}
