package core

import "fmt"

// Tally keeps running statistics for a session by listening on the bus
type Tally struct {
	AliensDestroyed  int
	KillsByClass     map[string]int
	ShotsFired       int
	TorpedoesFired   int
	DamageTaken      float64
	GoodiesCollected int
	LevelsCleared    int
	ShipsLost        int
	HighestLevel     int
}

// NewTally creates a Tally subscribed to bus
func NewTally(bus *EventBus) *Tally {
	t := &Tally{KillsByClass: make(map[string]int)}
	bus.On(EvtAlienDestroyed, func(e Event) {
		p, ok := e.Payload.(AlienPayload)
		if !ok {
			return
		}
		t.AliensDestroyed++
		t.KillsByClass[p.Class]++
	})
	bus.On(EvtProjectileFired, func(e Event) {
		p, ok := e.Payload.(ShotPayload)
		if !ok || !p.ByPlayer {
			return
		}
		if p.Torpedo {
			t.TorpedoesFired++
		} else {
			t.ShotsFired++
		}
	})
	bus.On(EvtShipDamaged, func(e Event) {
		if p, ok := e.Payload.(DamagePayload); ok {
			t.DamageTaken += p.Amount
		}
	})
	bus.On(EvtGoodieCollected, func(Event) { t.GoodiesCollected++ })
	bus.On(EvtLevelCleared, func(Event) { t.LevelsCleared++ })
	bus.On(EvtPlayerDied, func(Event) { t.ShipsLost++ })
	bus.On(EvtLevelStarted, func(e Event) {
		if p, ok := e.Payload.(LevelPayload); ok && p.Level > t.HighestLevel {
			t.HighestLevel = p.Level
		}
	})
	return t
}

// Summary renders the tally as a single line for the exit log
func (t *Tally) Summary() string {
	return fmt.Sprintf("aliens=%d shots=%d torpedoes=%d goodies=%d damage=%.0f levels=%d lost=%d",
		t.AliensDestroyed, t.ShotsFired, t.TorpedoesFired, t.GoodiesCollected,
		t.DamageTaken, t.LevelsCleared, t.ShipsLost)
}
