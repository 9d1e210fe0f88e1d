package world

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/rng"
)

// highSource answers every draw with hi, which keeps stars and spawns quiet
type highSource struct{}

func (highSource) Int(lo, hi int) int {
	if hi < lo {
		panic("empty range")
	}
	return hi
}

type effectLog struct{ effects []core.Effect }

func (r *effectLog) PlayEffect(e core.Effect) { r.effects = append(r.effects, e) }

func (r *effectLog) count(e core.Effect) int {
	n := 0
	for _, got := range r.effects {
		if got == e {
			n++
		}
	}
	return n
}

type statusLog struct{ lines []string }

func (s *statusLog) PublishStatus(line string) { s.lines = append(s.lines, line) }

type fixture struct {
	m       *Manager
	rand    *rng.Script
	session *core.Session
	effects *effectLog
	status  *statusLog
	latch   *core.ActionLatch
	bus     *core.EventBus
	events  []core.Event
}

// newFixture builds a level-1 world with no stars and no spontaneous spawns
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		rand:    rng.NewScript(highSource{}),
		session: core.NewSession(3, 1),
		effects: &effectLog{},
		status:  &statusLog{},
		latch:   &core.ActionLatch{},
		bus:     core.NewEventBus(),
	}
	for _, et := range []core.EventType{
		core.EvtLevelStarted, core.EvtAlienSpawned, core.EvtAlienDestroyed, core.EvtShipDamaged,
		core.EvtGoodieCollected, core.EvtProjectileFired, core.EvtPlayerDied, core.EvtLevelCleared,
	} {
		f.bus.On(et, func(e core.Event) { f.events = append(f.events, e) })
	}
	f.m = NewManager(Options{
		Rand:       f.rand,
		Scoreboard: f.session,
		Effects:    f.effects,
		Actions:    f.latch,
		Status:     f.status,
		Bus:        f.bus,
		Logger:     zaptest.NewLogger(t),
		SessionID:  f.session.ID,
	})
	require.Equal(t, core.StatusContinue, f.m.InitializeLevel())
	f.m.maxOnScreen = 0
	return f
}

// tick advances once and dispatches queued events
func (f *fixture) tick() core.Status {
	st := f.m.AdvanceTick()
	f.bus.Dispatch()
	return st
}

func (f *fixture) eventCount(t core.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newSeeded(seed uint64) rng.Source { return rng.New(seed) }
