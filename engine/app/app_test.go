package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/1siamBot/nachenblaster/engine/config"
	"github.com/1siamBot/nachenblaster/engine/core"
)

func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.SeedPhrase = "nachenblaster"
	return cfg
}

func TestNewWiresTheGame(t *testing.T) {
	a := New(quietConfig(), zaptest.NewLogger(t))

	assert.Nil(t, a.Audio)
	assert.NotEmpty(t, a.Session.ID)
	assert.Equal(t, 3, a.Session.Lives())
	assert.Equal(t, core.StateMenu, a.Loop.State)

	a.Start()
	assert.Equal(t, core.StatePlaying, a.Loop.State)
	// ship plus the initial starfield
	assert.Len(t, a.World.Drawables(), 31)
	require.NotNil(t, a.World.Ship())

	for i := 0; i < 200; i++ {
		a.Loop.Step()
	}
	assert.Equal(t, uint64(200), a.Loop.CurrentTick())
	a.Close()
}

func TestStartLevelFromConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Session.StartLevel = 4
	cfg.Session.Lives = 5
	a := New(cfg, nil)
	a.Start()

	assert.Equal(t, 4, a.Session.Level())
	assert.Equal(t, 5, a.Session.Lives())
	destroyed, required := a.World.Progress()
	assert.Equal(t, 0, destroyed)
	assert.Equal(t, 22, required)
}

func TestSamePhraseSameGame(t *testing.T) {
	run := func() (string, []float64) {
		a := New(quietConfig(), nil)
		a.Start()
		for i := 0; i < 300; i++ {
			if i%7 == 0 {
				a.Latch.Set(core.ActionFirePrimary)
			}
			a.Loop.Step()
		}
		var ys []float64
		for _, actor := range a.World.Actors() {
			ys = append(ys, actor.Y())
		}
		return a.World.StatusLine(), ys
	}

	status1, ys1 := run()
	status2, ys2 := run()
	assert.Equal(t, status1, status2)
	assert.Equal(t, ys1, ys2)
}

func TestGameOverIsLogged(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	a := New(quietConfig(), zap.New(obs))

	a.Bus.Emit(core.Event{Type: core.EvtGameOver, Tick: 9, Payload: core.LevelPayload{Level: 7, Score: 1234}})
	a.Bus.Dispatch()

	entries := logs.FilterMessage("game over").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1234), entries[0].ContextMap()["score"])
	assert.Equal(t, int64(7), entries[0].ContextMap()["game_level"])
}

func TestCloseReportsTally(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	a := New(quietConfig(), zap.New(obs))
	a.Start()
	a.Close()

	entries := logs.FilterMessage("session over").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["tally"], "aliens=0")
}
