// Package app wires configuration, session state, the simulation and its
// collaborators into one runnable game. Frontends only drive the loop.
package app

import (
	"go.uber.org/zap"

	"github.com/1siamBot/nachenblaster/engine/audio"
	"github.com/1siamBot/nachenblaster/engine/config"
	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/geom"
	"github.com/1siamBot/nachenblaster/engine/rng"
	"github.com/1siamBot/nachenblaster/engine/world"
)

// App holds every long-lived piece of a running game
type App struct {
	Config  config.Config
	Log     *zap.Logger
	Seed    uint64
	Session *core.Session
	Bus     *core.EventBus
	Tally   *core.Tally
	Latch   *core.ActionLatch
	Audio   *audio.Manager // nil when audio is off or the device failed
	World   *world.Manager
	Loop    *core.GameLoop
}

// New builds the game described by cfg. Audio failures are logged and the
// game continues silently.
func New(cfg config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		Config:  cfg,
		Seed:    cfg.RandomSeed(),
		Session: core.NewSession(cfg.Session.Lives, cfg.Session.StartLevel),
		Bus:     core.NewEventBus(),
		Latch:   &core.ActionLatch{},
	}
	a.Log = log.With(zap.String("session", a.Session.ID))
	a.Tally = core.NewTally(a.Bus)
	a.Bus.On(core.EvtGameOver, a.onGameOver)

	var effects core.EffectPlayer = core.Silent{}
	if cfg.Audio.Enabled {
		m := audio.NewManager(cfg.Audio.Volume, a.Log)
		if err := m.Initialize(); err != nil {
			a.Log.Warn("audio disabled", zap.Error(err))
		} else {
			a.Audio = m
			effects = m
		}
	}

	a.World = world.NewManager(world.Options{
		Bounds:       geom.Bounds{Width: cfg.World.Width, Height: cfg.World.Height},
		InitialStars: cfg.World.InitialStars,
		Rand:         rng.New(a.Seed),
		Scoreboard:   a.Session,
		Effects:      effects,
		Actions:      a.Latch,
		Bus:          a.Bus,
		Logger:       a.Log,
	})
	a.Loop = core.NewGameLoop(a.World, a.Session, a.Bus, cfg.TickRate)
	return a
}

// Start initializes the first level and begins play
func (a *App) Start() {
	a.Log.Info("game starting",
		zap.Uint64("seed", a.Seed),
		zap.String("frontend", a.Config.Frontend),
		zap.Int("lives", a.Session.Lives()),
		zap.Int("game_level", a.Session.Level()),
	)
	a.Loop.Start()
}

// Close releases the audio device and reports the session
func (a *App) Close() {
	if a.Audio != nil {
		a.Audio.Cleanup()
	}
	a.Log.Info("session over",
		zap.Int("score", a.Session.Score()),
		zap.Int("game_level", a.Session.Level()),
		zap.Uint64("ticks", a.Loop.CurrentTick()),
		zap.String("tally", a.Tally.Summary()),
	)
}

func (a *App) onGameOver(e core.Event) {
	p, _ := e.Payload.(core.LevelPayload)
	a.Log.Info("game over", zap.Int("score", p.Score), zap.Int("game_level", p.Level), zap.Uint64("tick", e.Tick))
}
