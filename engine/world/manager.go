// Package world owns every live actor and runs one simulation tick at a time:
// advancing actors, resolving collisions, spawning, purging the dead and
// publishing the status line.
package world

import (
	"time"

	"go.uber.org/zap"

	"github.com/1siamBot/nachenblaster/engine/actors"
	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/geom"
	"github.com/1siamBot/nachenblaster/engine/rng"
)

// DefaultBounds is the classic 256 x 256 playfield
var DefaultBounds = geom.Bounds{Width: 256, Height: 256}

// DefaultStars is how many stars a level starts with
const DefaultStars = 30

// Options wires a Manager to its collaborators. Nil collaborators are
// replaced with silent stand-ins.
type Options struct {
	Bounds       geom.Bounds
	InitialStars int // stars placed by InitializeLevel, zero means none
	Rand         rng.Source
	Scoreboard   core.Scoreboard
	Effects      core.EffectPlayer
	Actions      core.ActionSource
	Status       core.StatusSink
	Bus          *core.EventBus
	Logger       *zap.Logger
	SessionID    string
}

// Manager is the simulation. It implements core.Simulation for the game
// loop and actors.Arena for the actors it owns.
type Manager struct {
	bounds  geom.Bounds
	stars   int
	rand    rng.Source
	board   core.Scoreboard
	effects core.EffectPlayer
	actions core.ActionSource
	status  core.StatusSink
	bus     *core.EventBus
	log     *zap.Logger

	ship   *actors.Ship
	actors []core.Actor

	destroyed   int
	required    int
	maxOnScreen int
	onScreen    int

	tick       uint64
	statusLine string
}

var (
	_ core.Simulation = (*Manager)(nil)
	_ actors.Arena    = (*Manager)(nil)
)

// NewManager creates an empty world. Call InitializeLevel before ticking.
func NewManager(opts Options) *Manager {
	if opts.Bounds.Width <= 0 || opts.Bounds.Height <= 0 {
		opts.Bounds = DefaultBounds
	}
	if opts.InitialStars < 0 {
		opts.InitialStars = 0
	}
	if opts.Rand == nil {
		opts.Rand = rng.New(uint64(time.Now().UnixNano()))
	}
	if opts.Scoreboard == nil {
		opts.Scoreboard = core.NewSession(core.DefaultLives, 1)
	}
	if opts.Effects == nil {
		opts.Effects = core.Silent{}
	}
	if opts.Actions == nil {
		opts.Actions = &core.ActionLatch{}
	}
	if opts.Status == nil {
		opts.Status = core.DiscardStatus{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	log := opts.Logger
	if opts.SessionID != "" {
		log = log.With(zap.String("session", opts.SessionID))
	}
	return &Manager{
		bounds:  opts.Bounds,
		stars:   opts.InitialStars,
		rand:    opts.Rand,
		board:   opts.Scoreboard,
		effects: opts.Effects,
		actions: opts.Actions,
		status:  opts.Status,
		bus:     opts.Bus,
		log:     log,
	}
}

// InitializeLevel resets per-level counters, creates a fresh ship and
// scatters the starfield
func (m *Manager) InitializeLevel() core.Status {
	level := m.board.Level()
	m.destroyed = 0
	m.required = 6 + 4*level
	m.maxOnScreen = int(4 + 0.5*float64(level))
	m.onScreen = 0
	m.actors = m.actors[:0]
	m.ship = actors.NewShip(m)

	for i := 0; i < m.stars; i++ {
		x := float64(m.rand.Int(0, int(m.bounds.Width)-1))
		y := float64(m.rand.Int(0, int(m.bounds.Height)-1))
		m.actors = append(m.actors, actors.NewRandomStar(m, x, y))
	}

	m.publishStatus()
	m.emit(core.EvtLevelStarted, core.LevelPayload{Level: level, Score: m.board.Score()})
	m.log.Info("level started",
		zap.Int("game_level", level),
		zap.Int("required", m.required),
		zap.Int("max_on_screen", m.maxOnScreen))
	return core.StatusContinue
}

// AdvanceTick runs one tick. Only a player death or a cleared level ends it
// early.
func (m *Manager) AdvanceTick() core.Status {
	if m.ship == nil {
		return core.StatusContinue
	}
	m.tick++

	m.ship.Advance()
	if !m.ship.Alive() {
		return m.playerDied()
	}

	// The bound is re-read each step so actors spawned this tick also advance.
	for i := 0; i < len(m.actors); i++ {
		a := m.actors[i]
		if !a.Alive() {
			continue
		}
		a.Advance()

		if !m.ship.Alive() {
			return m.playerDied()
		}
		if m.destroyed >= m.required {
			return m.levelCleared()
		}
	}

	m.maybeSpawnStar()
	m.maybeSpawnAlien()
	m.purge()
	m.publishStatus()
	return core.StatusContinue
}

// Teardown drops the ship and every actor
func (m *Manager) Teardown() {
	m.ship = nil
	for i := range m.actors {
		m.actors[i] = nil
	}
	m.actors = m.actors[:0]
	m.onScreen = 0
}

func (m *Manager) playerDied() core.Status {
	m.board.LoseLife()
	m.emit(core.EvtPlayerDied, core.LevelPayload{Level: m.board.Level(), Score: m.board.Score()})
	m.log.Info("player died",
		zap.Int("game_level", m.board.Level()),
		zap.Int("lives", m.board.Lives()),
		zap.Uint64("tick", m.tick))
	return core.StatusPlayerDied
}

func (m *Manager) levelCleared() core.Status {
	m.effects.PlayEffect(core.EffectFinishedLevel)
	m.emit(core.EvtLevelCleared, core.LevelPayload{Level: m.board.Level(), Score: m.board.Score()})
	m.log.Info("level cleared",
		zap.Int("game_level", m.board.Level()),
		zap.Int("score", m.board.Score()),
		zap.Uint64("tick", m.tick))
	return core.StatusLevelCleared
}

// purge drops dead actors in one pass, keeping insertion order
func (m *Manager) purge() {
	live := m.actors[:0]
	for _, a := range m.actors {
		if a.Alive() {
			live = append(live, a)
			continue
		}
		if a.IsAlien() {
			m.onScreen--
		}
	}
	for i := len(live); i < len(m.actors); i++ {
		m.actors[i] = nil
	}
	m.actors = live
}

func (m *Manager) emit(t core.EventType, payload interface{}) {
	m.bus.Emit(core.Event{Type: t, Tick: m.tick, Payload: payload})
}

// ---- Arena ----

func (m *Manager) Bounds() geom.Bounds { return m.bounds }
func (m *Manager) Level() int { return m.board.Level() }
func (m *Manager) RandInt(lo, hi int) int { return m.rand.Int(lo, hi) }
func (m *Manager) PlayEffect(e core.Effect) { m.effects.PlayEffect(e) }
func (m *Manager) Ship() *actors.Ship { return m.ship }
func (m *Manager) AddLife() { m.board.AddLife() }

func (m *Manager) PollAction() (core.Action, bool) {
	return m.actions.PollAction()
}

// Spawn appends an actor. It is advanced later in the same tick.
func (m *Manager) Spawn(a core.Actor) {
	m.actors = append(m.actors, a)
	if p, ok := a.(*actors.Projectile); ok {
		m.emit(core.EvtProjectileFired, core.ShotPayload{
			Kind:     p.Kind().String(),
			ByPlayer: p.FiredByPlayer(),
			Torpedo:  p.Kind() == actors.KindTorpedo,
		})
	}
}

// PlayerInLineOfFire reports whether the ship is ahead of a and level with it
func (m *Manager) PlayerInLineOfFire(a *actors.Alien) bool {
	if m.ship == nil || !m.ship.Alive() {
		return false
	}
	return a.InLineOfFire(m.ship.X(), m.ship.Y())
}

// AlienDestroyed credits the kill
func (m *Manager) AlienDestroyed(a *actors.Alien) {
	m.board.AddScore(a.ScoreValue())
	m.destroyed++
	m.emit(core.EvtAlienDestroyed, core.AlienPayload{
		ID:    a.ID(),
		Class: a.Class().String(),
		X:     a.X(),
		Y:     a.Y(),
		Score: a.ScoreValue(),
	})
	m.log.Debug("alien destroyed",
		zap.Stringer("class", a.Class()),
		zap.Int("destroyed", m.destroyed),
		zap.Int("required", m.required))
}

// ---- Views for frontends ----

// Actors returns every actor except the ship, in spawn order. Callers must
// not keep it across ticks.
func (m *Manager) Actors() []core.Actor { return m.actors }

// Drawables returns the ship followed by every other actor
func (m *Manager) Drawables() []core.Actor {
	out := make([]core.Actor, 0, len(m.actors)+1)
	if m.ship != nil {
		out = append(out, m.ship)
	}
	return append(out, m.actors...)
}

// StatusLine returns the most recently published status text
func (m *Manager) StatusLine() string { return m.statusLine }

// Progress returns aliens destroyed and aliens required this level
func (m *Manager) Progress() (destroyed, required int) { return m.destroyed, m.required }

// AliensOnScreen returns the on-screen alien count and its cap
func (m *Manager) AliensOnScreen() (count, limit int) { return m.onScreen, m.maxOnScreen }

// Tick returns the number of ticks advanced since creation
func (m *Manager) Tick() uint64 { return m.tick }
