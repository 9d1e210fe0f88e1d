package core

import "time"

// GameState represents the overall game state
type GameState uint8

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// maxFrameTime caps the time fed to the accumulator so a stall does not
// trigger a burst of catch-up ticks
const maxFrameTime = 0.25

// GameLoop runs the simulation at a fixed tick rate and reacts to the
// status each tick reports
type GameLoop struct {
	Sim         Simulation
	Session     *Session
	Bus         *EventBus
	State       GameState
	TickRate    float64 // fixed ticks per second
	tick        uint64
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(sim Simulation, session *Session, bus *EventBus, tickRate float64) *GameLoop {
	if tickRate <= 0 {
		tickRate = 20
	}
	return &GameLoop{
		Sim:      sim,
		Session:  session,
		Bus:      bus,
		TickRate: tickRate,
		lastTime: time.Now(),
	}
}

// Start initializes the first level and begins play
func (gl *GameLoop) Start() {
	gl.Sim.InitializeLevel()
	gl.Bus.Dispatch()
	gl.Play()
}

// Update should be called every render frame. It runs as many fixed ticks as
// the elapsed wall time allows and returns the interpolation alpha.
func (gl *GameLoop) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance feeds frameTime seconds into the accumulator
func (gl *GameLoop) Advance(frameTime float64) float64 {
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			gl.Step()
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// Step runs exactly one simulation tick and handles its outcome
func (gl *GameLoop) Step() Status {
	status := gl.Sim.AdvanceTick()
	gl.tick++

	switch status {
	case StatusPlayerDied:
		gl.Sim.Teardown()
		if gl.Session.Lives() > 0 {
			gl.Sim.InitializeLevel()
		} else {
			gl.State = StateGameOver
			gl.Bus.Emit(Event{Type: EvtGameOver, Tick: gl.tick, Payload: LevelPayload{
				Level: gl.Session.Level(),
				Score: gl.Session.Score(),
			}})
		}
	case StatusLevelCleared:
		gl.Sim.Teardown()
		gl.Session.NextLevel()
		gl.Sim.InitializeLevel()
	}

	gl.Bus.Dispatch()
	return status
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	if gl.State == StateGameOver {
		return
	}
	gl.State = StatePlaying
	gl.lastTime = time.Now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	if gl.State == StatePlaying {
		gl.State = StatePaused
	}
}

// TogglePause flips between playing and paused
func (gl *GameLoop) TogglePause() {
	switch gl.State {
	case StatePlaying:
		gl.Pause()
	case StatePaused:
		gl.Play()
	}
}

// CurrentTick returns the number of ticks run so far
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.tick
}
