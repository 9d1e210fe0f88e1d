package core

import "sync"

// Action is one player command, consumed at most once per tick
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFirePrimary
	ActionFireSecondary
)

var actionNames = [...]string{"none", "left", "right", "up", "down", "fire", "torpedo"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Effect identifies a sound effect
type Effect uint8

const (
	EffectPlayerShoot Effect = iota
	EffectTorpedo
	EffectAlienShoot
	EffectBlast
	EffectDeath
	EffectGoodie
	EffectFinishedLevel
)

var effectNames = [...]string{"player_shoot", "torpedo", "alien_shoot", "blast", "death", "goodie", "finished_level"}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}

// Status is the outcome of one simulation tick
type Status uint8

const (
	StatusContinue Status = iota
	StatusPlayerDied
	StatusLevelCleared
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusPlayerDied:
		return "player_died"
	case StatusLevelCleared:
		return "level_cleared"
	}
	return "unknown"
}

// ---- Collaborators ----

// ActionSource yields the pending player action, if any
type ActionSource interface {
	PollAction() (Action, bool)
}

// EffectPlayer plays sound effects. Implementations must not block.
type EffectPlayer interface {
	PlayEffect(e Effect)
}

// Scoreboard is the session state the simulation reads and mutates
type Scoreboard interface {
	Level() int
	Score() int
	Lives() int
	AddScore(n int)
	LoseLife()
	AddLife()
}

// StatusSink receives the one-line status text after every tick
type StatusSink interface {
	PublishStatus(line string)
}

// Simulation is what the GameLoop drives
type Simulation interface {
	InitializeLevel() Status
	AdvanceTick() Status
	Teardown()
}

// ---- Action latch ----

// ActionLatch holds the most recent action until the simulation polls it.
// Frontends write from their input goroutine; the tick loop reads.
type ActionLatch struct {
	mu      sync.Mutex
	pending Action
	set     bool
}

// Set records an action, replacing any one not yet consumed
func (l *ActionLatch) Set(a Action) {
	if a == ActionNone {
		return
	}
	l.mu.Lock()
	l.pending = a
	l.set = true
	l.mu.Unlock()
}

// PollAction returns and clears the pending action
func (l *ActionLatch) PollAction() (Action, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.set {
		return ActionNone, false
	}
	a := l.pending
	l.pending = ActionNone
	l.set = false
	return a, true
}

// Peek returns the pending action without consuming it
func (l *ActionLatch) Peek() (Action, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending, l.set
}

// Clear drops any pending action
func (l *ActionLatch) Clear() {
	l.mu.Lock()
	l.pending = ActionNone
	l.set = false
	l.mu.Unlock()
}

// ---- No-op collaborators ----

// Silent is an EffectPlayer that discards effects
type Silent struct{}

func (Silent) PlayEffect(Effect) {}

// DiscardStatus is a StatusSink that drops every line
type DiscardStatus struct{}

func (DiscardStatus) PublishStatus(string) {}
