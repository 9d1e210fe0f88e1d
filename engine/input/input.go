package input

import (
	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding maps held keys to a movement action
type Binding struct {
	Keys   []ebiten.Key
	Action core.Action
}

// DefaultMoves are arrows and WASD. Earlier entries win when several are held.
var DefaultMoves = []Binding{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionMoveLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionMoveRight},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionMoveUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionMoveDown},
}

// InputState polls the keyboard once per frame and feeds the action latch
// the simulation reads from
type InputState struct {
	Moves   []Binding
	Fire    ebiten.Key // held fires every tick the ship has energy
	Torpedo ebiten.Key // one torpedo per press
	Pause   ebiten.Key
	Quit    ebiten.Key

	PauseJustPressed bool
	QuitRequested    bool

	latch *core.ActionLatch
}

// NewInputState creates the default bindings writing into latch
func NewInputState(latch *core.ActionLatch) *InputState {
	return &InputState{
		Moves:   DefaultMoves,
		Fire:    ebiten.KeySpace,
		Torpedo: ebiten.KeyTab,
		Pause:   ebiten.KeyP,
		Quit:    ebiten.KeyEscape,
		latch:   latch,
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.PauseJustPressed = inpututil.IsKeyJustPressed(s.Pause)
	if inpututil.IsKeyJustPressed(s.Quit) {
		s.QuitRequested = true
	}
	a := s.action()
	if a == core.ActionNone {
		return
	}
	// a torpedo press survives until the next tick consumes it
	if pending, ok := s.latch.Peek(); ok && pending == core.ActionFireSecondary {
		return
	}
	s.latch.Set(a)
}

// action picks this frame's command. Firing beats moving, a fresh torpedo
// press beats both.
func (s *InputState) action() core.Action {
	if inpututil.IsKeyJustPressed(s.Torpedo) {
		return core.ActionFireSecondary
	}
	if ebiten.IsKeyPressed(s.Fire) {
		return core.ActionFirePrimary
	}
	for _, b := range s.Moves {
		for _, k := range b.Keys {
			if ebiten.IsKeyPressed(k) {
				return b.Action
			}
		}
	}
	return core.ActionNone
}
