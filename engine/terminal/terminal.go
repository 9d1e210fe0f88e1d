// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/geom"
	"github.com/1siamBot/nachenblaster/engine/view"
)

// statusRows is the height of the status bar at the top of the terminal
const statusRows = 1

// ErrQuit is returned internally when the player asks to leave
var ErrQuit = errors.New("terminal: quit requested")

// Scene is what the terminal needs to draw a frame
type Scene interface {
	Bounds() geom.Bounds
	Drawables() []core.Actor
	StatusLine() string
}

type command uint8

const (
	cmdNone command = iota
	cmdPause
	cmdQuit
	cmdResize
)

// Frontend owns the screen while the game runs. Only the tick goroutine
// touches the loop and the scene; the event goroutine talks to it through
// the action latch and the command channel.
type Frontend struct {
	screen tcell.Screen
	loop   *core.GameLoop
	scene  Scene
	latch  *core.ActionLatch
	grid   *view.Grid
	log    *zap.Logger
	cmds   chan command
}

// New creates a frontend on an initialized screen
func New(screen tcell.Screen, loop *core.GameLoop, scene Scene, latch *core.ActionLatch, log *zap.Logger) *Frontend {
	if log == nil {
		log = zap.NewNop()
	}
	cols, rows := screen.Size()
	return &Frontend{
		screen: screen,
		loop:   loop,
		scene:  scene,
		latch:  latch,
		grid:   view.NewGrid(scene.Bounds(), cols, rows, statusRows),
		log:    log,
		cmds:   make(chan command, 8),
	}
}

// Run pumps terminal events and ticks the loop until the player quits or
// ctx is done. The screen is finalized before Run returns.
func (f *Frontend) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return f.pump(ctx)
	})
	g.Go(func() error {
		defer f.screen.Fini()
		return f.tickLoop(ctx)
	})

	err := g.Wait()
	if errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pump forwards terminal events until the screen is finalized
func (f *Frontend) pump(ctx context.Context) error {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return nil
		}
		cmd := f.handleEvent(ev)
		if cmd == cmdNone {
			continue
		}
		select {
		case f.cmds <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}

func (f *Frontend) tickLoop(ctx context.Context) error {
	interval := time.Duration(float64(time.Second) / f.loop.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-f.cmds:
			switch cmd {
			case cmdQuit:
				f.log.Info("quit requested", zap.Uint64("tick", f.loop.CurrentTick()))
				return ErrQuit
			case cmdPause:
				f.loop.TogglePause()
				f.log.Debug("pause toggled", zap.Stringer("state", f.loop.State))
			case cmdResize:
				f.grid.Resize(f.screen.Size())
				f.screen.Sync()
			}
			f.Draw()
		case <-ticker.C:
			if f.loop.State == core.StatePlaying {
				f.loop.Step()
			}
			f.Draw()
		}
	}
}

// handleEvent turns one terminal event into a latched action or a command
func (f *Frontend) handleEvent(ev tcell.Event) command {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return cmdResize
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return cmdQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return cmdQuit
			case 'p', 'P':
				return cmdPause
			}
			f.setAction(runeActions[ev.Rune()])
		default:
			f.setAction(keyActions[ev.Key()])
		}
	}
	return cmdNone
}

var keyActions = map[tcell.Key]core.Action{
	tcell.KeyLeft:  core.ActionMoveLeft,
	tcell.KeyRight: core.ActionMoveRight,
	tcell.KeyUp:    core.ActionMoveUp,
	tcell.KeyDown:  core.ActionMoveDown,
	tcell.KeyTab:   core.ActionFireSecondary,
}

var runeActions = map[rune]core.Action{
	'a': core.ActionMoveLeft,
	'd': core.ActionMoveRight,
	'w': core.ActionMoveUp,
	's': core.ActionMoveDown,
	' ': core.ActionFirePrimary,
	't': core.ActionFireSecondary,
}

func (f *Frontend) setAction(a core.Action) {
	if a == core.ActionNone {
		return
	}
	// a torpedo press survives until the next tick consumes it
	if pending, ok := f.latch.Peek(); ok && pending == core.ActionFireSecondary {
		return
	}
	f.latch.Set(a)
}

// ---- Drawing ----

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Draw renders the current scene and shows it
func (f *Frontend) Draw() {
	f.screen.Clear()
	cols, _ := f.screen.Size()

	for x := 0; x < cols; x++ {
		f.screen.SetContent(x, 0, ' ', nil, statusStyle)
	}
	f.drawText(0, 0, f.scene.StatusLine(), statusStyle)

	for _, a := range view.DrawOrder(f.scene.Drawables()) {
		col, row, ok := f.grid.Cell(a.X(), a.Y())
		if !ok {
			continue
		}
		look := view.LookOf(a.Sprite().ID)
		fg := tcell.NewRGBColor(int32(look.Color.R), int32(look.Color.G), int32(look.Color.B))
		f.screen.SetContent(col, row, look.Glyph, nil, tcell.StyleDefault.Foreground(fg))
	}

	if banner := f.banner(); banner != "" {
		x := (cols - len(banner)) / 2
		if x < 0 {
			x = 0
		}
		f.drawText(x, statusRows+f.grid.Rows/2, banner, bannerStyle)
	}

	f.screen.Show()
}

func (f *Frontend) banner() string {
	switch f.loop.State {
	case core.StatePaused:
		return "PAUSED - p to resume"
	case core.StateGameOver:
		return "GAME OVER - q to quit"
	}
	return ""
}

func (f *Frontend) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
