package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/nachenblaster/engine/app"
	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/geom"
	"github.com/1siamBot/nachenblaster/engine/input"
	"github.com/1siamBot/nachenblaster/engine/render"
	"github.com/1siamBot/nachenblaster/engine/view"
)

// Game implements ebiten.Game interface
type Game struct {
	app      *app.App
	input    *input.InputState
	renderer *render.Renderer
	width    int
	height   int
}

// NewGame creates the desktop frontend for a wired app
func NewGame(a *app.App) *Game {
	b := geom.Bounds{Width: a.Config.World.Width, Height: a.Config.World.Height}
	cam := view.NewCamera(b, float64(a.Config.Window.Scale), render.StatusBarHeight)
	w, h := cam.ScreenSize()
	return &Game{
		app:      a,
		input:    input.NewInputState(a.Latch),
		renderer: render.NewRenderer(cam, render.NewSpriteManager(a.Config.Window.Assets, a.Log)),
		width:    w,
		height:   h,
	}
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitRequested {
		return ebiten.Termination
	}
	if g.input.PauseJustPressed {
		g.app.Loop.TogglePause()
	}
	g.app.Loop.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	var banner string
	switch g.app.Loop.State {
	case core.StatePaused:
		banner = "PAUSED - P to resume"
	case core.StateGameOver:
		banner = "GAME OVER - Esc to quit"
	}
	g.renderer.Draw(screen, g.app.World.Drawables(), g.app.World.StatusLine(), banner)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func runDesktop(a *app.App) error {
	game := NewGame(a)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(a.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	a.Start()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
