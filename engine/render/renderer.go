// Package render draws the simulation in an ebiten window.
package render

import (
	"image/color"
	"math"

	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/1siamBot/nachenblaster/engine/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// StatusBarHeight is the strip above the playfield holding the status line,
// in screen pixels
const StatusBarHeight = 16

var (
	backgroundColor = color.RGBA{5, 5, 20, 255}
	statusBarColor  = color.RGBA{20, 20, 40, 255}
)

// Renderer draws actors through a fixed camera
type Renderer struct {
	Camera  *view.Camera
	Sprites *SpriteManager
}

// NewRenderer creates a renderer for the given camera
func NewRenderer(cam *view.Camera, sprites *SpriteManager) *Renderer {
	return &Renderer{Camera: cam, Sprites: sprites}
}

// Draw paints one frame: playfield, actors back to front, status bar and an
// optional centered banner such as PAUSED
func (r *Renderer) Draw(screen *ebiten.Image, actors []core.Actor, status, banner string) {
	screen.Fill(backgroundColor)

	for _, a := range view.DrawOrder(actors) {
		r.drawActor(screen, a)
	}

	w, _ := r.Camera.ScreenSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), StatusBarHeight, statusBarColor, false)
	ebitenutil.DebugPrintAt(screen, status, 4, 0)

	if banner != "" {
		sw, sh := r.Camera.ScreenSize()
		// DebugPrint glyphs are 6x16
		x := sw/2 - len(banner)*3
		ebitenutil.DebugPrintAt(screen, banner, x, sh/2-8)
	}
}

func (r *Renderer) drawActor(screen *ebiten.Image, a core.Actor) {
	sx, sy := r.Camera.WorldToScreen(a.X(), a.Y())
	radius := r.Camera.Length(a.Radius())
	sprite := a.Sprite()

	if img := r.Sprites.Get(sprite.ID); img != nil {
		iw := float64(img.Bounds().Dx())
		ih := float64(img.Bounds().Dy())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-iw/2, -ih/2)
		if iw > 0 {
			s := 2 * radius / iw
			op.GeoM.Scale(s, s)
		}
		// facing is counterclockwise in world space, screen y is flipped
		op.GeoM.Rotate(-float64(a.Facing()) * math.Pi / 180)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)
		return
	}

	look := view.LookOf(sprite.ID)
	if radius < 1 {
		radius = 1
	}
	switch sprite.ID {
	case core.SpriteShip:
		drawShip(screen, float32(sx), float32(sy), float32(radius), look.Color)
	case core.SpriteBolt, core.SpriteTorpedo:
		vector.StrokeLine(screen, float32(sx-radius), float32(sy), float32(sx+radius), float32(sy), 2, look.Color, true)
	case core.SpriteExplosion:
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 2, look.Color, true)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius/2), colornames.Yellow, true)
	default:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), look.Color, true)
	}
}

// drawShip is an arrowhead pointing east
func drawShip(screen *ebiten.Image, x, y, r float32, clr color.Color) {
	vector.StrokeLine(screen, x-r, y-r, x+r, y, 2, clr, true)
	vector.StrokeLine(screen, x-r, y+r, x+r, y, 2, clr, true)
	vector.StrokeLine(screen, x-r, y-r, x-r, y+r, 2, clr, true)
}
