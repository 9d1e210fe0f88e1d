package render

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/1siamBot/nachenblaster/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// spriteFiles lists the sprites an asset directory may override
var spriteFiles = []core.SpriteID{
	core.SpriteShip,
	core.SpriteLightAlien,
	core.SpriteMediumAlien,
	core.SpriteHeavyAlien,
	core.SpriteBolt,
	core.SpriteSpore,
	core.SpriteTorpedo,
	core.SpriteLifeGoodie,
	core.SpriteRepair,
	core.SpriteAmmoGoodie,
	core.SpriteStar,
	core.SpriteExplosion,
}

// SpriteManager holds the images found in the asset directory. Sprites
// without an image are drawn as shapes.
type SpriteManager struct {
	Images map[core.SpriteID]*ebiten.Image
}

// NewSpriteManager loads <dir>/<sprite id>.png for every known sprite. An
// empty dir searches the usual places.
func NewSpriteManager(dir string, log *zap.Logger) *SpriteManager {
	sm := &SpriteManager{Images: make(map[core.SpriteID]*ebiten.Image)}
	if dir == "" {
		dir = findAssetsDir()
	}
	for _, id := range spriteFiles {
		path := filepath.Join(dir, string(id)+".png")
		if img := loadFromFile(path, log); img != nil {
			sm.Images[id] = img
		}
	}
	log.Info("sprites loaded", zap.String("dir", dir), zap.Int("images", len(sm.Images)), zap.Int("known", len(spriteFiles)))
	return sm
}

// Get returns the image for a sprite, or nil to draw a shape
func (sm *SpriteManager) Get(id core.SpriteID) *ebiten.Image {
	return sm.Images[id]
}

func findAssetsDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "assets")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "..", "..", "assets")
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	return "assets"
}

func loadFromFile(path string, log *zap.Logger) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Warn("could not decode sprite", zap.String("path", path), zap.Error(err))
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
