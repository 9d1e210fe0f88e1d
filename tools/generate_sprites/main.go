// Tool to paint the default sprite images the desktop renderer loads from
// assets/. Every sprite is drawn facing east on a transparent square canvas.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/1siamBot/nachenblaster/engine/logging"
)

func main() {
	out := flag.String("out", "assets", "directory to write <sprite>.png files into")
	size := flag.Int("size", 32, "canvas edge in pixels")
	flag.Parse()

	log, err := logging.New("info", "console", "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal("create output dir", zap.Error(err))
	}
	for _, p := range painters {
		img := paint(p, *size)
		path := filepath.Join(*out, string(p.id)+".png")
		if err := savePNG(path, img); err != nil {
			log.Fatal("write sprite", zap.String("path", path), zap.Error(err))
		}
		log.Info("sprite written", zap.String("path", path))
	}
	log.Info("all sprites generated", zap.Int("count", len(painters)), zap.String("dir", *out))
}

func paint(p painter, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	p.draw(img, size)
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
