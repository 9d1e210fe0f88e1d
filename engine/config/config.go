// Package config loads game settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1siamBot/nachenblaster/engine/rng"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Frontend names
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// Config is the complete game configuration
type Config struct {
	World      World   `yaml:"world"`
	Session    Session `yaml:"session"`
	TickRate   float64 `yaml:"tick_rate"`   // simulation ticks per second
	Seed       uint64  `yaml:"seed"`        // 0 picks a seed from the clock
	SeedPhrase string  `yaml:"seed_phrase"` // wins over Seed when set
	Frontend   string  `yaml:"frontend"`
	Log        Log     `yaml:"log"`
	Audio      Audio   `yaml:"audio"`
	Window     Window  `yaml:"window"`
}

type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	InitialStars int     `yaml:"initial_stars"`
}

type Session struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"`
}

type Log struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` // json or console
	File     string `yaml:"file"`     // empty means stderr
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Window struct {
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
	Assets string `yaml:"assets"` // directory of <sprite>.png overrides, empty searches near the binary
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		World:    World{Width: 256, Height: 256, InitialStars: 30},
		Session:  Session{Lives: 3, StartLevel: 1},
		TickRate: 20,
		Frontend: FrontendDesktop,
		Log:      Log{Level: "info", Encoding: "console"},
		Audio:    Audio{Enabled: true, Volume: 0.8},
		Window:   Window{Scale: 3, Title: "NachenBlaster"},
	}
}

// Load reads and validates a YAML file on top of Default. On failure the
// defaults are returned alongside the error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Default(), fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r over Default and validates the result
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	switch {
	case c.World.Width < 32 || c.World.Height < 32:
		return fmt.Errorf("%w: world must be at least 32x32, got %gx%g", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.InitialStars < 0:
		return fmt.Errorf("%w: initial_stars must not be negative", ErrInvalid)
	case c.Session.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalid)
	case c.Session.StartLevel < 1:
		return fmt.Errorf("%w: start_level must be at least 1", ErrInvalid)
	case c.TickRate <= 0 || c.TickRate > 240:
		return fmt.Errorf("%w: tick_rate must be in (0, 240], got %g", ErrInvalid, c.TickRate)
	case c.Frontend != FrontendDesktop && c.Frontend != FrontendTerminal:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	case c.Log.Encoding != "json" && c.Log.Encoding != "console":
		return fmt.Errorf("%w: unknown log encoding %q", ErrInvalid, c.Log.Encoding)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume must be in [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	case c.Window.Scale < 1:
		return fmt.Errorf("%w: window scale must be at least 1", ErrInvalid)
	}
	return nil
}

// RandomSeed resolves the seed for this run: the phrase hash, then the
// explicit seed, then the clock
func (c Config) RandomSeed() uint64 {
	if c.SeedPhrase != "" {
		return rng.SeedFromPhrase(c.SeedPhrase)
	}
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
