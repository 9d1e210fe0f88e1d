package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/1siamBot/nachenblaster/engine/app"
	"github.com/1siamBot/nachenblaster/engine/config"
	"github.com/1siamBot/nachenblaster/engine/logging"
	"github.com/1siamBot/nachenblaster/engine/terminal"
)

// terminalLogFile is used when the terminal frontend runs without a log
// file configured, since stderr is the game screen
const terminalLogFile = "nachenblaster.log"

func main() {
	configPath := flag.String("config", "nachenblaster.yaml", "path to the YAML config file")
	frontend := flag.String("frontend", "", "desktop or terminal (overrides the config)")
	seed := flag.String("seed", "", "number or phrase seeding the run (overrides the config)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the config)")
	flag.Parse()

	boot := logging.NewOrExample("info", "console", "")

	cfg, loadErr := config.Load(*configPath)
	if loadErr != nil && !errors.Is(loadErr, fs.ErrNotExist) {
		boot.Fatal("bad config", zap.Error(loadErr))
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *seed != "" {
		if n, err := strconv.ParseUint(*seed, 10, 64); err == nil {
			cfg.Seed, cfg.SeedPhrase = n, ""
		} else {
			cfg.SeedPhrase = *seed
		}
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if cfg.Frontend == config.FrontendTerminal && cfg.Log.File == "" {
		cfg.Log.File = terminalLogFile
	}
	if err := cfg.Validate(); err != nil {
		boot.Fatal("bad flags", zap.Error(err))
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding, cfg.Log.File)
	if err != nil {
		boot.Fatal("logger", zap.Error(err))
	}
	if loadErr != nil {
		logger.Debug("no config file, using defaults", zap.String("path", *configPath))
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("frontend stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *zap.Logger) error {
	game := app.New(cfg, logger)
	defer game.Close()

	if cfg.Frontend == config.FrontendTerminal {
		return runTerminal(game)
	}
	return runDesktop(game)
}

func runTerminal(game *app.App) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game.Start()
	front := terminal.New(screen, game.Loop, game.World, game.Latch, game.Log)
	return front.Run(ctx)
}
