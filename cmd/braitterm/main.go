// Braitenberg vehicles in the terminal.
//
// Usage: go run ./cmd/braitterm [-config file] [-seed n] [-log file]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/braitenberg/config"
	"github.com/pthm-cable/braitenberg/tui"
	"github.com/pthm-cable/braitenberg/world"
)

func main() {
	configPath := flag.String("config", "", "Path to config file, .yaml or .toml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	logPath := flag.String("log", "", "Write JSON logs to this file (empty = discard)")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "braitterm: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, logPath string) error {
	// stdout belongs to the screen, so logs go to a file
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	slog.SetDefault(logger)

	if err := config.Init(configPath); err != nil {
		return err
	}
	cfg := config.Cfg()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()

	w := world.New(cfg, rand.New(rand.NewSource(seed)))
	w.Init()

	slog.Info("terminal simulation started",
		"seed", seed,
		"world_w", w.Width(),
		"world_h", w.Height(),
		"behavior", w.Behavior().String(),
		"fps", cfg.TUI.FPS,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := tui.New(screen, w, cfg, logger)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("terminal simulation stopped", "tick", w.TickCount())
	return nil
}
