// cmd/lawnterm/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"go-lawn-defense/internal/app"
	"go-lawn-defense/internal/audio"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/logging"
	"go-lawn-defense/internal/metrics"
	"go-lawn-defense/internal/progress"
	"go-lawn-defense/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lawnterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settingsPath := flag.String("settings", filepath.Join("data", "settings.json"), "path to the settings file")
	difficulty := flag.String("difficulty", "", "difficulty override: easy, normal or hard")
	level := flag.Int("level", 0, "level to play, 0 continues saved progress")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	logPath := flag.String("log", "lawnterm.log", "log file; the terminal is taken by the game")
	metricsAddr := flag.String("metrics-addr", "", "serve /metrics on this address")
	noSave := flag.Bool("nosave", false, "keep progress in memory only")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.NewFromEnv(logFile)

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		logger.Warn("using default settings", "path", *settingsPath, "error", err)
	}
	if *difficulty != "" {
		settings.Difficulty = *difficulty
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	d, err := defs.ParseDifficulty(settings.Difficulty)
	if err != nil {
		return err
	}

	var store progress.Store = progress.NewFileStore(settings.SaveDir, logger)
	if *noSave {
		store = progress.NewMemoryStore()
	}
	if *level == 0 {
		p := store.Load(d)
		*level = min(p.CurrentLevel, config.MaxLevel)
	}

	dispatcher := event.NewDispatcher()
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	collector.Subscribe(dispatcher)
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	sound := audio.NewController(settings, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sound.Close()
	sound.Subscribe(dispatcher)

	cfg := app.DefaultSessionConfig(d, *level)
	cfg.Seed = settings.Seed
	cfg.Logger = logger
	cfg.Store = store
	cfg.Dispatcher = dispatcher
	session, err := app.NewLevelSession(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := term.NewApp(screen, session, logger)
	ui.OnTick = collector.ObserveTick
	sound.PlayMusic()
	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("terminal session finished", "score", session.Snapshot().Score)
	return nil
}
