// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"

	"go-lawn-defense/internal/assets"
	"go-lawn-defense/internal/audio"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/logging"
	"go-lawn-defense/internal/metrics"
	"go-lawn-defense/internal/progress"
	"go-lawn-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run держит всю настройку, чтобы defer-ы звука и шрифтов отработали
// до выхода с ошибкой.
func run() error {
	settingsPath := flag.String("settings", filepath.Join("data", "settings.json"), "path to the settings file")
	difficulty := flag.String("difficulty", "", "difficulty override: easy, normal or hard")
	level := flag.Int("level", 0, "start this level directly, skipping the menu")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	metricsAddr := flag.String("metrics-addr", "localhost:6060", "address for pprof and /metrics, empty disables")
	noSave := flag.Bool("nosave", false, "keep progress in memory only")
	defsDir := flag.String("defs", filepath.Join("data", "defs"), "directory with difficulty.json and defenders.json overrides")
	fontPath := flag.String("font", assets.DefaultFontPath, "TTF font for the UI")
	flag.Parse()

	logger := logging.NewFromEnv(os.Stderr)

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		logger.Warn("using default settings", "path", *settingsPath, "error", err)
	}
	persisted := settings // флаги в файл не попадают
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
	loadDefinitions(*defsDir, logger)

	var store progress.Store = progress.NewFileStore(settings.SaveDir, logger)
	if *noSave {
		store = progress.NewMemoryStore()
	}

	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	if *metricsAddr != "" {
		http.Handle("/metrics", collector.Handler())
		go func() {
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	sound := audio.NewController(settings, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sound.Close()

	fonts := assets.NewFontManager(*fontPath, logger)
	defer fonts.Close()

	ctx := &state.Context{
		Settings: settings,
		Store:    store,
		Audio:    sound,
		Metrics:  collector,
		Fonts:    fonts,
		Logger:   logger,
		Seed:     settings.Seed,
	}

	sm := state.NewStateMachine()
	if *level > 0 {
		gs, err := state.NewGameState(sm, ctx, d, *level)
		if err != nil {
			return err
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, ctx, d))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Lawn Defense")
	ebiten.SetTPS(settings.FPS)
	ebiten.SetFullscreen(settings.Fullscreen)
	if err := ebiten.RunGame(app); err != nil {
		return err
	}

	audioSettings := sound.Settings()
	persisted.MusicEnabled = audioSettings.MusicEnabled
	persisted.SoundEnabled = audioSettings.SoundEnabled
	if err := config.SaveSettings(*settingsPath, persisted); err != nil {
		logger.Warn("failed to save settings", "error", err)
	}
	return nil
}

// loadDefinitions подгружает необязательные JSON-оверрайды.
func loadDefinitions(dir string, logger *slog.Logger) {
	loaders := map[string]func(string) (int, error){
		"difficulty.json": defs.LoadDifficultyDefinitions,
		"defenders.json":  defs.LoadDefenderDefinitions,
	}
	for name, load := range loaders {
		path := filepath.Join(dir, name)
		n, err := load(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			logger.Warn("ignoring definitions file", "path", path, "error", err)
		default:
			logger.Info("definitions loaded", "path", path, "count", n)
		}
	}
}
