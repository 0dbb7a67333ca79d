// internal/audio/controller.go
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/logging"
)

const sampleRate = beep.SampleRate(44100)

// Effect — короткий звук на игровое событие.
type Effect int

const (
	EffectShoot Effect = iota
	EffectPlace
	EffectCollect
	EffectKill
	EffectDefenderLost
	EffectGameOver
	EffectVictory
)

// Controller проигрывает музыку и эффекты. Принадлежит слою
// отображения, симуляция о нём не знает и получает звук только через события.
// Без звуковой карты Initialize возвращает ошибку, и контроллер молчит.
type Controller struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	settings    config.Settings
	initialized bool
	logger      *slog.Logger
}

func NewController(settings config.Settings, logger *slog.Logger) *Controller {
	return &Controller{
		mixer:    &beep.Mixer{},
		settings: settings,
		logger:   logging.OrNoop(logger).With("component", "audio"),
	}
}

// Initialize открывает устройство вывода. Повторный вызов ничего не делает.
func (c *Controller) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		c.logger.Warn("audio disabled", "error", err)
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close глушит всё и отключает микшер.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.music = nil
	c.initialized = false
}

// Subscribe подписывает контроллер на события сессии.
func (c *Controller) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.ProjectileFired,
		event.DefenderPlaced,
		event.ResourceCollected,
		event.AttackerKilled,
		event.DefenderDestroyed,
		event.SessionOver,
		event.LevelCompleted,
		event.SessionPaused,
		event.SessionResumed,
		event.SessionReset,
	)
}

func (c *Controller) OnEvent(e event.Event) {
	switch e.Type {
	case event.SessionPaused:
		c.setMusicPaused(true)
		return
	case event.SessionResumed, event.SessionReset:
		c.PlayMusic()
		return
	case event.SessionOver, event.LevelCompleted:
		c.StopMusic()
	}
	if fx, ok := effectFor(e.Type); ok {
		c.Play(fx)
	}
}

func effectFor(t event.EventType) (Effect, bool) {
	switch t {
	case event.ProjectileFired:
		return EffectShoot, true
	case event.DefenderPlaced:
		return EffectPlace, true
	case event.ResourceCollected:
		return EffectCollect, true
	case event.AttackerKilled:
		return EffectKill, true
	case event.DefenderDestroyed:
		return EffectDefenderLost, true
	case event.SessionOver:
		return EffectGameOver, true
	case event.LevelCompleted:
		return EffectVictory, true
	}
	return 0, false
}

// newEffect собирает поток для эффекта.
func newEffect(fx Effect) beep.Streamer {
	switch fx {
	case EffectShoot:
		return newTone(sampleRate, 660, 520, 60*time.Millisecond, 20)
	case EffectPlace:
		return newTone(sampleRate, 180, 140, 90*time.Millisecond, 15)
	case EffectCollect:
		return beep.Seq(
			newTone(sampleRate, 880, 880, 70*time.Millisecond, 6),
			newTone(sampleRate, 1318.5, 1318.5, 120*time.Millisecond, 6),
		)
	case EffectKill:
		return newTone(sampleRate, 300, 90, 150*time.Millisecond, 10)
	case EffectDefenderLost:
		return newTone(sampleRate, 140, 60, 200*time.Millisecond, 8)
	case EffectGameOver:
		return beep.Seq(
			newTone(sampleRate, 392, 392, 250*time.Millisecond, 3),
			newTone(sampleRate, 311, 311, 250*time.Millisecond, 3),
			newTone(sampleRate, 262, 196, 600*time.Millisecond, 2),
		)
	case EffectVictory:
		return beep.Seq(
			newTone(sampleRate, 523.25, 523.25, 120*time.Millisecond, 4),
			newTone(sampleRate, 659.25, 659.25, 120*time.Millisecond, 4),
			newTone(sampleRate, 783.99, 783.99, 120*time.Millisecond, 4),
			newTone(sampleRate, 1046.5, 1046.5, 400*time.Millisecond, 3),
		)
	}
	return nil
}

// Play добавляет эффект в микшер, если звук включён.
func (c *Controller) Play(fx Effect) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.settings.SoundEnabled {
		return
	}
	s := newEffect(fx)
	if s == nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(withVolume(s, c.settings.SoundVolume))
	speaker.Unlock()
}

// PlayMusic запускает или продолжает фоновую петлю.
func (c *Controller) PlayMusic() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.settings.MusicEnabled {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if c.music != nil {
		c.music.Paused = false
		return
	}
	c.music = &beep.Ctrl{Streamer: withVolume(newMelody(sampleRate, gameplayNotes, 300*time.Millisecond), c.settings.MusicVolume)}
	c.mixer.Add(c.music)
}

func (c *Controller) StopMusic() { c.setMusicPaused(true) }

func (c *Controller) setMusicPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.music == nil {
		return
	}
	speaker.Lock()
	c.music.Paused = paused
	speaker.Unlock()
}

// ToggleMusic переключает музыку и возвращает новое состояние.
func (c *Controller) ToggleMusic() bool {
	c.mu.Lock()
	c.settings.MusicEnabled = !c.settings.MusicEnabled
	enabled := c.settings.MusicEnabled
	c.mu.Unlock()

	if enabled {
		c.PlayMusic()
	} else {
		c.StopMusic()
	}
	return enabled
}

// ToggleSound переключает эффекты и возвращает новое состояние.
func (c *Controller) ToggleSound() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.SoundEnabled = !c.settings.SoundEnabled
	return c.settings.SoundEnabled
}

// Settings возвращает текущие звуковые настройки для сохранения.
func (c *Controller) Settings() config.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}
