// internal/app/session_config.go
package app

import (
	"log/slog"
	"time"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/progress"
	"go-lawn-defense/internal/system"
)

// SessionConfig — всё, что сессия получает снаружи. Глобальных настроек нет.
type SessionConfig struct {
	Difficulty       defs.Difficulty
	Level            int
	Field            system.Field
	ResourceBounds   system.ResourceBounds
	StartingCurrency int
	ResourceInterval time.Duration // период падения ресурса с неба
	Seed             int64         // 0 — от текущего времени

	Logger     *slog.Logger
	Dispatcher *event.Dispatcher // nil — сессия создаст свой
	Store      progress.Store    // nil — прогресс не сохраняется
}

// DefaultSessionConfig собирает конфиг из констант.
func DefaultSessionConfig(difficulty defs.Difficulty, level int) SessionConfig {
	return SessionConfig{
		Difficulty:       difficulty,
		Level:            level,
		Field:            system.DefaultField(),
		ResourceBounds:   system.DefaultResourceBounds(),
		StartingCurrency: config.StartingCurrency,
		ResourceInterval: config.ResourceSpawnPeriod,
	}
}
