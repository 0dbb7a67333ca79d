// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — уровень и формат логов.
type Config struct {
	Level     string    // debug, info, warn, error
	Format    string    // json или text
	AddSource bool      // добавлять файл:строку
	Output    io.Writer // по умолчанию stderr
}

// New создаёт slog-логгер по конфигу.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

// NewFromEnv читает LOG_LEVEL и LOG_FORMAT.
// Терминальный клиент передаёт сюда файл: stderr занят экраном tcell.
func NewFromEnv(out io.Writer) *slog.Logger {
	return New(Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		Output: out,
	})
}

// Noop — логгер, который всё выбрасывает. Удобен в тестах.
func Noop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrNoop подставляет Noop вместо nil.
func OrNoop(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Noop()
	}
	return l
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
