package state

import (
	"log/slog"

	"go-lawn-defense/internal/assets"
	"go-lawn-defense/internal/audio"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/metrics"
	"go-lawn-defense/internal/progress"
)

// Context — зависимости, общие для всех экранов.
type Context struct {
	Settings config.Settings
	Store    progress.Store
	Audio    *audio.Controller  // не nil; без устройства просто молчит
	Metrics  *metrics.Collector // nil — метрики выключены
	Fonts    *assets.FontManager
	Logger   *slog.Logger
	Seed     int64
}

// listen подписывает звук и метрики на события сессии.
func (c *Context) listen(d *event.Dispatcher) {
	if c.Audio != nil {
		c.Audio.Subscribe(d)
	}
	if c.Metrics != nil {
		c.Metrics.Subscribe(d)
	}
}
