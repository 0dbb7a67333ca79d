// internal/metrics/metrics.go
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-lawn-defense/internal/event"
)

// Collector считает игровые события для Prometheus.
// Подписывается на Dispatcher сессии и получает события из игрового цикла.
type Collector struct {
	gatherer prometheus.Gatherer

	AttackersSpawned   prometheus.Counter
	AttackersKilled    prometheus.Counter
	DefendersPlaced    *prometheus.CounterVec
	DefendersDestroyed prometheus.Counter
	ProjectilesFired   prometheus.Counter
	ResourcesCollected prometheus.Counter
	ResourcesExpired   prometheus.Counter
	SessionsFinished   *prometheus.CounterVec
	Currency           prometheus.Gauge
	Score              prometheus.Gauge
	TickDuration       prometheus.Histogram
}

// NewCollector регистрирует метрики в reg (nil — DefaultRegisterer).
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	counters := []struct {
		dst  *prometheus.Counter
		name string
		help string
	}{
		{&c.AttackersSpawned, "lawn_attackers_spawned_total", "Attackers that entered the field."},
		{&c.AttackersKilled, "lawn_attackers_killed_total", "Attackers removed with zero health."},
		{&c.DefendersDestroyed, "lawn_defenders_destroyed_total", "Defenders removed with zero health."},
		{&c.ProjectilesFired, "lawn_projectiles_fired_total", "Projectiles fired by shooters."},
		{&c.ResourcesCollected, "lawn_resources_collected_total", "Currency collected from resources."},
		{&c.ResourcesExpired, "lawn_resources_expired_total", "Resources that expired uncollected."},
	}
	for _, def := range counters {
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: def.name, Help: def.help})
		if *def.dst, err = registerCounter(reg, counter, def.name); err != nil {
			return nil, err
		}
	}

	placed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lawn_defenders_placed_total",
		Help: "Defenders placed by the player.",
	}, []string{"kind"})
	if c.DefendersPlaced, err = registerCounterVec(reg, placed, "lawn_defenders_placed_total"); err != nil {
		return nil, err
	}

	finished := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lawn_sessions_finished_total",
		Help: "Level sessions that reached a terminal state.",
	}, []string{"outcome"})
	if c.SessionsFinished, err = registerCounterVec(reg, finished, "lawn_sessions_finished_total"); err != nil {
		return nil, err
	}

	currency := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lawn_currency",
		Help: "Currency held by the player after the last placement or collection.",
	})
	if c.Currency, err = registerGauge(reg, currency, "lawn_currency"); err != nil {
		return nil, err
	}

	score := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lawn_score",
		Help: "Score of the current session.",
	})
	if c.Score, err = registerGauge(reg, score, "lawn_score"); err != nil {
		return nil, err
	}

	tick := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "lawn_tick_duration_seconds",
		Help:    "Wall time spent in one simulation tick.",
		Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
	})
	if c.TickDuration, err = registerHistogram(reg, tick, "lawn_tick_duration_seconds"); err != nil {
		return nil, err
	}

	return c, nil
}

// Subscribe подписывает коллектор на все события, которые он считает.
func (c *Collector) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.AttackerSpawned,
		event.AttackerKilled,
		event.DefenderPlaced,
		event.DefenderDestroyed,
		event.ProjectileFired,
		event.ResourceCollected,
		event.ResourceExpired,
		event.SessionOver,
		event.LevelCompleted,
		event.SessionReset,
	)
}

func (c *Collector) OnEvent(e event.Event) {
	if c == nil {
		return
	}
	switch e.Type {
	case event.AttackerSpawned:
		c.AttackersSpawned.Inc()
	case event.AttackerKilled:
		c.AttackersKilled.Inc()
		if k, ok := e.Data.(event.Kill); ok {
			c.Score.Set(float64(k.Score))
		}
	case event.DefenderPlaced:
		if p, ok := e.Data.(event.Placement); ok {
			c.DefendersPlaced.WithLabelValues(p.Kind).Inc()
			c.Currency.Set(float64(p.Currency))
		}
	case event.DefenderDestroyed:
		c.DefendersDestroyed.Inc()
	case event.ProjectileFired:
		c.ProjectilesFired.Inc()
	case event.ResourceCollected:
		if col, ok := e.Data.(event.Collection); ok {
			c.ResourcesCollected.Add(float64(col.Value))
			c.Currency.Set(float64(col.Currency))
		}
	case event.ResourceExpired:
		c.ResourcesExpired.Inc()
	case event.SessionOver:
		c.SessionsFinished.WithLabelValues("over").Inc()
	case event.LevelCompleted:
		c.SessionsFinished.WithLabelValues("completed").Inc()
	case event.SessionReset:
		c.Score.Set(0)
	}
}

// ObserveTick записывает длительность тика.
func (c *Collector) ObserveTick(d time.Duration) {
	if c == nil || c.TickDuration == nil {
		return
	}
	c.TickDuration.Observe(d.Seconds())
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// Handler отдаёт метрики в текстовом формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.Gatherer(), promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
