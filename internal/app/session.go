// internal/app/session.go
package app

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/entity"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/logging"
	"go-lawn-defense/internal/progress"
	"go-lawn-defense/internal/system"
	"go-lawn-defense/internal/types"
	"go-lawn-defense/internal/utils"
	"go-lawn-defense/pkg/grid"
)

// LevelSession владеет состоянием одного прохождения уровня.
// Не потокобезопасна: все вызовы идут из игрового цикла.
type LevelSession struct {
	ID              uuid.UUID
	World           *entity.World
	CombatSystem    *system.CombatSystem
	ResourceSystem  *system.ResourceSystem
	WaveSpawner     *system.WaveSpawner
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	cfg    SessionConfig
	tier   defs.DifficultyDefinition
	base   *slog.Logger
	logger *slog.Logger

	status    component.SessionStatus
	currency  int
	score     int
	killed    int
	collected int // сумма собранных ресурсов

	clock             time.Duration
	lastResourceSpawn time.Duration
	ticks             uint64
}

// NewLevelSession проверяет конфиг и запускает первую волну.
func NewLevelSession(cfg SessionConfig) (*LevelSession, error) {
	d, err := defs.ParseDifficulty(string(cfg.Difficulty))
	if err != nil {
		return nil, err
	}
	cfg.Difficulty = d
	if err := checkLevel(cfg.Level); err != nil {
		return nil, err
	}
	if cfg.ResourceInterval <= 0 {
		cfg.ResourceInterval = config.ResourceSpawnPeriod
	}
	if cfg.Dispatcher == nil {
		cfg.Dispatcher = event.NewDispatcher()
	}

	world := entity.NewWorld()
	rng := utils.NewPRNGService(cfg.Seed)
	s := &LevelSession{
		ID:              uuid.New(),
		World:           world,
		CombatSystem:    system.NewCombatSystem(world, cfg.Field, cfg.Dispatcher),
		ResourceSystem:  system.NewResourceSystem(world, cfg.ResourceBounds, rng, cfg.Dispatcher),
		WaveSpawner:     system.NewWaveSpawner(world, cfg.Field, rng, cfg.Dispatcher),
		EventDispatcher: cfg.Dispatcher,
		Rng:             rng,
		cfg:             cfg,
	}
	s.base = logging.OrNoop(cfg.Logger).With("session_id", s.ID.String())
	s.reset()
	s.logger.Info("session started", "seed", rng.Seed(), "quota", s.WaveSpawner.Total)
	return s, nil
}

func checkLevel(level int) error {
	if level < 1 || level > config.MaxLevel {
		return fmt.Errorf("%w: %d", progress.ErrLevelOutOfRange, level)
	}
	return nil
}

// reset возвращает сессию в Active с пустым полем. Уровень и сложность сохраняются.
func (s *LevelSession) reset() {
	s.tier = defs.DifficultyFor(s.cfg.Difficulty)
	s.logger = s.base.With("difficulty", s.cfg.Difficulty.String(), "level", s.cfg.Level)

	s.World.Clear()
	s.WaveSpawner.StartWave(defs.QuotaFor(s.cfg.Difficulty, s.cfg.Level), s.tier.SpawnRate)
	s.status = component.StatusActive
	s.currency = s.cfg.StartingCurrency
	s.score = 0
	s.killed = 0
	s.collected = 0
	s.clock = 0
	s.lastResourceSpawn = 0
	s.ticks = 0
}

// Reset начинает текущий уровень заново. Единственный выход из Over и Completed.
func (s *LevelSession) Reset() {
	s.reset()
	s.logger.Info("session reset")
	s.EventDispatcher.Dispatch(event.Event{Type: event.SessionReset, Data: s.ID})
}

// SetLevel переключает уровень и сбрасывает сессию.
func (s *LevelSession) SetLevel(level int) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	s.cfg.Level = level
	s.Reset()
	return nil
}

// SetDifficulty переключает сложность и сбрасывает сессию.
func (s *LevelSession) SetDifficulty(d defs.Difficulty) error {
	d, err := defs.ParseDifficulty(string(d))
	if err != nil {
		return err
	}
	s.cfg.Difficulty = d
	s.Reset()
	return nil
}

// PlaceDefender ставит защитника в клетку. false — не хватает валюты, клетка
// занята или вне поля, вид неизвестен или недоступен на уровне, либо уровень
// уже закончен. Пауза
// не мешает: она останавливает только Tick. При отказе состояние не меняется.
func (s *LevelSession) PlaceDefender(row, col int, kind defs.DefenderKind) bool {
	if s.status.Terminal() {
		return false
	}
	def, ok := defs.DefenderLibrary[kind]
	if !ok || !slices.Contains(defs.Level(s.cfg.Level).Defenders, kind) || !s.cfg.Field.Grid.Contains(row, col) {
		return false
	}
	if s.currency < def.Cost || s.World.DefenderAt(row, col) != nil {
		return false
	}

	x, y := s.cfg.Field.Grid.CellOrigin(row, col)
	d := &component.Defender{
		ID:          s.World.NewEntity(),
		Kind:        kind,
		Row:         row,
		Col:         col,
		Pos:         component.Pos(x, y),
		Health:      component.Health{Value: def.Health, Max: def.Health},
		AttackTimer: def.InitialCooldown,
	}
	s.World.Defenders = append(s.World.Defenders, d)
	s.currency -= def.Cost

	s.EventDispatcher.Dispatch(event.Event{Type: event.DefenderPlaced, Data: event.Placement{
		DefenderID: d.ID,
		Kind:       string(kind),
		Row:        row,
		Col:        col,
		Currency:   s.currency,
	}})
	return true
}

// CollectResource забирает ресурс и зачисляет его ценность.
// false — ресурса нет (собран или истёк) или уровень закончен.
func (s *LevelSession) CollectResource(id types.EntityID) bool {
	if s.status.Terminal() {
		return false
	}
	value, ok := s.ResourceSystem.Collect(id)
	if !ok {
		return false
	}
	s.currency += value
	s.collected += value
	s.EventDispatcher.Dispatch(event.Event{Type: event.ResourceCollected, Data: event.Collection{
		ResourceID: id,
		Value:      value,
		Currency:   s.currency,
	}})
	return true
}

// Tick продвигает симуляцию на один шаг. На паузе и в терминальных
// состояниях ничего не делает. Ошибка — только от записи прогресса
// при завершении уровня; состояние Completed при этом сохраняется.
func (s *LevelSession) Tick(elapsed time.Duration) error {
	if s.status != component.StatusActive {
		return nil
	}
	s.ticks++
	s.clock += elapsed

	if s.clock-s.lastResourceSpawn >= s.cfg.ResourceInterval {
		s.ResourceSystem.SpawnFromSky()
		s.lastResourceSpawn = s.clock
	}

	s.WaveSpawner.Update(s.tier)
	s.CombatSystem.UpdateDefenders(s.ResourceSystem)
	s.CombatSystem.FirePhase()
	s.CombatSystem.ProjectilePhase()
	s.CombatSystem.AttackerPhase()
	breached := s.CombatSystem.Breached()
	s.ResourceSystem.Update()
	s.cleanup()

	if breached {
		s.status = component.StatusOver
		s.logger.Info("attackers broke through", "tick", s.ticks, "killed", s.killed)
		s.EventDispatcher.Dispatch(event.Event{Type: event.SessionOver, Data: s.ID})
		return nil
	}
	if s.killed >= s.WaveSpawner.Total && len(s.World.Attackers) == 0 {
		return s.complete()
	}
	return nil
}

func (s *LevelSession) cleanup() {
	res := s.CombatSystem.Cleanup()
	for _, a := range res.Killed {
		s.killed++
		s.score += config.ScorePerKill
		s.EventDispatcher.Dispatch(event.Event{Type: event.AttackerKilled, Data: event.Kill{AttackerID: a.ID, Score: s.score}})
	}
	for _, d := range res.Destroyed {
		s.EventDispatcher.Dispatch(event.Event{Type: event.DefenderDestroyed, Data: d.ID})
	}
	for _, r := range res.Expired {
		s.EventDispatcher.Dispatch(event.Event{Type: event.ResourceExpired, Data: r.ID})
	}
}

func (s *LevelSession) complete() error {
	s.status = component.StatusCompleted

	var err error
	if s.cfg.Store != nil {
		err = progress.Record(s.cfg.Store, s.cfg.Difficulty, s.cfg.Level, progress.Stats{
			Score:              s.score,
			ResourcesCollected: s.collected,
			AttackersKilled:    s.killed,
		})
	}
	if err != nil {
		s.logger.Error("failed to save progress", "error", err)
		err = fmt.Errorf("level %d completed but progress not saved: %w", s.cfg.Level, err)
	} else {
		s.logger.Info("level completed", "score", s.score, "ticks", s.ticks)
	}

	s.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.Completion{
		Level:      s.cfg.Level,
		Difficulty: s.cfg.Difficulty.String(),
		Score:      s.score,
		Err:        err,
	}})
	return err
}

// Pause и Resume переключают только Active и Paused.
func (s *LevelSession) Pause() {
	if s.status != component.StatusActive {
		return
	}
	s.status = component.StatusPaused
	s.logger.Debug("session paused")
	s.EventDispatcher.Dispatch(event.Event{Type: event.SessionPaused, Data: s.ID})
}

func (s *LevelSession) Resume() {
	if s.status != component.StatusPaused {
		return
	}
	s.status = component.StatusActive
	s.logger.Debug("session resumed")
	s.EventDispatcher.Dispatch(event.Event{Type: event.SessionResumed, Data: s.ID})
}

// TogglePause — для кнопки паузы.
func (s *LevelSession) TogglePause() {
	if s.status == component.StatusPaused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// SpawnAttacker выпускает врага в ряд вне очереди спаунера.
// Враг засчитывается в квоту уровня.
func (s *LevelSession) SpawnAttacker(row int) (types.EntityID, bool) {
	if s.status.Terminal() {
		return 0, false
	}
	a := s.WaveSpawner.Spawn(row, s.tier)
	if a == nil {
		return 0, false
	}
	return a.ID, true
}

// DamageAttacker наносит урон врагу. Убитый враг уходит при ближайшей уборке тика.
func (s *LevelSession) DamageAttacker(id types.EntityID, damage int) bool {
	return system.DamageAttacker(s.World, id, damage)
}

// CellAt переводит точку экрана в клетку поля.
func (s *LevelSession) CellAt(x, y float64) (grid.Cell, bool) {
	return s.cfg.Field.Grid.CellFromPoint(x, y)
}

// ResourceAt ищет ресурс под курсором.
func (s *LevelSession) ResourceAt(x, y float64) (types.EntityID, bool) {
	return s.ResourceSystem.At(x, y)
}

func (s *LevelSession) Field() system.Field { return s.cfg.Field }
func (s *LevelSession) Status() component.SessionStatus { return s.status }
func (s *LevelSession) Level() int { return s.cfg.Level }
func (s *LevelSession) Difficulty() defs.Difficulty { return s.cfg.Difficulty }
