// internal/progress/progress.go
package progress

import (
	"errors"
	"fmt"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
)

var (
	// ErrLevelOutOfRange — уровень вне 1..config.MaxLevel.
	ErrLevelOutOfRange = errors.New("level out of range")
	// ErrInvalidProgress — запись, которую Load не вернул бы как есть.
	ErrInvalidProgress = errors.New("invalid progress")
)

// Progress — сохраняемое состояние кампании для одной сложности.
type Progress struct {
	CurrentLevel           int `json:"current_level"`
	Score                  int `json:"score"`
	UnlockedLevels         int `json:"unlocked_levels"`
	TotalResourceCollected int `json:"total_resource_collected"`
	TotalAttackersKilled   int `json:"total_attackers_killed"`
}

// Default — прогресс новой кампании: открыт только первый уровень.
func Default() Progress {
	return Progress{CurrentLevel: 1, UnlockedLevels: 1}
}

// Stats — итоги пройденного уровня, которые прибавляются к сохранению.
type Stats struct {
	Score              int
	ResourcesCollected int
	AttackersKilled    int
}

// Store хранит прогресс по сложностям.
// Load никогда не падает: при отсутствии или порче данных отдаёт Default.
type Store interface {
	Load(d defs.Difficulty) Progress
	Save(d defs.Difficulty, p Progress) error
	CompleteLevel(level int, d defs.Difficulty) error
}

// Complete открывает следующий уровень и делает его текущим.
func (p *Progress) Complete(level int) error {
	if level < 1 || level > config.MaxLevel {
		return fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	p.CurrentLevel = level + 1
	p.UnlockedLevels = max(p.UnlockedLevels, level+1)
	return nil
}

// Add прибавляет итоги уровня к накопленным.
func (p *Progress) Add(s Stats) {
	p.Score += s.Score
	p.TotalResourceCollected += s.ResourcesCollected
	p.TotalAttackersKilled += s.AttackersKilled
}

// Validate проверяет, что запись переживёт Save и Load без изменений.
func (p Progress) Validate() error {
	switch {
	case p.CurrentLevel < 1:
		return fmt.Errorf("%w: current level %d", ErrInvalidProgress, p.CurrentLevel)
	case p.UnlockedLevels < 1:
		return fmt.Errorf("%w: unlocked levels %d", ErrInvalidProgress, p.UnlockedLevels)
	case p.Score < 0 || p.TotalResourceCollected < 0 || p.TotalAttackersKilled < 0:
		return fmt.Errorf("%w: negative totals", ErrInvalidProgress)
	}
	return nil
}

func (p *Progress) normalize() {
	if p.CurrentLevel < 1 {
		p.CurrentLevel = 1
	}
	if p.UnlockedLevels < 1 {
		p.UnlockedLevels = 1
	}
}

// Record отмечает уровень пройденным через Store.CompleteLevel, затем
// прибавляет статистику. Если вторая запись не удалась, уровень всё равно
// остаётся открытым.
func Record(s Store, d defs.Difficulty, level int, stats Stats) error {
	if err := s.CompleteLevel(level, d); err != nil {
		return fmt.Errorf("failed to complete level %d: %w", level, err)
	}
	p := s.Load(d)
	p.Add(stats)
	if err := s.Save(d, p); err != nil {
		return fmt.Errorf("failed to record stats for level %d: %w", level, err)
	}
	return nil
}

// LevelInfo — строка меню выбора уровня.
type LevelInfo struct {
	Level       int
	Quota       int
	Description string
	Unlocked    bool
}

// Info описывает уровень для сложности d с учётом открытых уровней.
func Info(s Store, level int, d defs.Difficulty) (LevelInfo, error) {
	if level < 1 || level > config.MaxLevel {
		return LevelInfo{}, fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	return levelInfo(level, d, s.Load(d).UnlockedLevels), nil
}

// AllLevels — все уровни кампании по порядку.
func AllLevels(s Store, d defs.Difficulty) []LevelInfo {
	unlocked := s.Load(d).UnlockedLevels
	out := make([]LevelInfo, 0, config.MaxLevel)
	for level := 1; level <= config.MaxLevel; level++ {
		out = append(out, levelInfo(level, d, unlocked))
	}
	return out
}

func levelInfo(level int, d defs.Difficulty, unlocked int) LevelInfo {
	return LevelInfo{
		Level:       level,
		Quota:       defs.QuotaFor(d, level),
		Description: defs.Level(level).Description,
		Unlocked:    level <= unlocked,
	}
}

// MemoryStore держит прогресс в памяти. Используется с флагом -nosave и в тестах.
type MemoryStore struct {
	data map[defs.Difficulty]Progress
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[defs.Difficulty]Progress)}
}

func (m *MemoryStore) Load(d defs.Difficulty) Progress {
	if p, ok := m.data[d]; ok {
		return p
	}
	return Default()
}

func (m *MemoryStore) Save(d defs.Difficulty, p Progress) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.data[d] = p
	return nil
}

func (m *MemoryStore) CompleteLevel(level int, d defs.Difficulty) error {
	p := m.Load(d)
	if err := p.Complete(level); err != nil {
		return err
	}
	return m.Save(d, p)
}
