// internal/system/wave.go
package system

import (
	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/entity"
	"go-lawn-defense/internal/event"
	"go-lawn-defense/internal/utils"
)

// WaveSpawner — случайный поток врагов. Каждый тик, пока квота не выбрана,
// проводится одно испытание Бернулли; вероятность растёт к концу волны.
type WaveSpawner struct {
	Spawned  int
	Total    int
	BaseRate float64

	world           *entity.World
	field           Field
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSpawner(world *entity.World, field Field, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSpawner {
	return &WaveSpawner{
		world:           world,
		field:           field,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave настраивает спаунер на новую волну.
func (s *WaveSpawner) StartWave(total int, baseRate float64) {
	s.Spawned = 0
	s.Total = total
	s.BaseRate = baseRate
}

// AdjustedRate = base * (1 + 2*progress).
func (s *WaveSpawner) AdjustedRate() float64 {
	if s.Total <= 0 {
		return 0
	}
	progress := float64(s.Spawned) / float64(s.Total)
	return s.BaseRate * (1 + 2*progress)
}

// Remaining — сколько врагов ещё может появиться.
func (s *WaveSpawner) Remaining() int {
	return s.Total - s.Spawned
}

// Update — один тик спаунера. Возвращает нового врага или nil.
func (s *WaveSpawner) Update(tier defs.DifficultyDefinition) *component.Attacker {
	if s.Spawned >= s.Total {
		return nil
	}
	if !s.rng.Chance(s.AdjustedRate()) {
		return nil
	}
	return s.Spawn(s.rng.Intn(s.field.Grid.Rows), tier)
}

// Spawn выводит врага в заданном ряду у правого края поля.
// Возвращает nil, если квота уже выбрана или ряд вне сетки.
func (s *WaveSpawner) Spawn(row int, tier defs.DifficultyDefinition) *component.Attacker {
	if s.Spawned >= s.Total || row < 0 || row >= s.field.Grid.Rows {
		return nil
	}
	a := &component.Attacker{
		ID:     s.world.NewEntity(),
		Row:    row,
		Pos:    component.Pos(s.field.Width, s.field.RowTop(row)),
		Health: component.Health{Value: tier.AttackerHealth, Max: tier.AttackerHealth},
		Speed:  tier.AttackerSpeed,
		Tier:   tier.ID,
	}
	s.world.Attackers = append(s.world.Attackers, a)
	s.Spawned++
	s.eventDispatcher.Dispatch(event.Event{Type: event.AttackerSpawned, Data: a.ID})
	return a
}
