// internal/app/snapshot.go
package app

import (
	"github.com/google/uuid"

	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/types"
	"go-lawn-defense/internal/utils"
)

// Snapshot — всё, что HUD может знать о сессии.
type Snapshot struct {
	SessionID          uuid.UUID
	Difficulty         defs.Difficulty
	Level              int
	Currency           int
	Score              int
	Killed             int
	Spawned            int
	Quota              int
	ResourcesCollected int
	Ticks              uint64
	Status             component.SessionStatus
	Paused             bool
	Over               bool
	Completed          bool
}

// KillProgress — доля выполненной квоты.
func (s Snapshot) KillProgress() float64 {
	return utils.Ratio(s.Killed, s.Quota)
}

func (s *LevelSession) Snapshot() Snapshot {
	return Snapshot{
		SessionID:          s.ID,
		Difficulty:         s.cfg.Difficulty,
		Level:              s.cfg.Level,
		Currency:           s.currency,
		Score:              s.score,
		Killed:             s.killed,
		Spawned:            s.WaveSpawner.Spawned,
		Quota:              s.WaveSpawner.Total,
		ResourcesCollected: s.collected,
		Ticks:              s.ticks,
		Status:             s.status,
		Paused:             s.status == component.StatusPaused,
		Over:               s.status == component.StatusOver,
		Completed:          s.status == component.StatusCompleted,
	}
}

// Теги видов для EntityView.
const (
	ViewAttacker   = "attacker"
	ViewProjectile = "projectile"
	ViewResource   = "resource"
)

// EntityView — копия сущности для отрисовки. Для защитников Kind — вид
// защитника, у снарядов и ресурсов HealthRatio равен 1.
type EntityView struct {
	ID          types.EntityID
	Kind        string
	Row, Col    int
	Pos         component.Position
	HealthRatio float64
	Fading      bool // ресурс скоро исчезнет
}

func (s *LevelSession) Defenders() []EntityView {
	out := make([]EntityView, 0, len(s.World.Defenders))
	for _, d := range s.World.Defenders {
		out = append(out, EntityView{
			ID:          d.ID,
			Kind:        string(d.Kind),
			Row:         d.Row,
			Col:         d.Col,
			Pos:         d.Pos,
			HealthRatio: d.Health.Ratio(),
		})
	}
	return out
}

func (s *LevelSession) Attackers() []EntityView {
	out := make([]EntityView, 0, len(s.World.Attackers))
	for _, a := range s.World.Attackers {
		out = append(out, EntityView{
			ID:          a.ID,
			Kind:        ViewAttacker,
			Row:         a.Row,
			Col:         -1,
			Pos:         a.Pos,
			HealthRatio: a.Health.Ratio(),
		})
	}
	return out
}

func (s *LevelSession) Projectiles() []EntityView {
	out := make([]EntityView, 0, len(s.World.Projectiles))
	for _, p := range s.World.Projectiles {
		out = append(out, EntityView{
			ID:          p.ID,
			Kind:        ViewProjectile,
			Row:         p.Row,
			Col:         -1,
			Pos:         p.Pos,
			HealthRatio: 1,
		})
	}
	return out
}

// resourceFadeTicks — последние тики жизни ресурса, когда он мигает.
const resourceFadeTicks = 60

func (s *LevelSession) Resources() []EntityView {
	out := make([]EntityView, 0, len(s.World.Resources))
	for _, r := range s.World.Resources {
		out = append(out, EntityView{
			ID:          r.ID,
			Kind:        ViewResource,
			Row:         -1,
			Col:         -1,
			Pos:         r.Pos,
			HealthRatio: 1,
			Fading:      r.TTL <= resourceFadeTicks,
		})
	}
	return out
}
