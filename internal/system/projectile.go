// internal/system/projectile.go
package system

import (
	"math"

	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/event"
)

// ProjectilePhase двигает снаряды вправо и проверяет попадания.
// Снаряд бьёт первого живого врага своего ряда внутри квадрата попадания
// и помечается к удалению; вылетевшие за поле тоже помечаются.
func (s *CombatSystem) ProjectilePhase() {
	hb := s.field.HitBox()
	half := s.field.Grid.CellSize / 2
	for _, p := range s.world.Projectiles {
		if s.world.Marked(p.ID) {
			continue
		}
		p.Pos[0] += p.Speed

		if target := s.findHit(p, hb, half); target != nil {
			ApplyDamage(&target.Health, p.Damage)
			s.world.Mark(p.ID)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.Hit{
				ProjectileID: p.ID,
				DefenderID:   p.Owner,
				AttackerID:   target.ID,
				Damage:       p.Damage,
			}})
			continue
		}

		if p.Pos.X() > s.field.Width {
			s.world.Mark(p.ID)
		}
	}
}

// findHit ищет цель снаряда. Y врага — верх ряда, поэтому сравниваем с его центром.
func (s *CombatSystem) findHit(p *component.Projectile, hb, half float64) *component.Attacker {
	for _, a := range s.world.Attackers {
		if a.Row != p.Row || a.Health.Dead() {
			continue
		}
		dx := math.Abs(a.Pos.X() - p.Pos.X())
		dy := math.Abs(a.Pos.Y() + half - p.Pos.Y())
		if dx < hb && dy < hb {
			return a
		}
	}
	return nil
}
