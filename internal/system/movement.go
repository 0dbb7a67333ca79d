// internal/system/movement.go
package system

import (
	"math"

	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/defs"
)

// AttackerPhase — ход врагов. Защитник своего ряда ближе чем на клетку
// блокирует врага: тот стоит и бьёт, когда остынет. Иначе враг идёт влево.
func (s *CombatSystem) AttackerPhase() {
	for _, a := range s.world.Attackers {
		if a.Health.Dead() {
			continue
		}
		if d := s.blockingDefender(a); d != nil {
			if a.AttackTimer <= 0 {
				ApplyDamage(&d.Health, defs.Attacker.MeleeDamage)
				a.AttackTimer = defs.Attacker.CooldownTicks
			}
		} else {
			a.Pos[0] -= a.Speed
		}

		if a.AttackTimer > 0 {
			a.AttackTimer--
		}
	}
}

func (s *CombatSystem) blockingDefender(a *component.Attacker) *component.Defender {
	for _, d := range s.world.Defenders {
		if d.Row != a.Row || d.Health.Dead() {
			continue
		}
		if math.Abs(d.Pos.X()-a.Pos.X()) < s.field.Grid.CellSize {
			return d
		}
	}
	return nil
}

// Breached — живой враг дошёл до левого края газона.
func (s *CombatSystem) Breached() bool {
	for _, a := range s.world.Attackers {
		if !a.Health.Dead() && a.Pos.X() <= s.field.Boundary {
			return true
		}
	}
	return false
}

// UpdateDefenders — самообновление защитников: таймеры остывают,
// генератор по истечении периода выдаёт ресурс в своей клетке.
func (s *CombatSystem) UpdateDefenders(resources *ResourceSystem) {
	for _, d := range s.world.Defenders {
		if d.AttackTimer > 0 {
			d.AttackTimer--
		}
		if d.Kind != defs.KindGenerator || d.AttackTimer > 0 {
			continue
		}
		def := defs.DefenderLibrary[d.Kind]
		cx, cy := s.field.Grid.CellCenter(d.Row, d.Col)
		resources.SpawnAt(cx, cy, def.ResourceValue)
		d.AttackTimer = def.CooldownTicks
	}
}
