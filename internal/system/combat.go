package system

import (
	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/entity"
	"go-lawn-defense/internal/event"
)

// CombatSystem выполняет боевые фазы тика строго по порядку:
// выстрелы защитников, полёт снарядов, ход врагов, проверка прорыва, уборка.
// Порядок определяет, кто бьёт первым, и менять его нельзя.
type CombatSystem struct {
	world           *entity.World
	field           Field
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, field Field, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		field:           field,
		eventDispatcher: eventDispatcher,
	}
}

// FirePhase — стрелки с истёкшим таймером стреляют, если в их ряду
// правее них есть враг. Цель — первый подходящий враг в порядке списка,
// не обязательно ближайший.
func (s *CombatSystem) FirePhase() []*component.Projectile {
	var fired []*component.Projectile
	for _, d := range s.world.Defenders {
		if d.Kind != defs.KindShooter || d.Health.Dead() || d.AttackTimer > 0 {
			continue
		}
		if s.firstAttackerAhead(d) == nil {
			continue
		}
		def := defs.DefenderLibrary[d.Kind]
		p := s.createProjectile(d, def)
		fired = append(fired, p)
		d.AttackTimer = def.CooldownTicks
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: p.ID})
	}
	return fired
}

func (s *CombatSystem) firstAttackerAhead(d *component.Defender) *component.Attacker {
	for _, a := range s.world.Attackers {
		if a.Row == d.Row && a.Pos.X() > d.Pos.X() && !a.Health.Dead() {
			return a
		}
	}
	return nil
}

func (s *CombatSystem) createProjectile(d *component.Defender, def defs.DefenderDefinition) *component.Projectile {
	cx, cy := s.field.Grid.CellCenter(d.Row, d.Col)
	p := &component.Projectile{
		ID:     s.world.NewEntity(),
		Owner:  d.ID,
		Row:    d.Row,
		Pos:    component.Pos(cx, cy),
		Speed:  def.ProjectileSpeed,
		Damage: def.Damage,
	}
	s.world.Projectiles = append(s.world.Projectiles, p)
	return p
}

// CleanupResult — что удалено в конце тика.
type CleanupResult struct {
	Killed    []*component.Attacker
	Destroyed []*component.Defender
	Expired   []*component.Resource
}

// Cleanup помечает мёртвых врагов и защитников, истёкшие и собранные
// ресурсы и удаляет их вместе с уже помеченными снарядами.
func (s *CombatSystem) Cleanup() CleanupResult {
	w := s.world
	for _, a := range w.Attackers {
		if a.Health.Dead() {
			w.Mark(a.ID)
		}
	}
	for _, d := range w.Defenders {
		if d.Health.Dead() {
			w.Mark(d.ID)
		}
	}
	for _, r := range w.Resources {
		if r.Collected || r.Expired() {
			w.Mark(r.ID)
		}
	}

	swept := w.Sweep()
	res := CleanupResult{
		Killed:    swept.Attackers,
		Destroyed: swept.Defenders,
	}
	for _, r := range swept.Resources {
		if !r.Collected {
			res.Expired = append(res.Expired, r)
		}
	}
	return res
}
