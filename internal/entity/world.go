// internal/entity/world.go
package entity

import (
	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/types"
)

// World владеет четырьмя популяциями одной сессии.
// Удаление двухфазное: во время обхода сущности помечаются через Mark,
// а Sweep выкидывает их одним уплотняющим проходом.
type World struct {
	NextID      types.EntityID
	Defenders   []*component.Defender
	Attackers   []*component.Attacker
	Projectiles []*component.Projectile
	Resources   []*component.Resource

	marked map[types.EntityID]struct{}
}

func NewWorld() *World {
	return &World{
		NextID: 1,
		marked: make(map[types.EntityID]struct{}),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Mark помечает сущность к удалению в ближайшем Sweep.
func (w *World) Mark(id types.EntityID) {
	w.marked[id] = struct{}{}
}

// Marked сообщает, помечена ли сущность.
func (w *World) Marked(id types.EntityID) bool {
	_, ok := w.marked[id]
	return ok
}

// SweepResult — что именно было удалено, в порядке популяций.
type SweepResult struct {
	Defenders   []*component.Defender
	Attackers   []*component.Attacker
	Projectiles []*component.Projectile
	Resources   []*component.Resource
}

// Sweep удаляет все помеченные сущности, сохраняя порядок оставшихся.
func (w *World) Sweep() SweepResult {
	var res SweepResult
	if len(w.marked) == 0 {
		return res
	}
	w.Defenders, res.Defenders = compact(w.Defenders, w.marked, func(d *component.Defender) types.EntityID { return d.ID })
	w.Attackers, res.Attackers = compact(w.Attackers, w.marked, func(a *component.Attacker) types.EntityID { return a.ID })
	w.Projectiles, res.Projectiles = compact(w.Projectiles, w.marked, func(p *component.Projectile) types.EntityID { return p.ID })
	w.Resources, res.Resources = compact(w.Resources, w.marked, func(r *component.Resource) types.EntityID { return r.ID })
	clear(w.marked)
	return res
}

// Clear очищает все популяции. Счётчик идентификаторов не сбрасывается,
// чтобы старые id не совпали с новыми.
func (w *World) Clear() {
	w.Defenders = nil
	w.Attackers = nil
	w.Projectiles = nil
	w.Resources = nil
	clear(w.marked)
}

// DefenderAt возвращает защитника в клетке или nil.
func (w *World) DefenderAt(row, col int) *component.Defender {
	for _, d := range w.Defenders {
		if d.Row == row && d.Col == col {
			return d
		}
	}
	return nil
}

func (w *World) Attacker(id types.EntityID) *component.Attacker {
	for _, a := range w.Attackers {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (w *World) Resource(id types.EntityID) *component.Resource {
	for _, r := range w.Resources {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RemoveResource сразу убирает ресурс из популяции, вне фаз тика.
func (w *World) RemoveResource(id types.EntityID) *component.Resource {
	for i, r := range w.Resources {
		if r.ID == id {
			w.Resources = append(w.Resources[:i], w.Resources[i+1:]...)
			return r
		}
	}
	return nil
}

// Count — общее число сущностей.
func (w *World) Count() int {
	return len(w.Defenders) + len(w.Attackers) + len(w.Projectiles) + len(w.Resources)
}

func compact[T any](items []T, marked map[types.EntityID]struct{}, id func(T) types.EntityID) (kept, removed []T) {
	n := 0
	for _, it := range items {
		if _, dead := marked[id(it)]; dead {
			removed = append(removed, it)
			continue
		}
		items[n] = it
		n++
	}
	clear(items[n:])
	return items[:n], removed
}
