// internal/system/utils.go
package system

import (
	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/entity"
	"go-lawn-defense/internal/types"
	"go-lawn-defense/pkg/grid"
)

// Field — геометрия поля, общая для всех боевых фаз.
type Field struct {
	Grid     grid.Grid
	Width    float64 // правый край: здесь появляются враги, дальше снаряды исчезают
	Boundary float64 // левый край газона: враг на нём или левее — прорыв
}

// DefaultField — поле из констант конфигурации.
func DefaultField() Field {
	g := grid.New(config.GridRows, config.GridCols, config.CellSize, config.LawnLeft, config.LawnTop)
	return Field{Grid: g, Width: config.FieldEdge, Boundary: g.OriginX}
}

// HitBox — полуширина квадратной зоны попадания снаряда.
func (f Field) HitBox() float64 {
	return f.Grid.CellSize * config.HitBoxRatio
}

// RowTop — верхняя координата ряда.
func (f Field) RowTop(row int) float64 {
	_, y := f.Grid.CellOrigin(row, 0)
	return y
}

// ApplyDamage наносит урон и сообщает, погибла ли цель.
func ApplyDamage(h *component.Health, damage int) bool {
	if damage <= 0 {
		return h.Dead()
	}
	h.Value -= damage
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Dead()
}

// DamageAttacker наносит урон врагу по идентификатору. false — врага нет.
func DamageAttacker(w *entity.World, id types.EntityID, damage int) bool {
	a := w.Attacker(id)
	if a == nil {
		return false
	}
	ApplyDamage(&a.Health, damage)
	return true
}
