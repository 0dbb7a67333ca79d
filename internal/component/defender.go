// component/defender.go
package component

import (
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/types"
)

// Defender — защитник, занимающий одну клетку газона.
type Defender struct {
	ID          types.EntityID
	Kind        defs.DefenderKind
	Row, Col    int
	Pos         Position // левый верхний угол клетки
	Health      Health
	AttackTimer int // тики до следующего срабатывания
}
