package component

import (
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/internal/types"
)

// Attacker представляет вражескую сущность, идущую по своему ряду справа налево.
type Attacker struct {
	ID          types.EntityID
	Row         int
	Pos         Position // X — передний край, Y — верх ряда
	Health      Health
	Speed       float64 // пикселей за тик
	AttackTimer int
	Tier        defs.Difficulty
}
