// internal/component/projectile.go
package component

import "go-lawn-defense/internal/types"

// Projectile представляет летящий снаряд. Летит только вправо в своём ряду.
type Projectile struct {
	ID     types.EntityID
	Owner  types.EntityID // защитник, выпустивший снаряд
	Row    int
	Pos    Position
	Speed  float64
	Damage int
}
