// internal/component/resource.go
package component

import "go-lawn-defense/internal/types"

// ResourceSource — откуда взялся ресурс.
type ResourceSource int

const (
	FromSky       ResourceSource = iota // падает сверху по таймеру
	FromGenerator                       // выдан генератором, не двигается
)

// Resource — собираемая валюта с ограниченным временем жизни.
type Resource struct {
	ID        types.EntityID
	Pos       Position
	TargetY   float64
	Speed     float64
	Value     int
	TTL       int // тики до исчезновения
	Source    ResourceSource
	Collected bool
}

// Expired — время жизни вышло.
func (r *Resource) Expired() bool { return r.TTL <= 0 }
