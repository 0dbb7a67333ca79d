// component/movement.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Position — позиция в пикселях поля.
type Position = mgl64.Vec2

// Pos собирает Position из координат.
func Pos(x, y float64) Position {
	return mgl64.Vec2{x, y}
}

// Health — текущее и максимальное здоровье.
type Health struct {
	Value int
	Max   int
}

// Ratio — доля оставшегося здоровья в [0, 1].
func (h Health) Ratio() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}

// Dead — здоровье исчерпано.
func (h Health) Dead() bool { return h.Value <= 0 }
