package term

import (
	"go-lawn-defense/internal/component"
	"go-lawn-defense/pkg/grid"
)

// Layout переводит пиксельные координаты газона в клетки терминала.
// Каждая клетка газона занимает CellW×CellH символов.
type Layout struct {
	Grid    grid.Grid
	OriginX int // левый верхний угол газона на экране
	OriginY int
	CellW   int
	CellH   int
}

func NewLayout(g grid.Grid) Layout {
	return Layout{Grid: g, OriginX: 2, OriginY: 3, CellW: 6, CellH: 3}
}

// ToScreen — символ, в который попадает точка поля.
func (l Layout) ToScreen(pos component.Position) (int, int) {
	fx := (pos.X() - l.Grid.OriginX) / l.Grid.CellSize * float64(l.CellW)
	fy := (pos.Y() - l.Grid.OriginY) / l.Grid.CellSize * float64(l.CellH)
	return l.OriginX + floor(fx), l.OriginY + floor(fy)
}

// CellOrigin — левый верхний символ клетки.
func (l Layout) CellOrigin(row, col int) (int, int) {
	return l.OriginX + col*l.CellW, l.OriginY + row*l.CellH
}

// CellCenter — центр клетки газона в пикселях поля.
func (l Layout) CellCenter(c grid.Cell) (float64, float64) {
	return l.Grid.CellCenter(c.Row, c.Col)
}

// CellAt — клетка газона под символом экрана.
func (l Layout) CellAt(sx, sy int) (grid.Cell, bool) {
	if sx < l.OriginX || sy < l.OriginY {
		return grid.Cell{}, false
	}
	c := grid.Cell{Row: (sy - l.OriginY) / l.CellH, Col: (sx - l.OriginX) / l.CellW}
	if !l.Grid.Contains(c.Row, c.Col) {
		return grid.Cell{}, false
	}
	return c, true
}

// Width — ширина газона в символах.
func (l Layout) Width() int { return l.Grid.Cols * l.CellW }

// Height — высота газона в символах.
func (l Layout) Height() int { return l.Grid.Rows * l.CellH }

func floor(v float64) int {
	if v < 0 && v != float64(int(v)) {
		return int(v) - 1
	}
	return int(v)
}
