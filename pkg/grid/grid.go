package grid

import "math"

// Cell — координаты клетки газона.
type Cell struct {
	Row, Col int
}

// Grid — неизменяемая прямоугольная сетка с привязкой к пикселям.
type Grid struct {
	Rows, Cols       int
	CellSize         float64
	OriginX, OriginY float64
}

// New создаёт сетку; размеры должны быть положительными.
func New(rows, cols int, cellSize, originX, originY float64) Grid {
	if rows <= 0 || cols <= 0 || cellSize <= 0 {
		panic("grid: rows, cols and cellSize must be positive")
	}
	return Grid{Rows: rows, Cols: cols, CellSize: cellSize, OriginX: originX, OriginY: originY}
}

// CellOrigin возвращает левый верхний угол клетки в пикселях.
// Корректность row/col проверяет вызывающий.
func (g Grid) CellOrigin(row, col int) (float64, float64) {
	return g.OriginX + float64(col)*g.CellSize, g.OriginY + float64(row)*g.CellSize
}

// CellCenter возвращает центр клетки.
func (g Grid) CellCenter(row, col int) (float64, float64) {
	x, y := g.CellOrigin(row, col)
	return x + g.CellSize/2, y + g.CellSize/2
}

// CellFromPoint переводит точку в клетку. ok == false, если точка вне газона.
// Правая и нижняя границы входят в газон и относятся к последней клетке.
func (g Grid) CellFromPoint(x, y float64) (Cell, bool) {
	if x < g.OriginX || x > g.Right() || y < g.OriginY || y > g.Bottom() {
		return Cell{}, false
	}
	col := int(math.Floor((x - g.OriginX) / g.CellSize))
	row := int(math.Floor((y - g.OriginY) / g.CellSize))
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return Cell{Row: row, Col: col}, true
}

// Contains сообщает, лежит ли клетка внутри сетки.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

func (g Grid) Right() float64  { return g.OriginX + float64(g.Cols)*g.CellSize }
func (g Grid) Bottom() float64 { return g.OriginY + float64(g.Rows)*g.CellSize }
