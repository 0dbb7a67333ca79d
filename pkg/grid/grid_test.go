package grid

import "testing"

func TestCellOrigin(t *testing.T) {
	g := New(5, 9, 80, 100, 100)
	x, y := g.CellOrigin(2, 3)
	if x != 340 || y != 260 {
		t.Errorf("CellOrigin(2,3) = (%v,%v), want (340,260)", x, y)
	}
	cx, cy := g.CellCenter(0, 0)
	if cx != 140 || cy != 140 {
		t.Errorf("CellCenter(0,0) = (%v,%v), want (140,140)", cx, cy)
	}
}

func TestCellFromPoint(t *testing.T) {
	g := New(5, 9, 80, 100, 100)
	tests := []struct {
		name   string
		x, y   float64
		want   Cell
		wantOK bool
	}{
		{"origin", 100, 100, Cell{0, 0}, true},
		{"inside", 345, 265, Cell{2, 3}, true},
		{"right edge", 820, 150, Cell{0, 8}, true},
		{"bottom right corner", 820, 500, Cell{4, 8}, true},
		{"left of lawn", 99, 150, Cell{}, false},
		{"above lawn", 150, 99.5, Cell{}, false},
		{"past right edge", 820.1, 150, Cell{}, false},
		{"below lawn", 150, 501, Cell{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.CellFromPoint(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRoundTripEveryCell(t *testing.T) {
	g := New(5, 9, 80, 100, 100)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.CellCenter(row, col)
			c, ok := g.CellFromPoint(x, y)
			if !ok || c.Row != row || c.Col != col {
				t.Errorf("center of (%d,%d) mapped to %+v ok=%v", row, col, c, ok)
			}
		}
	}
}

func TestNewPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero rows")
		}
	}()
	New(0, 9, 80, 0, 0)
}
