// internal/ui/menu_button.go
package ui

import (
	"fmt"
	"image"

	"golang.org/x/image/font"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/progress"
)

// LevelGrid — сетка кнопок выбора уровня в меню.
type LevelGrid struct {
	Buttons []*Button
	Levels  []progress.LevelInfo
}

// NewLevelGrid раскладывает уровни по perRow кнопок, начиная с (x, y).
// Закрытые уровни выключены.
func NewLevelGrid(levels []progress.LevelInfo, x, y, size, gap, perRow int, face font.Face) *LevelGrid {
	g := &LevelGrid{Levels: levels}
	for i, info := range levels {
		col, row := i%perRow, i/perRow
		min := image.Pt(x+col*(size+gap), y+row*(size+gap))
		b := NewButton(image.Rectangle{Min: min, Max: min.Add(image.Pt(size, size))}, fmt.Sprint(info.Level), face)
		b.Disabled = !info.Unlocked
		if info.Level%10 == 0 {
			b.TextColor = config.UIColorRed
		}
		g.Buttons = append(g.Buttons, b)
	}
	return g
}

// LevelAt возвращает открытый уровень под точкой.
func (g *LevelGrid) LevelAt(x, y int) (int, bool) {
	for i, b := range g.Buttons {
		if b.IsClicked(x, y) {
			return g.Levels[i].Level, true
		}
	}
	return 0, false
}
