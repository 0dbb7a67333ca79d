package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/defs"
	"go-lawn-defense/pkg/render"
)

// SeedBar — ряд слотов с видами защитников над газоном.
type SeedBar struct {
	X, Y     int
	SlotSize int
	Gap      int
	Kinds    []defs.DefenderKind
	Selected int // -1 — ничего не выбрано
}

func NewSeedBar(x, y int, kinds []defs.DefenderKind) *SeedBar {
	return &SeedBar{
		X:        x,
		Y:        y,
		SlotSize: config.SeedSlotSize,
		Gap:      8,
		Kinds:    kinds,
		Selected: -1,
	}
}

// SlotAt возвращает индекс слота под точкой.
func (s *SeedBar) SlotAt(x, y int) (int, bool) {
	if y < s.Y || y >= s.Y+s.SlotSize || x < s.X {
		return 0, false
	}
	step := s.SlotSize + s.Gap
	i := (x - s.X) / step
	if i >= len(s.Kinds) || (x-s.X)%step >= s.SlotSize {
		return 0, false
	}
	return i, true
}

// Select выбирает слот; повторный выбор снимает выделение.
func (s *SeedBar) Select(i int) {
	if i < 0 || i >= len(s.Kinds) || s.Selected == i {
		s.Selected = -1
		return
	}
	s.Selected = i
}

func (s *SeedBar) Clear() { s.Selected = -1 }

func (s *SeedBar) SelectedKind() (defs.DefenderKind, bool) {
	if s.Selected < 0 {
		return "", false
	}
	return s.Kinds[s.Selected], true
}

// Draw рисует слоты; недоступные по цене затемнены.
func (s *SeedBar) Draw(screen *ebiten.Image, face font.Face, currency int) {
	size := float32(s.SlotSize)
	for i, kind := range s.Kinds {
		def := defs.DefenderLibrary[kind]
		x := float32(s.X + i*(s.SlotSize+s.Gap))
		y := float32(s.Y)

		bg := config.ButtonColor
		if currency < def.Cost {
			bg = config.ButtonDisabledColor
		}
		vector.DrawFilledRect(screen, x, y, size, size, bg, false)

		icon := config.ShooterColor
		if kind == defs.KindGenerator {
			icon = config.GeneratorColor
		}
		if currency < def.Cost {
			icon = render.DarkenColor(icon)
		}
		vector.DrawFilledCircle(screen, x+size/2, y+size/2-4, size*0.3, icon, true)

		border := config.ButtonBorderColor
		if i == s.Selected {
			border = config.SelectionColor
		}
		vector.StrokeRect(screen, x, y, size, size, 2, border, false)

		if face != nil {
			render.DrawCenteredText(screen, fmt.Sprint(def.Cost), face, int(x+size/2), s.Y+s.SlotSize-3, config.TextDarkColor)
		}
	}
}
