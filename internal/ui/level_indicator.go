package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/pkg/render"
)

// LevelIndicator отображает номер уровня римскими цифрами.
type LevelIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

func NewLevelIndicator(x, y int) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 2,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// colorFor — каждый десятый уровень красный.
func (i *LevelIndicator) colorFor(level int) color.RGBA {
	if level%10 == 0 {
		return config.UIColorRed
	}
	return i.Color
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, level int, face font.Face) {
	if level <= 0 {
		return
	}
	s := toRoman(level)
	b := text.BoundString(face, s)
	x := i.X - b.Dx()/2
	render.DrawOutlinedText(screen, s, face, x, i.Y, i.OutlineThickness, i.colorFor(level), i.OutlineColor)
}
