// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	TextColor     color.RGBA
	BgColor       color.RGBA
	HoverColor    color.RGBA
	DisabledColor color.RGBA
	Disabled      bool
	Face          font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string, face font.Face) *Button {
	return &Button{
		Rect:          rect,
		Text:          text,
		TextColor:     config.TextDarkColor,
		BgColor:       config.ButtonColor,
		HoverColor:    config.ButtonHoverColor,
		DisabledColor: config.ButtonDisabledColor,
		Face:          face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked — клик по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = b.DisabledColor
	case b.Contains(mouseX, mouseY):
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ButtonBorderColor, false)

	if b.Face == nil || b.Text == "" {
		return
	}
	fg := b.TextColor
	if b.Disabled {
		fg = config.TextLightColor
	}
	// базовая линия примерно на 2/3 высоты
	baseline := b.Rect.Min.Y + b.Rect.Dy()/2 + b.Face.Metrics().Ascent.Round()/2
	render.DrawCenteredText(screen, b.Text, b.Face, b.Rect.Min.X+b.Rect.Dx()/2, baseline, fg)
}
