// pkg/render/color.go
package render

import (
	"image/color"

	"go-lawn-defense/internal/config"
	"go-lawn-defense/internal/utils"
)

// LawnColors holds all the color definitions needed to render the lawn.
type LawnColors struct {
	SkyColor        color.RGBA
	LawnColor       color.RGBA
	LawnAltColor    color.RGBA
	ShooterColor    color.RGBA
	GeneratorColor  color.RGBA
	AttackerColor   color.RGBA
	ProjectileColor color.RGBA
	ResourceColor   color.RGBA
	HealthBack      color.RGBA
	HealthFront     color.RGBA
	HoverColor      color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DefaultLawnColors собирает палитру из config.
func DefaultLawnColors() LawnColors {
	return LawnColors{
		SkyColor:        config.SkyColor,
		LawnColor:       config.LawnColor,
		LawnAltColor:    config.LawnAltColor,
		ShooterColor:    config.ShooterColor,
		GeneratorColor:  config.GeneratorColor,
		AttackerColor:   config.AttackerColor,
		ProjectileColor: config.ProjectileColor,
		ResourceColor:   config.ResourceColor,
		HealthBack:      config.HealthBackColor,
		HealthFront:     config.HealthFrontColor,
		HoverColor:      config.SelectionColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     config.StrokeWidth,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с другой прозрачностью (premultiplied).
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	k := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: alpha,
	}
}

// MixColor — линейная смесь a и b, t в [0, 1].
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	return color.RGBA{
		R: uint8(utils.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(utils.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(utils.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(utils.Lerp(float64(a.A), float64(b.A), t)),
	}
}

// TextColorOn подбирает тёмный или светлый текст под фон.
func TextColorOn(bg color.RGBA, dark, light color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return dark
	}
	return light
}
