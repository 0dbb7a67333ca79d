// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lawn-defense/internal/app"
	"go-lawn-defense/internal/component"
	"go-lawn-defense/internal/config"
)

// StateIndicator — кружок цвета текущего состояния сессии.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// StatusColor — цвет индикатора для состояния.
func StatusColor(s component.SessionStatus) color.RGBA {
	switch s {
	case component.StatusPaused:
		return config.PauseColor
	case component.StatusOver:
		return config.OverColor
	case component.StatusCompleted:
		return config.CompletedColor
	default:
		return config.ActiveColor
	}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, status component.SessionStatus) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	r := i.Radius * float32(1.0+0.3*math.Exp(-elapsed*8))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, StatusColor(status), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// HandleClick запускает пульсацию при смене состояния.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

// HUD — левая панель: валюта, счёт, прогресс квоты.
type HUD struct {
	X, Y       int
	LineHeight int
	BarWidth   int
	Indicator  *StateIndicator
	Level      *LevelIndicator
}

func NewHUD() *HUD {
	return &HUD{
		X:          config.HUDLeft,
		Y:          config.HUDTop,
		LineHeight: config.HUDLineHeight,
		BarWidth:   int(config.LawnLeft) - config.HUDLeft*2,
		Indicator:  NewStateIndicator(float32(config.HUDLeft+10), 30, 10),
		Level:      NewLevelIndicator(int(config.LawnLeft)/2, 80),
	}
}

// Lines — текстовые строки панели.
func (h *HUD) Lines(snap app.Snapshot) []string {
	return []string{
		fmt.Sprintf("Sun: %d", snap.Currency),
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Kills: %d/%d", snap.Killed, snap.Quota),
		fmt.Sprintf("Mode: %s", snap.Difficulty),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, face, big font.Face) {
	h.Indicator.Draw(screen, snap.Status)
	h.Level.Draw(screen, snap.Level, big)

	y := h.Y
	for _, line := range h.Lines(snap) {
		text.Draw(screen, line, face, h.X, y, config.TextDarkColor)
		y += h.LineHeight
	}

	// полоса квоты
	w := float32(h.BarWidth)
	vector.DrawFilledRect(screen, float32(h.X), float32(y), w, 8, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, float32(h.X), float32(y), w*float32(snap.KillProgress()), 8, config.HealthFrontColor, false)
}
