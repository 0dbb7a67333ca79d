// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	FPS          = 60
	MaxDeltaTime = 0.06

	// Газон: 5 рядов по 9 клеток
	GridRows  = 5
	GridCols  = 9
	CellSize  = 80.0
	LawnLeft  = 100.0
	LawnTop   = 100.0
	FieldEdge = ScreenWidth // правая граница поля, здесь появляются враги

	StartingCurrency = 100
	PlacementCost    = 50
	ScorePerKill     = 10

	DefenderHealth = 100

	// Стрелок
	ShooterCooldownTicks = 60
	ProjectileDamage     = 20
	ProjectileSpeed      = 5.0
	// HitBoxRatio — полуширина зоны попадания в долях клетки (30px при клетке 80px)
	HitBoxRatio = 0.375

	// Генератор ресурса
	GeneratorCooldownTicks = 300
	ResourceValue          = 25

	// Враг
	MeleeDamage         = 5
	MeleeCooldownTicks  = 30
	ResourceFallSpeed   = 1.0
	ResourceTTLTicks    = 300
	ResourceSpawnPeriod = 5000 * time.Millisecond
	ResourceClickRadius = 20.0

	// Границы появления падающего ресурса
	ResourceMinX       = LawnLeft
	ResourceMaxX       = ScreenWidth - 50
	ResourceMinTargetY = 100.0
	ResourceMaxTargetY = 400.0

	MaxLevel = 30

	HUDLeft       = 20
	HUDTop        = 160
	HUDLineHeight = 30
	SeedSlotSize  = 50
)

var (
	SkyColor         = color.RGBA{135, 206, 235, 255}
	LawnColor        = color.RGBA{100, 200, 100, 255}
	LawnAltColor     = color.RGBA{80, 180, 80, 255}
	ShooterColor     = color.RGBA{0, 128, 0, 255}
	GeneratorColor   = color.RGBA{255, 215, 0, 255}
	AttackerColor    = color.RGBA{0, 0, 255, 255}
	ProjectileColor  = color.RGBA{0, 255, 0, 255}
	ResourceColor    = color.RGBA{255, 255, 0, 255}
	HealthBackColor  = color.RGBA{255, 0, 0, 255}
	HealthFrontColor = color.RGBA{0, 255, 0, 255}
	TextDarkColor    = color.RGBA{0, 0, 0, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	SelectionColor   = color.RGBA{255, 255, 255, 255}
	PauseColor       = color.RGBA{70, 130, 180, 220}
	PlayColor        = color.RGBA{220, 60, 60, 220}
	StrokeWidth      = float32(3.0)

	// UI
	ButtonColor         = color.RGBA{200, 200, 200, 255}
	ButtonHoverColor    = color.RGBA{160, 160, 160, 255}
	ButtonDisabledColor = color.RGBA{90, 90, 90, 255}
	ButtonBorderColor   = color.RGBA{64, 64, 64, 255}
	UIColorBlue         = color.RGBA{30, 80, 200, 255}
	UIColorRed          = color.RGBA{220, 30, 30, 255}
	ActiveColor         = color.RGBA{60, 200, 60, 255}
	OverColor           = color.RGBA{200, 40, 40, 255}
	CompletedColor      = color.RGBA{255, 215, 0, 255}
)
