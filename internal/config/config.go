// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	MaxDeltaTime = 0.06 // Кадр длиннее этого обрезается, чтобы не проскакивать сквозь хитбоксы

	WorldWidth  = 640.0
	WorldHeight = 480.0

	PlayerRadius     = 8.0
	EnemyRadius      = 14.0
	ProjectileRadius = 3.0
	EffectRadius     = 12.0
	NpcRadius        = 8.0

	StrokeWidth      = 2.0
	GreetingFontSize = 12

	HeartRadius  = 6.0
	HeartSpacing = 4.0
	HudOffsetX   = 12
	HudOffsetY   = 12

	// Задержка между кликами по клавишам экранов (пауза, рестарт), мс
	ClickCooldown = 300
)

var (
	BackgroundColor = color.RGBA{34, 52, 38, 255}
	PlayerColor     = color.RGBA{70, 130, 220, 255}
	EnemyColor      = color.RGBA{120, 84, 40, 255}
	ProjectileColor = color.RGBA{240, 240, 200, 255}
	EffectColor     = color.RGBA{220, 60, 60, 200}
	NpcColor        = color.RGBA{200, 180, 90, 255}
	StrokeColor     = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HeartFullColor  = color.RGBA{220, 40, 60, 255}
	HeartEmptyColor = color.RGBA{40, 40, 40, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	BorderColor     = color.RGBA{90, 120, 80, 255}
	VictoryColor    = color.RGBA{120, 220, 120, 255}
	DefeatColor     = color.RGBA{230, 80, 80, 255}
)
