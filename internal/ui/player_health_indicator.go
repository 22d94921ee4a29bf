// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-treant-arena/internal/config"
)

// PlayerHealthIndicator отображает здоровье игрока рядом кружков-сердец.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует maxHealth кружков, из них health заполненных.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for j := 0; j < maxHealth; j++ {
		cx := i.X + config.HeartRadius + float32(j)*(config.HeartRadius*2+config.HeartSpacing)
		cy := i.Y + config.HeartRadius

		var fill color.RGBA
		if j < health {
			fill = config.HeartFullColor
		} else {
			// Потерянные сердца - тёмные
			fill = config.HeartEmptyColor
		}
		vector.DrawFilledCircle(screen, cx, cy, config.HeartRadius, fill, true)
		// Белая обводка
		vector.StrokeCircle(screen, cx, cy, config.HeartRadius, 1, config.StrokeColor, true)
	}
}

// Width возвращает ширину индикатора для maxHealth сердец.
func (i *PlayerHealthIndicator) Width(maxHealth int) float32 {
	if maxHealth <= 0 {
		return 0
	}
	return float32(maxHealth)*(config.HeartRadius*2+config.HeartSpacing) - config.HeartSpacing
}
