// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
)

// StateIndicator: кружок в углу экрана цвета текущего исхода сцены.
// При смене исхода кружок коротко «вспухает».
type StateIndicator struct {
	X, Y         float32
	Radius       float32
	lastState    component.GameState
	lastChangeAt time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, state component.GameState, now time.Time) {
	if state != i.lastState {
		i.lastState = state
		i.lastChangeAt = now
	}
	scale := 1.0
	if !i.lastChangeAt.IsZero() {
		elapsed := now.Sub(i.lastChangeAt).Seconds()
		scale += 0.3 * math.Exp(-elapsed*8)
	}
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, StateColor(state), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.StrokeColor, true)
}

// StateColor: цвет исхода сцены.
func StateColor(state component.GameState) color.RGBA {
	switch state {
	case component.VictoryState:
		return config.VictoryColor
	case component.DefeatState:
		return config.DefeatColor
	default:
		return config.PlayerColor
	}
}
