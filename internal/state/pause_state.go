// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает игровые часы: таймеры преследования и окна эффектов
// не двигаются, пока экран открыт.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	clock         *clock.PausableClock
}

func NewPauseState(sm *StateMachine, prevState *GameState, clk *clock.PausableClock) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		clock:         clk,
	}
}

func (s *PauseState) Enter() {
	s.clock.Pause()
	s.previousState.log.Debug("paused")
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	s.previousState.renderer.DrawCenteredText(screen, "PAUSED",
		config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.clock.Resume()
	s.previousState.log.WithField("paused_total", s.clock.TotalPaused()).Debug("resumed")
}
