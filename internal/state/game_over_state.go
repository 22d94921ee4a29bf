// internal/state/game_over_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/ui"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

// GameOverState: финальный экран поверх застывшей сцены. Enter начинает заново.
type GameOverState struct {
	sm        *StateMachine
	finished  *GameState
	enteredAt time.Time
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	return &GameOverState{sm: sm, finished: finished}
}

func (s *GameOverState) Enter() {
	s.enteredAt = time.Now()
	s.finished.log.WithField("outcome", s.finished.game.ECS.GameState.String()).Info("game over")
}

func (s *GameOverState) Update(deltaTime float64) {
	// Не даём случайно перезапуститься кнопкой, зажатой ещё в игре
	if time.Since(s.enteredAt) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.finished.Close()
		prev := s.finished
		s.sm.SetState(NewGameState(s.sm, prev.tuning, prev.clock, prev.renderer, prev.log))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.finished.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	title := "YOU DIED"
	if s.finished.game.ECS.GameState == component.VictoryState {
		title = "TREANT DEFEATED"
	}
	r := s.finished.renderer
	r.DrawCenteredText(screen, title, config.ScreenWidth/2, config.ScreenHeight/2-16, ui.StateColor(s.finished.game.ECS.GameState))
	r.DrawCenteredText(screen, "press Enter to restart", config.ScreenWidth/2, config.ScreenHeight/2+16, config.TextLightColor)
}

func (s *GameOverState) Exit() {
	// Ничего не делаем при выходе
}
