// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	game "go-treant-arena/internal/app"
	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/input"
	"go-treant-arena/internal/ui"
	"go-treant-arena/pkg/render"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState это экран арены. Опрашивает клавиатуру и крутит кадр сцены.
type GameState struct {
	sm        *StateMachine
	clock     *clock.PausableClock
	tuning    *config.Tuning
	log       *logrus.Entry
	game      *game.Game
	renderer  *render.SceneRenderer
	hearts    *ui.PlayerHealthIndicator
	indicator *ui.StateIndicator
	debug     bool
}

func NewGameState(sm *StateMachine, tuning *config.Tuning, clk *clock.PausableClock, renderer *render.SceneRenderer, log *logrus.Entry) *GameState {
	return &GameState{
		sm:        sm,
		clock:     clk,
		tuning:    tuning,
		log:       log,
		game:      game.NewGame(tuning, clk, log),
		renderer:  renderer,
		hearts:    ui.NewPlayerHealthIndicator(config.HudOffsetX, config.HudOffsetY),
		indicator: ui.NewStateIndicator(float32(config.ScreenWidth-config.HudOffsetX-8), float32(config.HudOffsetY+8), 8),
	}
}

// GetGame отдаёт сцену экрана (для паузы и финального экрана).
func (g *GameState) GetGame() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.clock))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.game.Tick(deltaTime, readInput())

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// readInput снимает состояние управления за кадр.
func readInput() input.State {
	return input.State{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:  ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)

	health, maxHealth := 0, g.tuning.Player.HP
	if h, ok := g.game.ECS.Healths[g.game.PlayerID]; ok {
		health = h.Value
	}
	g.hearts.Draw(screen, health, maxHealth)
	g.indicator.Draw(screen, g.game.ECS.GameState, g.clock.Now())

	if g.debug {
		enemyHP := 0
		if h, ok := g.game.ECS.Healths[g.game.EnemyID]; ok {
			enemyHP = h.Value
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f  enemy hp: %d  entities: %d",
			ebiten.ActualTPS(), enemyHP, g.game.ECS.ActiveCount()), config.HudOffsetX, config.ScreenHeight-24)
	}
}

func (g *GameState) Exit() {
	// Сцена живёт дальше под паузой и финальным экраном
}

// Close снимает сцену: останавливает её таймеры.
func (g *GameState) Close() {
	g.game.Close()
}
