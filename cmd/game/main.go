// cmd/game/main.go
package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/state"
	"go-treant-arena/pkg/logger"
	"go-treant-arena/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "configs/game.yaml", "path to tuning file (empty for defaults)")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load tuning")
	}

	face, err := render.NewFace(config.GreetingFontSize)
	if err != nil {
		log.WithError(err).Fatal("failed to load font")
	}
	renderer := render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight, face, render.SceneColors{
		BackgroundColor: config.BackgroundColor,
		BorderColor:     config.BorderColor,
		StrokeColor:     config.StrokeColor,
		TextColor:       config.TextLightColor,
		StrokeWidth:     config.StrokeWidth,
	})

	gameClock := clock.NewPausableClock(clock.SystemClock{})
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, tuning, gameClock, renderer, logger.For("game")))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Treant Arena")
	log.WithField("config", *configPath).Info("starting")
	if err := ebiten.RunGame(app); err != nil {
		log.WithError(err).Fatal("game loop stopped")
	}
}
