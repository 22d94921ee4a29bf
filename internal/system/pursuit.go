// internal/system/pursuit.go
package system

import (
	"time"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/interfaces"
	"go-treant-arena/internal/types"
)

// PursuitSystem это ИИ врага. По таймеру выбирает направление к игроку
// независимо по каждой оси. Без нормализации: по диагонали враг быстрее.
type PursuitSystem struct {
	ecs    *entity.ECS
	player interfaces.Player
	speed  float64
}

func NewPursuitSystem(ecs *entity.ECS, player interfaces.Player, speed float64) *PursuitSystem {
	return &PursuitSystem{ecs: ecs, player: player, speed: speed}
}

// Schedule заводит периодический тик преследования и отдаёт таймер врагу во владение.
func (s *PursuitSystem) Schedule(sched *clock.Scheduler, enemyID types.EntityID, interval, startDelay time.Duration) *clock.Timer {
	enemy, ok := s.ecs.Enemies[enemyID]
	if !ok {
		return nil
	}
	enemy.PursuitTimer.Cancel()
	enemy.PursuitTimer = sched.Every("pursuit", interval, startDelay, func() {
		s.Tick(enemyID)
	})
	return enemy.PursuitTimer
}

// Tick записывает намеренную скорость врага. Скорость здесь не обнуляется,
// это делает кадровый сброс.
func (s *PursuitSystem) Tick(enemyID types.EntityID) {
	if !s.ecs.IsActive(enemyID) || !s.player.Active() {
		return
	}
	enemy, ok := s.ecs.Enemies[enemyID]
	pos, hasPos := s.ecs.Positions[enemyID]
	if !ok || !hasPos {
		return
	}

	target := s.player.Position()
	diffX := pos.X - target.X
	diffY := pos.Y - target.Y

	// Двигаемся по X
	if diffX < 0 {
		enemy.Intent.X = s.speed
	} else {
		enemy.Intent.X = -s.speed
	}
	// Двигаемся по Y
	if diffY < 0 {
		enemy.Intent.Y = s.speed
	} else {
		enemy.Intent.Y = -s.speed
	}
}
