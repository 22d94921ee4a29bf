// internal/system/movement.go
package system

import (
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/types"
)

// MovementSystem делает шаг физики. Интегрирует скорости и держит игрока и врага
// в границах мира. Для врага источник скорости: его намеренная скорость Intent.
type MovementSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs, width: config.WorldWidth, height: config.WorldHeight}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		var vel component.Velocity
		if enemy, isEnemy := s.ecs.Enemies[id]; isEnemy {
			vel = enemy.Intent
		} else if v, hasVel := s.ecs.Velocities[id]; hasVel {
			vel = *v
		} else {
			continue
		}
		if vel.IsZero() {
			continue
		}

		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		if s.collidesWithWorldBounds(id) {
			s.clamp(id, pos)
		}
	}
}

// Halt обнуляет скорость сущности (кадровый сброс). Для врага обнуляется Intent.
func (s *MovementSystem) Halt(id types.EntityID) {
	if !s.ecs.IsActive(id) {
		return
	}
	if enemy, ok := s.ecs.Enemies[id]; ok {
		enemy.Intent = component.Velocity{}
		return
	}
	if vel, ok := s.ecs.Velocities[id]; ok {
		*vel = component.Velocity{}
	}
}

func (s *MovementSystem) collidesWithWorldBounds(id types.EntityID) bool {
	_, isEnemy := s.ecs.Enemies[id]
	_, isPlayer := s.ecs.Players[id]
	return isEnemy || isPlayer
}

func (s *MovementSystem) clamp(id types.EntityID, pos *component.Position) {
	halfW, halfH := 0.0, 0.0
	if box, ok := s.ecs.Hitboxes[id]; ok {
		halfW, halfH = box.Width/2, box.Height/2
	}
	pos.X = clampFloat(pos.X, halfW, s.width-halfW)
	pos.Y = clampFloat(pos.Y, halfH, s.height-halfH)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
