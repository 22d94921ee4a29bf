// internal/system/projectile.go
package system

import (
	"time"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/types"
)

// ProjectileSystem убирает стрелы, отжившие свой срок или улетевшие за край мира.
// Попадания обрабатывает DamageSystem через пары столкновений.
type ProjectileSystem struct {
	ecs             *entity.ECS
	clock           clock.Clock
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, clk clock.Clock, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		clock:           clk,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	now := s.clock.Now()
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil || !inWorld(pos) || expired(proj, now) {
			s.removeProjectile(id)
		}
	}
}

func expired(proj *component.Projectile, now time.Time) bool {
	return now.Sub(proj.SpawnedAt) > proj.Lifetime
}

func inWorld(pos *component.Position) bool {
	return pos.X >= 0 && pos.X <= config.WorldWidth && pos.Y >= 0 && pos.Y <= config.WorldHeight
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	if s.ecs.Destroy(id) {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileDestroyed, Data: id})
	}
}
