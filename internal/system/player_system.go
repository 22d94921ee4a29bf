// internal/system/player_system.go
package system

import (
	"math"
	"time"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/input"
	"go-treant-arena/internal/interfaces"
	"go-treant-arena/internal/types"
)

var _ interfaces.Player = (*PlayerSystem)(nil)

// PlayerSystem отвечает за игрока: движение по вводу, окно неуязвимости,
// перезарядка и выстрел.
type PlayerSystem struct {
	ecs        *entity.ECS
	clock      clock.Clock
	dispatcher *event.Dispatcher
	tuning     config.PlayerTuning
	arrows     config.ProjectileTuning

	id      types.EntityID
	lastPos component.Position // Последняя позиция, если игрок уже уничтожен
}

func NewPlayerSystem(ecs *entity.ECS, clk clock.Clock, dispatcher *event.Dispatcher, tuning *config.Tuning) *PlayerSystem {
	return &PlayerSystem{
		ecs:        ecs,
		clock:      clk,
		dispatcher: dispatcher,
		tuning:     tuning.Player,
		arrows:     tuning.Projectile,
	}
}

// Spawn создаёт сущность игрока на стартовой позиции.
func (s *PlayerSystem) Spawn() types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: s.tuning.SpawnX, Y: s.tuning.SpawnY}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Hitboxes[id] = &component.Hitbox{Width: s.tuning.HitboxSize, Height: s.tuning.HitboxSize}
	s.ecs.Healths[id] = &component.Health{Value: s.tuning.HP, Max: s.tuning.HP}
	s.ecs.Players[id] = &component.Player{FacingX: 1}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    config.PlayerRadius,
		HasStroke: true,
	}
	s.id = id
	s.lastPos = *s.ecs.Positions[id]
	return id
}

func (s *PlayerSystem) ID() types.EntityID { return s.id }

func (s *PlayerSystem) Active() bool {
	return s.id != 0 && s.ecs.IsActive(s.id)
}

func (s *PlayerSystem) Position() component.Position {
	if pos, ok := s.ecs.Positions[s.id]; ok {
		return *pos
	}
	return s.lastPos
}

func (s *PlayerSystem) Loading() bool {
	if p, ok := s.ecs.Players[s.id]; ok {
		return p.Loading
	}
	return false
}

func (s *PlayerSystem) LastHitTime() time.Time {
	if p, ok := s.ecs.Players[s.id]; ok {
		return p.LastHitAt
	}
	return time.Time{}
}

// CanGetHit: false во время окна неуязвимости после предыдущего удара.
func (s *PlayerSystem) CanGetHit() bool {
	p, ok := s.ecs.Players[s.id]
	if !ok {
		return false
	}
	if h, ok := s.ecs.Healths[s.id]; !ok || h.IsDepleted() {
		return false
	}
	if p.LastHitAt.IsZero() {
		return true
	}
	return s.clock.Now().Sub(p.LastHitAt) > s.tuning.Invulnerability
}

// LoseHp снимает одно сердце. На нуле игрок уничтожается.
func (s *PlayerSystem) LoseHp() {
	p, ok := s.ecs.Players[s.id]
	h, hasHealth := s.ecs.Healths[s.id]
	if !ok || !hasHealth {
		return
	}
	if h.Value > 0 {
		h.Value--
	}
	p.LastHitAt = s.clock.Now()
	s.dispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: h.Value})

	if h.IsDepleted() {
		s.lastPos = s.Position()
		s.ecs.Destroy(s.id)
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: s.id})
	}
}

// Reload запускает перезарядку. Флаг Loading снимается в Update.
func (s *PlayerSystem) Reload() {
	if p, ok := s.ecs.Players[s.id]; ok {
		p.Loading = true
		p.ReloadStartedAt = s.clock.Now()
	}
}

// Shoot выпускает стрелу из позиции игрока в направлении взгляда.
func (s *PlayerSystem) Shoot() types.EntityID {
	p, ok := s.ecs.Players[s.id]
	if !ok {
		return 0
	}
	pos := s.Position()
	dx, dy := p.FacingX, p.FacingY
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	} else {
		dx = 1
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Velocities[id] = &component.Velocity{X: dx * s.arrows.Speed, Y: dy * s.arrows.Speed}
	s.ecs.Hitboxes[id] = &component.Hitbox{Width: s.arrows.HitboxSize, Height: s.arrows.HitboxSize}
	s.ecs.Projectiles[id] = &component.Projectile{
		OwnerID:   s.id,
		SpawnedAt: s.clock.Now(),
		Lifetime:  s.arrows.Lifetime,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
	return id
}

// Update выполняет часть кадра, которой владеет игрок: конец перезарядки и скорость по вводу.
func (s *PlayerSystem) Update(in input.State) {
	now := s.clock.Now()

	p, ok := s.ecs.Players[s.id]
	if !ok {
		return
	}
	if p.Loading && now.Sub(p.ReloadStartedAt) >= s.tuning.ReloadDuration {
		p.Loading = false
	}

	dx, dy := in.Axis()
	if vel, ok := s.ecs.Velocities[s.id]; ok {
		vel.X = dx * s.tuning.Speed
		vel.Y = dy * s.tuning.Speed
	}
	if dx != 0 || dy != 0 {
		p.FacingX, p.FacingY = dx, dy
	}
	if pos, ok := s.ecs.Positions[s.id]; ok {
		s.lastPos = *pos
	}
}
