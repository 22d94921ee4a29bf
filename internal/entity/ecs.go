// internal/entity/ecs.go
package entity

import (
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/types"
)

// ECS хранит все компоненты сцены. Сущность активна, пока её ID живёт в live;
// Destroy снимает сущность со всех карт разом.
type ECS struct {
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Hitboxes      map[types.EntityID]*component.Hitbox
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Players       map[types.EntityID]*component.Player
	Projectiles   map[types.EntityID]*component.Projectile
	AttackEffects map[types.EntityID]*component.AttackEffect
	Npcs          map[types.EntityID]*component.Npc
	GameState     component.GameState

	live map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Hitboxes:      make(map[types.EntityID]*component.Hitbox),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Players:       make(map[types.EntityID]*component.Player),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		AttackEffects: make(map[types.EntityID]*component.AttackEffect),
		Npcs:          make(map[types.EntityID]*component.Npc),
		GameState:     component.PlayingState,
		live:          make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.live[id] = struct{}{}
	return id
}

// IsActive сообщает, участвует ли сущность ещё в ИИ, столкновениях и отрисовке.
func (ecs *ECS) IsActive(id types.EntityID) bool {
	_, ok := ecs.live[id]
	return ok
}

// Destroy деактивирует сущность и освобождает её компоненты.
// Возвращает false, если сущность уже была уничтожена.
func (ecs *ECS) Destroy(id types.EntityID) bool {
	if _, ok := ecs.live[id]; !ok {
		return false
	}
	delete(ecs.live, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Hitboxes, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)
	delete(ecs.Projectiles, id)
	delete(ecs.AttackEffects, id)
	delete(ecs.Npcs, id)
	return true
}

// ActiveCount: число живых сущностей.
func (ecs *ECS) ActiveCount() int {
	return len(ecs.live)
}
