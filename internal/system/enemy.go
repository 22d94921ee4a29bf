package system

import (
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/types"
)

// SpawnEnemy создаёт врага на стартовой позиции: полное здоровье, без вспышки.
func SpawnEnemy(ecs *entity.ECS, tuning config.EnemyTuning) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: tuning.SpawnX, Y: tuning.SpawnY}
	ecs.Hitboxes[id] = &component.Hitbox{Width: tuning.HitboxSize, Height: tuning.HitboxSize}
	ecs.Healths[id] = &component.Health{Value: tuning.HP, Max: tuning.HP}
	ecs.Enemies[id] = &component.Enemy{Alpha: 1}
	ecs.Renderables[id] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    config.EnemyRadius,
		HasStroke: true,
	}
	return id
}
