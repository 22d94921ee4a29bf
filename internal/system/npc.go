package system

import (
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/types"
)

// NpcSystem показывает приветствие NPC, когда игрок к нему подходит вплотную.
type NpcSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewNpcSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *NpcSystem {
	return &NpcSystem{ecs: ecs, dispatcher: dispatcher}
}

// Spawn ставит неподвижного NPC с ещё скрытым текстом приветствия.
func (s *NpcSystem) Spawn(tuning config.NpcTuning) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: tuning.X, Y: tuning.Y}
	s.ecs.Hitboxes[id] = &component.Hitbox{Width: tuning.HitboxSize, Height: tuning.HitboxSize}
	s.ecs.Npcs[id] = &component.Npc{Greeting: tuning.Greeting}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.NpcColor, Radius: config.NpcRadius}
	return id
}

// Greet: обработчик пары (игрок, NPC).
func (s *NpcSystem) Greet(playerID, npcID types.EntityID) {
	npc, ok := s.ecs.Npcs[npcID]
	if !ok {
		return
	}
	npc.TextAlpha = 1
	if !npc.Greeted {
		npc.Greeted = true
		s.dispatcher.Dispatch(event.Event{Type: event.NpcGreeted, Data: npcID})
	}
}
