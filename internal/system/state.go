// internal/system/state.go
package system

import (
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
)

// StateSystem следит за исходом сцены: смерть врага значит победу, смерть игрока значит поражение.
// Первый исход фиксируется, последующие события его не меняют.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(ss, event.EnemyDestroyed, event.PlayerDied)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		s.finish(component.VictoryState)
	case event.PlayerDied:
		s.finish(component.DefeatState)
	}
}

func (s *StateSystem) finish(outcome component.GameState) {
	if s.ecs.GameState != component.PlayingState {
		return
	}
	s.ecs.GameState = outcome
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}

// Over сообщает, что сцена завершилась.
func (s *StateSystem) Over() bool {
	return s.ecs.GameState != component.PlayingState
}
