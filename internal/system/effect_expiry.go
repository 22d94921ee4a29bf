// internal/system/effect_expiry.go
package system

import (
	"time"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
)

// EffectExpirySystem снимает временные визуальные эффекты: возвращает врагу
// непрозрачность после вспышки и убирает истёкшие вспышки атаки.
// Все сроки меряются по часам, а не по кадрам.
type EffectExpirySystem struct {
	ecs           *entity.ECS
	clock         clock.Clock
	dispatcher    *event.Dispatcher
	flashDuration time.Duration
}

// NewEffectExpirySystem создает систему истечения эффектов.
func NewEffectExpirySystem(ecs *entity.ECS, clk clock.Clock, dispatcher *event.Dispatcher, flashDuration time.Duration) *EffectExpirySystem {
	return &EffectExpirySystem{
		ecs:           ecs,
		clock:         clk,
		dispatcher:    dispatcher,
		flashDuration: flashDuration,
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *EffectExpirySystem) Update() {
	now := s.clock.Now()

	// Вспышка врага: пока не били, проверять нечего
	for _, enemy := range s.ecs.Enemies {
		if !enemy.WasHit() {
			continue
		}
		if now.Sub(enemy.LastHitAt) > s.flashDuration {
			enemy.Alpha = 1
		}
	}

	// Вспышки атаки: каждая по своему времени создания
	for id, effect := range s.ecs.AttackEffects {
		if !effect.Expired(now) {
			continue
		}
		if s.ecs.Destroy(id) {
			s.dispatcher.Dispatch(event.Event{Type: event.EffectExpired, Data: id})
		}
	}
}
