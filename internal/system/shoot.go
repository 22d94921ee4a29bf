// internal/system/shoot.go
package system

import (
	"go-treant-arena/internal/collision"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/input"
	"go-treant-arena/internal/interfaces"
	"go-treant-arena/internal/types"
)

// ShootSystem управляет выстрелом. Пока идёт перезарядка, удержание кнопки
// ничего не копит; иначе перезарядка, выстрел и регистрация пары стрела/враг.
type ShootSystem struct {
	ecs        *entity.ECS
	player     interfaces.Player
	router     *collision.Router
	damage     *DamageSystem
	dispatcher *event.Dispatcher
	enemyID    types.EntityID
}

func NewShootSystem(ecs *entity.ECS, player interfaces.Player, router *collision.Router, damage *DamageSystem, dispatcher *event.Dispatcher, enemyID types.EntityID) *ShootSystem {
	return &ShootSystem{
		ecs:        ecs,
		player:     player,
		router:     router,
		damage:     damage,
		dispatcher: dispatcher,
		enemyID:    enemyID,
	}
}

// Update вызывается раз за кадр. Возвращает ID выпущенной стрелы или 0.
func (s *ShootSystem) Update(in input.State) types.EntityID {
	if !in.Fire || !s.player.Active() {
		return 0
	}
	if s.player.Loading() {
		return 0
	}

	s.player.Reload()
	arrowID := s.player.Shoot()
	if arrowID == 0 {
		return 0
	}
	s.dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: arrowID})

	// Мёртвому врагу пара не нужна: стрела просто долетит и истечёт.
	if s.ecs.IsActive(s.enemyID) {
		s.router.OnOverlap(arrowID, s.enemyID, s.damage.RangedHit)
	}
	return arrowID
}
