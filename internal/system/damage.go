// internal/system/damage.go
package system

import (
	"time"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/interfaces"
	"go-treant-arena/internal/types"
)

// DamageSystem применяет урон в обе стороны: удар врага по игроку (ближний бой)
// и попадание стрелы во врага (дальний бой).
type DamageSystem struct {
	ecs            *entity.ECS
	clock          clock.Clock
	dispatcher     *event.Dispatcher
	player         interfaces.Player
	hitAlpha       float64
	effectDuration time.Duration
}

func NewDamageSystem(ecs *entity.ECS, clk clock.Clock, dispatcher *event.Dispatcher, player interfaces.Player, tuning *config.Tuning) *DamageSystem {
	return &DamageSystem{
		ecs:            ecs,
		clock:          clk,
		dispatcher:     dispatcher,
		player:         player,
		hitAlpha:       tuning.Enemy.HitAlpha,
		effectDuration: tuning.Effects.AttackDuration,
	}
}

// MeleeHit: враг касается игрока. Во время неуязвимости ничего не происходит.
func (s *DamageSystem) MeleeHit(enemyID types.EntityID) {
	if !s.ecs.IsActive(enemyID) || !s.player.Active() {
		return
	}
	if !s.player.CanGetHit() {
		return
	}
	s.spawnAttackEffect(s.player.Position())
	s.player.LoseHp()
}

// RangedHit: стрела касается врага. Неуязвимости у врага нет.
func (s *DamageSystem) RangedHit(projectileID, enemyID types.EntityID) {
	if !s.ecs.IsActive(projectileID) || !s.ecs.IsActive(enemyID) {
		return
	}
	enemy, isEnemy := s.ecs.Enemies[enemyID]
	health, hasHealth := s.ecs.Healths[enemyID]
	if !isEnemy || !hasHealth {
		return
	}

	if health.Value > 0 {
		health.Value--
	}
	enemy.Alpha = s.hitAlpha
	enemy.LastHitAt = s.clock.Now()

	s.destroyProjectile(projectileID)
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: event.HitData{
		EnemyID:      enemyID,
		ProjectileID: projectileID,
		HP:           health.Value,
	}})

	// Смертельный удар всё равно успевает выставить вспышку и время попадания.
	if health.Value == 0 {
		s.DestroyEnemy(enemyID)
	}
}

// DestroyEnemy снимает врага со сцены и останавливает его таймер преследования.
// Повторный вызов ничего не делает.
func (s *DamageSystem) DestroyEnemy(enemyID types.EntityID) bool {
	enemy, ok := s.ecs.Enemies[enemyID]
	if !ok {
		return false
	}
	enemy.PursuitTimer.Cancel()
	data := event.EnemyDestroyedData{
		EnemyID:   enemyID,
		Alpha:     enemy.Alpha,
		LastHitAt: enemy.LastHitAt,
	}
	if !s.ecs.Destroy(enemyID) {
		return false
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: data})
	return true
}

func (s *DamageSystem) destroyProjectile(id types.EntityID) {
	if s.ecs.Destroy(id) {
		s.dispatcher.Dispatch(event.Event{Type: event.ProjectileDestroyed, Data: id})
	}
}

// spawnAttackEffect добавляет вспышку атаки в пул. Прежние вспышки не трогаются:
// каждая истекает сама.
func (s *DamageSystem) spawnAttackEffect(at component.Position) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.AttackEffects[id] = &component.AttackEffect{
		CreatedAt: s.clock.Now(),
		Duration:  s.effectDuration,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.EffectColor,
		Radius: config.EffectRadius,
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EffectSpawned, Data: id})
	return id
}
