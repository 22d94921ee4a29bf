// internal/event/types.go
package event

import (
	"time"

	"go-treant-arena/internal/types"
)

const (
	EnemyHit            EventType = "EnemyHit"            // Стрела попала во врага
	EnemyDestroyed      EventType = "EnemyDestroyed"      // Враг уничтожен
	PlayerHit           EventType = "PlayerHit"           // Враг ударил игрока
	PlayerDied          EventType = "PlayerDied"          // У игрока кончилось здоровье
	ProjectileFired     EventType = "ProjectileFired"     // Игрок выпустил стрелу
	ProjectileDestroyed EventType = "ProjectileDestroyed" // Стрела исчезла (попадание или срок жизни)
	EffectSpawned       EventType = "EffectSpawned"       // Появилась вспышка атаки
	EffectExpired       EventType = "EffectExpired"       // Вспышка атаки истекла
	NpcGreeted          EventType = "NpcGreeted"          // NPC поздоровался
)

// HitData: полезная нагрузка EnemyHit.
type HitData struct {
	EnemyID      types.EntityID
	ProjectileID types.EntityID
	HP           int
}

// EnemyDestroyedData: состояние врага в момент уничтожения.
type EnemyDestroyedData struct {
	EnemyID   types.EntityID
	Alpha     float64
	LastHitAt time.Time
}
