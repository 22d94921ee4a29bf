// internal/interfaces/player.go
package interfaces

import (
	"time"

	"go-treant-arena/internal/component"
	"go-treant-arena/internal/types"
)

// Player: возможности игрока, которыми пользуется боевое ядро.
// Ядро игрока не создаёт и его таймингами не владеет, только спрашивает и вызывает.
type Player interface {
	ID() types.EntityID
	Active() bool
	Position() component.Position
	Loading() bool
	LastHitTime() time.Time
	CanGetHit() bool
	LoseHp()
	Reload()
	// Shoot выпускает стрелу и возвращает её ID.
	Shoot() types.EntityID
}
