// internal/component/projectile.go
package component

import (
	"time"

	"go-treant-arena/internal/types"
)

// Projectile представляет летящую стрелу.
type Projectile struct {
	OwnerID   types.EntityID
	SpawnedAt time.Time
	Lifetime  time.Duration // После этого срока стрелу убирает её владелец
}
