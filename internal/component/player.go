// internal/component/player.go
package component

import "time"

// Player хранит состояние, которым владеет коллаборатор игрока:
// окно неуязвимости, перезарядку и направление взгляда.
type Player struct {
	Loading         bool      // Идёт перезарядка, стрелять нельзя
	ReloadStartedAt time.Time // Когда началась текущая перезарядка
	LastHitAt       time.Time // Последний пропущенный удар, ноль: не били
	FacingX         float64   // Направление взгляда по X (-1, 0, 1)
	FacingY         float64   // Направление взгляда по Y (-1, 0, 1)
}
