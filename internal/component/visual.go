// internal/component/visual.go
package component

import "time"

// AttackEffect: короткоживущая вспышка атаки на месте удара по игроку.
// Каждый экземпляр истекает сам по себе, по своему CreatedAt.
type AttackEffect struct {
	CreatedAt time.Time
	Duration  time.Duration
}

// Expired сообщает, что окно эффекта строго прошло к моменту now.
func (e *AttackEffect) Expired(now time.Time) bool {
	return now.Sub(e.CreatedAt) > e.Duration
}
