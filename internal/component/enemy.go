package component

import (
	"time"

	"go-treant-arena/internal/clock"
)

// Enemy: преследующий игрока враг (treant).
type Enemy struct {
	// Alpha показывает вспышку. 1 в обычном состоянии, HitAlpha сразу после попадания.
	Alpha float64
	// LastHitAt хранит момент последнего попадания стрелы, нулевое значение значит, что ещё не били.
	LastHitAt time.Time
	// Intent: текущая намеренная скорость. Пишут тик преследования (направление)
	// и кадровый сброс (ноль), читает только шаг физики.
	Intent Velocity
	// PursuitTimer: периодический таймер преследования, принадлежит врагу
	// и отменяется при его уничтожении.
	PursuitTimer *clock.Timer
}

// WasHit сообщает, получал ли враг хоть одно попадание.
func (e *Enemy) WasHit() bool {
	return !e.LastHitAt.IsZero()
}
