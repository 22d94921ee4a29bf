// internal/clock/pausable.go
package clock

import (
	"sync"
	"time"
)

// PausableClock: игровое время, которое стоит на месте, пока игра на паузе.
// Экран паузы держит его остановленным, поэтому таймеры не срабатывают,
// а вспышки и эффекты не истекают за время паузы.
type PausableClock struct {
	mu sync.RWMutex

	source Clock

	paused      bool
	pausedAt    time.Time     // реальное время начала текущей паузы
	totalPaused time.Duration // сумма всех завершённых пауз
}

// NewPausableClock оборачивает source. Если source == nil, берётся SystemClock.
func NewPausableClock(source Clock) *PausableClock {
	if source == nil {
		source = SystemClock{}
	}
	return &PausableClock{source: source}
}

// Now возвращает игровое время (реальное минус накопленные паузы).
func (c *PausableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.paused {
		return c.pausedAt.Add(-c.totalPaused)
	}
	return c.source.Now().Add(-c.totalPaused)
}

// Pause замораживает игровое время. Повторный вызов ничего не делает.
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.source.Now()
}

// Resume продолжает ход времени с того места, где оно было остановлено.
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		return
	}
	c.totalPaused += c.source.Now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
}

func (c *PausableClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// TotalPaused возвращает суммарную длительность пауз, включая текущую.
func (c *PausableClock) TotalPaused() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.totalPaused
	if c.paused {
		total += c.source.Now().Sub(c.pausedAt)
	}
	return total
}
