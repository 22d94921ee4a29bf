// internal/clock/clock.go
package clock

import (
	"sync"
	"time"
)

// Clock: источник времени движка. Все сравнения таймстемпов в ядре идут через него.
type Clock interface {
	Now() time.Time
}

// SystemClock возвращает реальное время с монотонной составляющей.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock: управляемые часы для тестов и детерминированных прогонов.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock создаёт часы, остановленные на start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set переставляет часы на t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance сдвигает часы вперёд на d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
