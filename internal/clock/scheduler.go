// internal/clock/scheduler.go
package clock

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Scheduler держит периодические таймеры движка. Горутин нет, хост вызывает
// Advance() из своего цикла, и все колбэки выполняются синхронно внутри него.
type Scheduler struct {
	clock  Clock
	timers []*Timer
	log    logrus.FieldLogger
}

// Timer: явный дескриптор периодической задачи. Владелец может отменить его в любой момент.
type Timer struct {
	name      string
	interval  time.Duration
	next      time.Time
	fn        func()
	cancelled bool
	fired     int
}

func NewScheduler(c Clock, log logrus.FieldLogger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{clock: c, log: log}
}

// Every регистрирует fn с периодом interval. Первый вызов: не раньше чем
// через startDelay от текущего времени часов.
func (s *Scheduler) Every(name string, interval, startDelay time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic(fmt.Sprintf("clock: timer %q has non-positive interval %v", name, interval))
	}
	if startDelay < 0 {
		startDelay = 0
	}
	t := &Timer{
		name:     name,
		interval: interval,
		next:     s.clock.Now().Add(startDelay),
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	s.log.WithFields(logrus.Fields{
		"timer":    name,
		"interval": interval,
		"delay":    startDelay,
	}).Debug("timer registered")
	return t
}

// Advance запускает все таймеры, срок которых наступил. Каждый таймер
// срабатывает не более одного раза за вызов; пропущенные периоды не
// догоняются пачкой, следующий срок выравнивается от текущего времени.
// Возвращает число сработавших таймеров.
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	fired := 0

	// Колбэк может добавить или отменить таймеры, поэтому идём по снимку.
	snapshot := make([]*Timer, len(s.timers))
	copy(snapshot, s.timers)
	for _, t := range snapshot {
		if t.cancelled || now.Before(t.next) {
			continue
		}
		t.next = t.next.Add(t.interval)
		if !t.next.After(now) {
			t.next = now.Add(t.interval)
		}
		s.fire(t)
		fired++
	}

	s.compact()
	return fired
}

func (s *Scheduler) fire(t *Timer) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"timer":   t.name,
				"recover": r,
			}).Error("timer callback panicked")
		}
	}()
	t.fired++
	t.fn()
}

// compact выкидывает отменённые таймеры.
func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Stop отменяет все таймеры (снос сцены).
func (s *Scheduler) Stop() {
	for _, t := range s.timers {
		t.Cancel()
	}
	s.timers = nil
}

// Len: количество живых таймеров.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Cancel останавливает таймер. Повторный вызов и вызов на nil безопасны.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

func (t *Timer) Active() bool {
	return t != nil && !t.cancelled
}

func (t *Timer) Name() string { return t.name }

func (t *Timer) Fired() int { return t.fired }

func (t *Timer) NextDue() time.Time { return t.next }

func (t *Timer) Interval() time.Duration { return t.interval }
