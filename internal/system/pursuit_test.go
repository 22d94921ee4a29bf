package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/component"
)

func TestPursuitTickDirection(t *testing.T) {
	tests := []struct {
		name          string
		enemy, player component.Position
		wantX, wantY  float64
	}{
		{"player to the right", component.Position{X: 5, Y: 5}, component.Position{X: 10, Y: 5}, 500, -500},
		{"player to the left", component.Position{X: 10, Y: 5}, component.Position{X: 5, Y: 5}, -500, -500},
		{"player below", component.Position{X: 5, Y: 5}, component.Position{X: 5, Y: 9}, -500, 500},
		{"player up-left", component.Position{X: 9, Y: 9}, component.Position{X: 1, Y: 1}, -500, -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			enemyID := w.spawnEnemyAt(tt.enemy.X, tt.enemy.Y)
			player := &fakePlayer{active: true, pos: tt.player}
			pursuit := NewPursuitSystem(w.ecs, player, w.tuning.Enemy.Speed)

			pursuit.Tick(enemyID)

			intent := w.ecs.Enemies[enemyID].Intent
			assert.Equal(t, tt.wantX, intent.X)
			assert.Equal(t, tt.wantY, intent.Y)
		})
	}
}

func TestPursuitAxisRule(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := newWorld()
		ex := rapid.Float64Range(0, 640).Draw(t, "ex")
		ey := rapid.Float64Range(0, 480).Draw(t, "ey")
		px := rapid.Float64Range(0, 640).Draw(t, "px")
		py := rapid.Float64Range(0, 480).Draw(t, "py")
		speed := w.tuning.Enemy.Speed

		enemyID := w.spawnEnemyAt(ex, ey)
		pursuit := NewPursuitSystem(w.ecs, &fakePlayer{active: true, pos: component.Position{X: px, Y: py}}, speed)
		pursuit.Tick(enemyID)
		intent := w.ecs.Enemies[enemyID].Intent

		wantX, wantY := -speed, -speed
		if ex-px < 0 {
			wantX = speed
		}
		if ey-py < 0 {
			wantY = speed
		}
		if intent.X != wantX || intent.Y != wantY {
			t.Fatalf("intent=(%v,%v), want (%v,%v)", intent.X, intent.Y, wantX, wantY)
		}
	})
}

func TestPursuitTickNoopWhenInactive(t *testing.T) {
	w := newWorld()
	player := &fakePlayer{active: false, pos: component.Position{X: 100, Y: 100}}
	pursuit := NewPursuitSystem(w.ecs, player, w.tuning.Enemy.Speed)
	enemyID := w.spawnEnemyAt(5, 5)

	pursuit.Tick(enemyID)
	assert.True(t, w.ecs.Enemies[enemyID].Intent.IsZero(), "inactive player")

	player.active = true
	w.ecs.Destroy(enemyID)
	assert.NotPanics(t, func() { pursuit.Tick(enemyID) })
}

func TestPursuitScheduleHonoursStartDelay(t *testing.T) {
	w := newWorld()
	player := &fakePlayer{active: true, pos: component.Position{X: 100, Y: 100}}
	pursuit := NewPursuitSystem(w.ecs, player, w.tuning.Enemy.Speed)
	sched := clock.NewScheduler(w.clock, nil)
	enemyID := w.spawnEnemyAt(5, 5)

	timer := pursuit.Schedule(sched, enemyID, 500*time.Millisecond, 2*time.Second)
	require.NotNil(t, timer)
	assert.Same(t, timer, w.ecs.Enemies[enemyID].PursuitTimer)

	w.at(1999)
	sched.Advance()
	assert.True(t, w.ecs.Enemies[enemyID].Intent.IsZero())

	w.at(2000)
	sched.Advance()
	assert.Equal(t, component.Velocity{X: 500, Y: 500}, w.ecs.Enemies[enemyID].Intent)

	w.at(2499)
	assert.Zero(t, sched.Advance())
	w.at(2500)
	assert.Equal(t, 1, sched.Advance())
	assert.Equal(t, 2, timer.Fired())
}

func TestPursuitRescheduleReplacesTimer(t *testing.T) {
	w := newWorld()
	pursuit := NewPursuitSystem(w.ecs, &fakePlayer{active: true}, 1)
	sched := clock.NewScheduler(w.clock, nil)
	enemyID := w.spawnEnemyAt(5, 5)

	first := pursuit.Schedule(sched, enemyID, time.Second, 0)
	second := pursuit.Schedule(sched, enemyID, time.Second, 0)

	assert.False(t, first.Active())
	assert.True(t, second.Active())
	sched.Advance()
	assert.Equal(t, 1, sched.Len())
	assert.Nil(t, pursuit.Schedule(sched, 12345, time.Second, 0))
}
