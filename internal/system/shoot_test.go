package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-treant-arena/internal/collision"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/input"
	"go-treant-arena/internal/types"
)

func newShootRig(w *world, player *fakePlayer) (*ShootSystem, *collision.Router, types.EntityID) {
	router := collision.NewRouter(w.ecs.IsActive)
	damage := NewDamageSystem(w.ecs, w.clock, w.dispatcher, player, w.tuning)
	enemyID := w.spawnEnemyAt(300, 300)
	player.nextArrow = w.spawnArrow
	return NewShootSystem(w.ecs, player, router, damage, w.dispatcher, enemyID), router, enemyID
}

func TestHeldFireShootsOnceWhileLoading(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := newWorld()
		player := &fakePlayer{active: true}
		shoot, _, _ := newShootRig(w, player)

		frames := rapid.IntRange(1, 120).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			shoot.Update(input.State{Fire: true})
		}

		if player.reloadCalls != 1 || player.shootCalls != 1 {
			t.Fatalf("reload=%d shoot=%d over %d frames, want 1/1", player.reloadCalls, player.shootCalls, frames)
		}
	})
}

func TestShootRegistersArrowEnemyPair(t *testing.T) {
	w := newWorld()
	player := &fakePlayer{active: true}
	shoot, router, enemyID := newShootRig(w, player)

	arrowID := shoot.Update(input.State{Fire: true})
	require.NotZero(t, arrowID)
	require.Equal(t, 1, router.Len())

	pair := router.Pairs()[0]
	assert.Equal(t, arrowID, pair.A)
	assert.Equal(t, enemyID, pair.B)
	assert.Equal(t, 1, w.events.Count(event.ProjectileFired))

	// Обработчик пары: попадание стрелы.
	router.Dispatch(pair)
	assert.Equal(t, 2, w.ecs.Healths[enemyID].Value)
	assert.False(t, w.ecs.IsActive(arrowID))
}

func TestShootSkipsPairForDeadEnemy(t *testing.T) {
	w := newWorld()
	player := &fakePlayer{active: true}
	shoot, router, enemyID := newShootRig(w, player)
	w.ecs.Destroy(enemyID)

	assert.NotZero(t, shoot.Update(input.State{Fire: true}))
	assert.Zero(t, router.Len())
}

func TestShootIgnoredWithoutFireOrPlayer(t *testing.T) {
	w := newWorld()
	player := &fakePlayer{active: true}
	shoot, _, _ := newShootRig(w, player)

	assert.Zero(t, shoot.Update(input.State{Right: true}))
	player.active = false
	assert.Zero(t, shoot.Update(input.State{Fire: true}))
	assert.Zero(t, player.reloadCalls)
}

func TestHeldFireWithRealPlayerFollowsReload(t *testing.T) {
	w := newWorld()
	players := NewPlayerSystem(w.ecs, w.clock, w.dispatcher, w.tuning)
	players.Spawn()
	router := collision.NewRouter(w.ecs.IsActive)
	damage := NewDamageSystem(w.ecs, w.clock, w.dispatcher, players, w.tuning)
	enemyID := w.spawnEnemyAt(600, 400)
	shoot := NewShootSystem(w.ecs, players, router, damage, w.dispatcher, enemyID)

	held := input.State{Fire: true}
	for ms := 0; ms < 1000; ms += 16 {
		w.at(ms)
		players.Update(held)
		shoot.Update(held)
	}

	// Выстрелы на 0 и на первом кадре после 500 мс перезарядки (512).
	assert.Equal(t, 2, w.events.Count(event.ProjectileFired))
}
