package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-treant-arena/internal/event"
	"go-treant-arena/internal/input"
)

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	w := newWorld()
	players := NewPlayerSystem(w.ecs, w.clock, w.dispatcher, w.tuning)
	players.Spawn()

	assert.True(t, players.CanGetHit())

	w.at(0)
	players.LoseHp()
	assert.Equal(t, epoch, players.LastHitTime())

	w.at(1000)
	assert.False(t, players.CanGetHit(), "still invulnerable at exactly 1s")
	w.at(1001)
	assert.True(t, players.CanGetHit())
}

func TestPlayerDiesOnLastHeart(t *testing.T) {
	w := newWorld()
	players := NewPlayerSystem(w.ecs, w.clock, w.dispatcher, w.tuning)
	id := players.Spawn()
	w.ecs.Positions[id].X = 42

	for i := 0; i < w.tuning.Player.HP; i++ {
		require.True(t, players.Active())
		players.LoseHp()
	}

	assert.False(t, players.Active())
	assert.False(t, players.CanGetHit())
	assert.Equal(t, 3, w.events.Count(event.PlayerHit))
	assert.Equal(t, 1, w.events.Count(event.PlayerDied))
	assert.Equal(t, 42.0, players.Position().X, "position survives destruction")
	assert.Zero(t, players.Shoot())
}

func TestPlayerReloadClearsAfterDuration(t *testing.T) {
	w := newWorld()
	players := NewPlayerSystem(w.ecs, w.clock, w.dispatcher, w.tuning)
	players.Spawn()

	players.Reload()
	require.True(t, players.Loading())

	w.at(499)
	players.Update(input.State{})
	assert.True(t, players.Loading())

	w.at(500)
	players.Update(input.State{})
	assert.False(t, players.Loading())
}

func TestPlayerVelocityFollowsInput(t *testing.T) {
	w := newWorld()
	players := NewPlayerSystem(w.ecs, w.clock, w.dispatcher, w.tuning)
	id := players.Spawn()

	players.Update(input.State{Left: true, Down: true})
	vel := w.ecs.Velocities[id]
	assert.Equal(t, -w.tuning.Player.Speed, vel.X)
	assert.Equal(t, w.tuning.Player.Speed, vel.Y)

	players.Update(input.State{})
	assert.True(t, vel.IsZero())
	// Направление взгляда запоминается с последнего движения.
	assert.Equal(t, -1.0, w.ecs.Players[id].FacingX)
	assert.Equal(t, 1.0, w.ecs.Players[id].FacingY)
}

func TestShootUsesNormalizedFacing(t *testing.T) {
	w := newWorld()
	players := NewPlayerSystem(w.ecs, w.clock, w.dispatcher, w.tuning)
	id := players.Spawn()

	arrow := players.Shoot()
	require.NotZero(t, arrow)
	assert.Equal(t, w.tuning.Projectile.Speed, w.ecs.Velocities[arrow].X, "faces right by default")
	assert.Zero(t, w.ecs.Velocities[arrow].Y)
	assert.Equal(t, id, w.ecs.Projectiles[arrow].OwnerID)

	players.Update(input.State{Up: true, Right: true})
	diag := players.Shoot()
	vel := w.ecs.Velocities[diag]
	assert.InDelta(t, w.tuning.Projectile.Speed, math.Hypot(vel.X, vel.Y), 1e-9)
	assert.Greater(t, vel.X, 0.0)
	assert.Less(t, vel.Y, 0.0)
}
