package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-treant-arena/internal/event"
)

func TestArrowsExpireByLifetimeAndBounds(t *testing.T) {
	w := newWorld()
	players := NewPlayerSystem(w.ecs, w.clock, w.dispatcher, w.tuning)
	projectiles := NewProjectileSystem(w.ecs, w.clock, w.dispatcher)
	players.Spawn()

	w.at(0)
	old := players.Shoot()
	stray := players.Shoot()
	w.ecs.Positions[stray].X = -5

	w.at(10)
	projectiles.Update()
	assert.True(t, w.ecs.IsActive(old))
	assert.False(t, w.ecs.IsActive(stray), "left the world")

	w.at(2000)
	projectiles.Update()
	assert.True(t, w.ecs.IsActive(old), "lifetime is inclusive")

	w.at(2001)
	projectiles.Update()
	assert.False(t, w.ecs.IsActive(old))
	assert.Equal(t, 2, w.events.Count(event.ProjectileDestroyed))
}
