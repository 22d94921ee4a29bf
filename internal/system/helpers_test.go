package system

import (
	"time"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/component"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/interfaces"
	"go-treant-arena/internal/types"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// world: минимальная сцена для тестов систем.
type world struct {
	ecs        *entity.ECS
	clock      *clock.ManualClock
	dispatcher *event.Dispatcher
	events     *event.Recorder
	tuning     *config.Tuning
}

func newWorld() *world {
	w := &world{
		ecs:        entity.NewECS(),
		clock:      clock.NewManualClock(epoch),
		dispatcher: event.NewDispatcher(),
		events:     &event.Recorder{},
		tuning:     config.Default(),
	}
	w.dispatcher.Subscribe(w.events,
		event.EnemyHit, event.EnemyDestroyed, event.PlayerHit, event.PlayerDied,
		event.ProjectileFired, event.ProjectileDestroyed,
		event.EffectSpawned, event.EffectExpired, event.NpcGreeted)
	return w
}

// at переставляет часы на epoch+ms.
func (w *world) at(ms int) {
	w.clock.Set(epoch.Add(time.Duration(ms) * time.Millisecond))
}

func (w *world) spawnEnemyAt(x, y float64) types.EntityID {
	id := SpawnEnemy(w.ecs, w.tuning.Enemy)
	w.ecs.Positions[id].X, w.ecs.Positions[id].Y = x, y
	return id
}

func (w *world) spawnArrow() types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{}
	w.ecs.Projectiles[id] = &component.Projectile{SpawnedAt: w.clock.Now(), Lifetime: time.Second}
	return id
}

var _ interfaces.Player = (*fakePlayer)(nil)

// fakePlayer: управляемый коллаборатор игрока, считает вызовы.
type fakePlayer struct {
	id        types.EntityID
	active    bool
	pos       component.Position
	loading   bool
	canGetHit bool
	lastHit   time.Time

	loseHpCalls int
	reloadCalls int
	shootCalls  int
	nextArrow   func() types.EntityID
}

func (p *fakePlayer) ID() types.EntityID { return p.id }
func (p *fakePlayer) Active() bool { return p.active }
func (p *fakePlayer) Position() component.Position { return p.pos }
func (p *fakePlayer) Loading() bool { return p.loading }
func (p *fakePlayer) LastHitTime() time.Time { return p.lastHit }
func (p *fakePlayer) CanGetHit() bool { return p.canGetHit }
func (p *fakePlayer) LoseHp() { p.loseHpCalls++ }
func (p *fakePlayer) Reload() {
	p.reloadCalls++
	p.loading = true
}

func (p *fakePlayer) Shoot() types.EntityID {
	p.shootCalls++
	if p.nextArrow != nil {
		return p.nextArrow()
	}
	return 0
}
