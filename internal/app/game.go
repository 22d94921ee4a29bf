// internal/app/game.go
package app

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-treant-arena/internal/clock"
	"go-treant-arena/internal/collision"
	"go-treant-arena/internal/config"
	"go-treant-arena/internal/entity"
	"go-treant-arena/internal/event"
	"go-treant-arena/internal/input"
	"go-treant-arena/internal/system"
	"go-treant-arena/internal/types"
	"go-treant-arena/pkg/logger"
)

// Game holds the arena scene: one player, one treant and a greeting NPC.
// It knows nothing about the window; the host feeds it input and delta time.
type Game struct {
	RunID           uuid.UUID
	Tuning          *config.Tuning
	ECS             *entity.ECS
	Clock           clock.Clock
	Scheduler       *clock.Scheduler
	EventDispatcher *event.Dispatcher
	Router          *collision.Router
	Detector        *collision.Detector

	MovementSystem     *system.MovementSystem
	PlayerSystem       *system.PlayerSystem
	ProjectileSystem   *system.ProjectileSystem
	PursuitSystem      *system.PursuitSystem
	DamageSystem       *system.DamageSystem
	EffectExpirySystem *system.EffectExpirySystem
	ShootSystem        *system.ShootSystem
	NpcSystem          *system.NpcSystem
	StateSystem        *system.StateSystem

	PlayerID types.EntityID
	EnemyID  types.EntityID
	NpcID    types.EntityID

	log *logrus.Entry
}

// NewGame initializes a new scene. nil tuning means defaults, nil log means the global logger.
func NewGame(tuning *config.Tuning, clk clock.Clock, log *logrus.Entry) *Game {
	if tuning == nil {
		tuning = config.Default()
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	runID := uuid.New()
	if log == nil {
		log = logger.For("game")
	}
	log = log.WithField("run_id", runID.String())

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	router := collision.NewRouter(ecs.IsActive)

	g := &Game{
		RunID:           runID,
		Tuning:          tuning,
		ECS:             ecs,
		Clock:           clk,
		Scheduler:       clock.NewScheduler(clk, log.WithField("component", "scheduler")),
		EventDispatcher: eventDispatcher,
		Router:          router,
		Detector:        collision.NewDetector(ecs, router),
		MovementSystem:  system.NewMovementSystem(ecs),
		log:             log,
	}

	g.PlayerSystem = system.NewPlayerSystem(ecs, clk, eventDispatcher, tuning)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, clk, eventDispatcher)
	g.PursuitSystem = system.NewPursuitSystem(ecs, g.PlayerSystem, tuning.Enemy.Speed)
	g.DamageSystem = system.NewDamageSystem(ecs, clk, eventDispatcher, g.PlayerSystem, tuning)
	g.EffectExpirySystem = system.NewEffectExpirySystem(ecs, clk, eventDispatcher, tuning.Enemy.FlashDuration)
	g.NpcSystem = system.NewNpcSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener,
		event.EnemyHit,
		event.EnemyDestroyed,
		event.PlayerHit,
		event.PlayerDied,
		event.NpcGreeted,
	)

	g.PlayerID = g.PlayerSystem.Spawn()
	g.EnemyID = system.SpawnEnemy(ecs, tuning.Enemy)
	g.NpcID = g.NpcSystem.Spawn(tuning.Npc)
	g.ShootSystem = system.NewShootSystem(ecs, g.PlayerSystem, router, g.DamageSystem, eventDispatcher, g.EnemyID)

	g.registerColliders()
	g.PursuitSystem.Schedule(g.Scheduler, g.EnemyID, tuning.Enemy.PursuitInterval, tuning.Enemy.PursuitStartDelay)

	log.WithFields(logrus.Fields{
		"player": g.PlayerID,
		"enemy":  g.EnemyID,
		"npc":    g.NpcID,
	}).Info("scene created")
	return g
}

func (g *Game) registerColliders() {
	// Враг касается игрока: удар в ближнем бою.
	g.Router.OnOverlap(g.EnemyID, g.PlayerID, func(enemyID, _ types.EntityID) {
		g.DamageSystem.MeleeHit(enemyID)
	})
	g.Router.OnOverlap(g.PlayerID, g.NpcID, g.NpcSystem.Greet)
}

// Tick прокручивает один кадр хоста. Порядок: таймеры, затем физика, затем логика кадра.
func (g *Game) Tick(deltaTime float64, in input.State) {
	g.Scheduler.Advance()
	g.Step(deltaTime)
	g.Update(in)
}

// Step делает шаг физики: движение по текущим скоростям и проверка столкновений.
func (g *Game) Step(deltaTime float64) {
	g.MovementSystem.Update(deltaTime)
	g.Detector.Step()
}

// Update: логика кадра. Скорости обнуляются здесь, поэтому решение тика
// преследования действует ровно один шаг физики.
func (g *Game) Update(in input.State) {
	g.EffectExpirySystem.Update()
	g.ProjectileSystem.Update()

	if g.PlayerSystem.Active() {
		g.MovementSystem.Halt(g.PlayerID)
	}
	if g.ECS.IsActive(g.EnemyID) {
		g.MovementSystem.Halt(g.EnemyID)
	}

	g.PlayerSystem.Update(in)
	g.ShootSystem.Update(in)
}

// PursuitTick: один тик преследования вне расписания.
func (g *Game) PursuitTick() {
	g.PursuitSystem.Tick(g.EnemyID)
}

// IsOver сообщает, что сцена завершилась победой или поражением.
func (g *Game) IsOver() bool {
	return g.StateSystem.Over()
}

// Close останавливает все таймеры сцены.
func (g *Game) Close() {
	g.Scheduler.Stop()
	g.log.WithField("outcome", g.StateSystem.Current().String()).Info("scene closed")
}

// GameEventListener логирует события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	log := l.game.log
	switch e.Type {
	case event.EnemyHit:
		if data, ok := e.Data.(event.HitData); ok {
			log.WithFields(logrus.Fields{"enemy": data.EnemyID, "hp": data.HP}).Debug("enemy hit")
		}
	case event.EnemyDestroyed:
		if data, ok := e.Data.(event.EnemyDestroyedData); ok {
			log.WithFields(logrus.Fields{"enemy": data.EnemyID, "alpha": data.Alpha}).Info("enemy destroyed")
		}
	case event.PlayerHit:
		log.WithField("hp", e.Data).Debug("player hit")
	case event.PlayerDied:
		log.Info("player died")
	case event.NpcGreeted:
		log.WithField("npc", e.Data).Debug("npc greeted")
	}
}
