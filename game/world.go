// Package game assembles the slingshot runtime into one headless world.
// Rendering and input devices live in the front ends; everything here runs
// on an explicit tick.
package game

import (
	"time"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/timer"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configure a World.
type Options struct {
	Settings config.Settings
	Levels   []leveldata.Level
	Listener systems.OutcomeListener
	Logger   *log.Logger // Defaults to log.Default()
	Seed     int64       // Idle hop randomness
}

// World owns the ECS, the physics space and every system for one game.
type World struct {
	ecs   *ecs.ECS
	space *physics.Space
	sched *timer.Scheduler

	queue      *systems.LaunchQueue
	birds      *systems.BirdSystem
	round      *systems.RoundController
	collisions *systems.CollisionSystem
	trail      *systems.TrajectoryEmitter

	camera *donburi.Entry
	ground cp.BB
	dt     time.Duration
	log    *log.Logger
}

// NewWorld builds an empty arena. Call Start or Load to populate it.
func NewWorld(opts Options) *World {
	settings := opts.Settings
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	e := ecs.NewECS(donburi.NewWorld())
	space := physics.NewSpace(physics.Options{
		Gravity:            cp.Vector{Y: settings.Physics.Gravity},
		Iterations:         settings.Physics.Iterations,
		SleepTimeThreshold: settings.Physics.SleepTimeThreshold,
	})

	factory.CreateGround(e, space, settings.Physics)
	triggers := components.TriggerSpace.Get(factory.CreateTriggerSpace(e, settings.Physics))
	camera := factory.CreateCamera(e, settings.Camera.DefaultWidth)
	factory.CreateRound(e, settings.Round)
	factory.CreateLevel(e, opts.Levels)

	sched := timer.NewScheduler()
	queue := systems.NewLaunchQueue(space, sched)
	trail := systems.NewTrajectoryEmitter(e, settings.Bird.TrajectoryVariants)
	birds := systems.NewBirdSystem(e, space, triggers, queue, sched, trail, settings, opts.Seed, logger.With("system", "birds"))
	round := systems.NewRoundController(e, systems.RoundParts{
		Space:     space,
		Triggers:  triggers,
		Scheduler: sched,
		Queue:     queue,
		Targets:   systems.NewTargetRegistry(),
		Stability: systems.NewStabilityMonitor(e.World, settings.Physics.Ground(), settings.Round.StabilityEpsilon),
		Framer:    systems.NewCameraFramer(settings.Camera.Margin),
		Trail:     trail,
		Birds:     birds,
	}, settings, logger.With("system", "round"))
	round.Listener = opts.Listener
	collisions := systems.NewCollisionSystem(space, birds, round, settings, logger.With("system", "collisions"))

	e.AddSystem(queue.Update)
	e.AddSystem(birds.Update)
	e.AddSystem(systems.NewPhysicsSystem(space, sched).Update)
	e.AddSystem(collisions.Update)
	e.AddSystem(collisions.Sweep)
	e.AddSystem(systems.UpdateObjects)

	return &World{
		ecs:        e,
		space:      space,
		sched:      sched,
		queue:      queue,
		birds:      birds,
		round:      round,
		collisions: collisions,
		trail:      trail,
		camera:     camera,
		ground:     settings.Physics.Ground(),
		log:        logger,
	}
}

// ECS exposes the underlying ECS so front ends can add renderers.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

func (w *World) Space() *physics.Space {
	return w.space
}

func (w *World) Round() *systems.RoundController {
	return w.round
}

func (w *World) Birds() *systems.BirdSystem {
	return w.birds
}

func (w *World) Trail() *systems.TrajectoryEmitter {
	return w.trail
}

// Now is the simulated time since the world was created.
func (w *World) Now() time.Duration {
	return w.sched.Now()
}

// Tick advances the game by dt: timers fire first, then the systems run in
// order.
func (w *World) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	w.sched.Advance(dt)
	w.ecs.Update()
}

// Start loads the first configured level.
func (w *World) Start() error {
	return w.round.Start()
}

func (w *World) Load(index int) error {
	return w.round.Load(index)
}

func (w *World) LoadLevel(level *leveldata.Level) error {
	return w.round.LoadLevel(level)
}

// SelectBird picks up the bird waiting at the slingshot.
func (w *World) SelectBird() bool {
	bird, ok := w.queue.Current()
	if !ok {
		return false
	}
	return w.birds.Select(bird)
}

// DragBird pulls the selected bird toward target using the last tick length.
func (w *World) DragBird(target cp.Vector) bool {
	bird, ok := w.queue.Current()
	if !ok {
		return false
	}
	return w.birds.Drag(bird, target, w.dt)
}

// BirdReady reports whether the head bird is waiting at the slingshot and
// can be picked up.
func (w *World) BirdReady() bool {
	return w.queue.Ready()
}

func (w *World) LaunchBird() bool {
	bird, ok := w.queue.Current()
	if !ok {
		return false
	}
	return w.birds.Launch(bird, w.dt)
}

// BirdAt returns the bird whose body contains p.
func (w *World) BirdAt(p cp.Vector) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Bird.Each(w.ecs.World, func(e *donburi.Entry) {
		if found != nil {
			return
		}
		body := components.Body.Get(e)
		if body.Body != nil && body.Position().Distance(p) <= components.Bird.Get(e).Radius {
			found = e
		}
	})
	return found, found != nil
}

func (w *World) Retry() bool {
	return w.round.Retry()
}

func (w *World) NextLevel() bool {
	return w.round.NextLevel()
}

func (w *World) IsLevelCleared() bool {
	return w.round.IsLevelCleared()
}

func (w *World) IsLevelFailed() bool {
	return w.round.IsLevelFailed()
}

func (w *World) IsRetryOffered() bool {
	return w.round.IsRetryOffered()
}

func (w *World) PigsRemaining() int {
	return w.round.PigsRemaining()
}

func (w *World) BirdsRemaining() int {
	return w.round.BirdsRemaining()
}

func (w *World) BlocksRemaining() int {
	return w.round.BlocksRemaining()
}

func (w *World) LevelStability() float64 {
	return w.round.LevelStability()
}

func (w *World) CurrentBird() (*donburi.Entry, bool) {
	return w.round.CurrentBird()
}

// CameraWidth is the framed view width in world units.
func (w *World) CameraWidth() float64 {
	return components.Camera.Get(w.camera).Width
}

// Camera returns the framed view.
func (w *World) Camera() components.CameraData {
	return *components.Camera.Get(w.camera)
}

func (w *World) DragDistance() float64 {
	return w.birds.DragDistance()
}

// Ground is the arena floor, which also bounds the arena.
func (w *World) Ground() cp.BB {
	return w.ground
}

// LevelIndex is the position of the current level in the level list.
func (w *World) LevelIndex() int {
	return w.round.LevelIndex()
}
