package systems

import (
	"fmt"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/timer"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RoundEvents is how the rest of the game reports losses to the round.
type RoundEvents interface {
	PigKilled(pig *donburi.Entry)
	BirdRemoved(bird *donburi.Entry)
}

// OutcomeListener is told about committed outcomes. It is never called in
// simulation mode.
type OutcomeListener interface {
	LevelCleared()
	LevelFailed(canRetry bool)
	ExitToMenu()
}

// RoundController populates levels and decides when a round is won or
// lost. Outcomes only commit once the arena has settled.
type RoundController struct {
	ecs       *ecs.ECS
	space     *physics.Space
	triggers  *components.TriggerSpaceData
	sched     *timer.Scheduler
	queue     *LaunchQueue
	targets   *TargetRegistry
	stability *StabilityMonitor
	framer    *CameraFramer
	trail     *TrajectoryEmitter
	birds     *BirdSystem

	round  *donburi.Entry
	level  *donburi.Entry
	camera *donburi.Entry

	settings config.Settings
	ground   cp.BB

	Listener OutcomeListener
	log      *log.Logger
}

// RoundParts are the collaborators a round controller drives.
type RoundParts struct {
	Space     *physics.Space
	Triggers  *components.TriggerSpaceData
	Scheduler *timer.Scheduler
	Queue     *LaunchQueue
	Targets   *TargetRegistry
	Stability *StabilityMonitor
	Framer    *CameraFramer
	Trail     *TrajectoryEmitter
	Birds     *BirdSystem
}

// NewRoundController wires the controller to the round, level and camera
// entities already in the world and registers it for bird events.
func NewRoundController(e *ecs.ECS, parts RoundParts, settings config.Settings, logger *log.Logger) *RoundController {
	r := &RoundController{
		ecs:       e,
		space:     parts.Space,
		triggers:  parts.Triggers,
		sched:     parts.Scheduler,
		queue:     parts.Queue,
		targets:   parts.Targets,
		stability: parts.Stability,
		framer:    parts.Framer,
		trail:     parts.Trail,
		birds:     parts.Birds,
		settings:  settings,
		ground:    settings.Physics.Ground(),
		log:       logger,
	}
	r.round, _ = components.Round.First(e.World)
	r.level, _ = components.Level.First(e.World)
	r.camera, _ = components.Camera.First(e.World)
	if r.birds != nil {
		r.birds.Events = r
	}
	return r
}

// Round returns the live round state.
func (r *RoundController) Round() *components.RoundData {
	return components.Round.Get(r.round)
}

func (r *RoundController) State() config.RoundStateID {
	return r.Round().State
}

func (r *RoundController) levels() *components.LevelData {
	return components.Level.Get(r.level)
}

// Start loads the configured level.
func (r *RoundController) Start() error {
	return r.Load(r.levels().LevelIndex)
}

// Load replaces the arena with the level at index. Moving to another level
// resets the attempt counter.
func (r *RoundController) Load(index int) error {
	ld := r.levels()
	if index < 0 || index >= len(ld.Levels) {
		return fmt.Errorf("%w: no level at index %d", leveldata.ErrMissingLevelData, index)
	}
	level := &ld.Levels[index]
	if err := level.Validate(r.settings); err != nil {
		r.log.Error("cannot load level", "err", err)
		return err
	}
	if index != ld.LevelIndex {
		r.Round().TimesTried = 0
	}
	ld.LevelIndex = index
	return r.LoadLevel(level)
}

// LoadLevel validates level and rebuilds the arena from it. An invalid
// level leaves the current arena untouched.
func (r *RoundController) LoadLevel(level *leveldata.Level) error {
	if err := level.Validate(r.settings); err != nil {
		r.log.Error("cannot load level", "err", err)
		return err
	}

	rd := r.Round()
	rd.State = config.RoundLoading
	r.clearArena()

	blocks := r.populate(level)

	rd.PigsAtStart = r.targets.Count()
	rd.BirdsAtStart = r.queue.Count()
	rd.BlocksAtStart = blocks
	rd.Cleared = false
	rd.TimesToGiveUp = r.settings.Round.TimesToGiveUp
	rd.ResetDelay = r.settings.Round.ResetDelay

	r.framer.Frame(r.ecs.World, r.camera, r.ground)
	rd.State = config.RoundActive

	r.log.Info("level loaded",
		"level", level.Name,
		"pigs", rd.PigsAtStart,
		"birds", rd.BirdsAtStart,
		"blocks", rd.BlocksAtStart,
		"try", rd.TimesTried+1,
	)
	return nil
}

// clearArena removes everything a level spawned along with all pending
// timers and queued contacts.
func (r *RoundController) clearArena() {
	r.sched.Clear()
	r.trail.ClearAll()
	r.queue.Clear()
	r.targets.Clear()

	var doomed []*donburi.Entry
	collect := func(e *donburi.Entry) {
		doomed = append(doomed, e)
	}
	tags.Bird.Each(r.ecs.World, collect)
	tags.Pig.Each(r.ecs.World, collect)
	tags.Block.Each(r.ecs.World, collect)
	tags.Platform.Each(r.ecs.World, collect)
	tags.Slingshot.Each(r.ecs.World, collect)
	for _, e := range doomed {
		DestroyBody(r.ecs, r.space, e)
	}

	r.space.Contacts()
}

// populate spawns the level and returns its block count. Every platform
// cell counts as a block.
func (r *RoundController) populate(level *leveldata.Level) int {
	sling := factory.CreateSlingshot(r.ecs, r.triggers, cp.Vector{X: level.Slingshot.X, Y: level.Slingshot.Y}, r.settings.Bird)
	r.queue.SetRestPoint(components.Slingshot.Get(sling).RestPoint)

	for _, placed := range level.Pigs {
		pig := factory.CreatePig(r.ecs, r.space, placed, r.settings.Pigs[placed.Type])
		r.targets.Add(pig)
	}

	blocks := 0
	for _, placed := range level.Blocks {
		material := r.settings.Materials[leveldata.NormalizeMaterial(placed.Material)]
		factory.CreateBlock(r.ecs, r.space, placed, r.settings.Blocks[placed.Type], material)
		blocks++
	}
	for _, placed := range level.Platforms {
		factory.CreatePlatform(r.ecs, r.space, placed, r.settings.Platform)
		blocks += placed.Width * placed.Height
	}

	bc := r.settings.Bird
	start := cp.Vector{X: level.Slingshot.X - bc.QueueOffset, Y: r.ground.T + bc.Radius}
	for i := 0; i < level.BirdCount; i++ {
		pos := gamemath.QueueSlot(i, bc.RowSize, start, bc.Radius, bc.QueueSpacing, bc.QueueJitter)
		bird := factory.CreateBird(r.ecs, r.space, r.triggers, i, pos, bc)
		r.queue.Enqueue(bird)
		r.birds.ScheduleIdleHop(bird)
	}
	return blocks
}

// PigKilled removes a pig from play. Killing the last pig starts clearing
// the level, even while a failure is settling.
func (r *RoundController) PigKilled(pig *donburi.Entry) {
	if !r.targets.Remove(pig) {
		return
	}
	DestroyBody(r.ecs, r.space, pig)

	rd := r.Round()
	r.log.Info("pig killed", "remaining", r.targets.Count())
	if r.targets.Count() > 0 || rd.Cleared {
		return
	}
	if rd.State != config.RoundActive && rd.State != config.RoundFailing {
		return
	}
	rd.Cleared = true
	rd.State = config.RoundClearing
	r.poll()
}

// BirdRemoved drops a dead bird from the queue. Running out of birds with
// pigs left starts failing the level.
func (r *RoundController) BirdRemoved(bird *donburi.Entry) {
	r.queue.Remove(bird)

	rd := r.Round()
	if r.queue.Count() > 0 || r.targets.Count() == 0 || rd.Cleared {
		return
	}
	if rd.State != config.RoundActive {
		return
	}
	r.log.Info("out of birds", "pigs", r.targets.Count())
	rd.State = config.RoundFailing
	r.poll()
}

// poll waits ResetDelay, then checks stability every PollInterval until the
// arena settles and the pending outcome can commit.
func (r *RoundController) poll() {
	key := timer.Key{Owner: r.round.Entity(), Purpose: timer.StabilityPoll}
	var check func()
	check = func() {
		if !r.stability.IsStable() {
			r.log.Debug("waiting for the arena to settle", "stability", r.stability.Stability())
			r.sched.After(key, r.settings.Round.PollInterval, check)
			return
		}
		r.commit()
	}
	r.sched.After(key, r.Round().ResetDelay, check)
}

func (r *RoundController) commit() {
	rd := r.Round()
	switch rd.State {
	case config.RoundClearing:
		rd.State = config.RoundCleared
		r.log.Info("level cleared", "try", rd.TimesTried+1)
		if r.notify() {
			r.Listener.LevelCleared()
		}
	case config.RoundFailing:
		canRetry := rd.TimesTried < rd.TimesToGiveUp-1
		if canRetry {
			rd.State = config.RoundRetryOffered
		} else {
			rd.State = config.RoundFailed
		}
		r.log.Info("level failed", "try", rd.TimesTried+1, "retry", canRetry)
		if r.notify() {
			r.Listener.LevelFailed(canRetry)
		}
	}
}

func (r *RoundController) notify() bool {
	return r.Listener != nil && !r.settings.Round.Simulation
}

// Retry reloads the current level once an outcome is showing. Taking an
// offered retry counts as another try; starting over after the level failed
// for good resets the count.
func (r *RoundController) Retry() bool {
	rd := r.Round()
	switch rd.State {
	case config.RoundCleared:
	case config.RoundRetryOffered:
		rd.TimesTried++
	case config.RoundFailed:
		rd.TimesTried = 0
	default:
		return false
	}
	level := r.levels().Current()
	if level == nil {
		return false
	}
	if err := r.LoadLevel(level); err != nil {
		return false
	}
	return true
}

// NextLevel moves on from a cleared level. After the last level the round
// finishes and the listener is sent back to the menu.
func (r *RoundController) NextLevel() bool {
	rd := r.Round()
	if rd.State != config.RoundCleared {
		return false
	}
	ld := r.levels()
	next := ld.LevelIndex + 1
	if next >= len(ld.Levels) {
		r.clearArena()
		rd.State = config.RoundFinished
		r.log.Info("all levels finished", "levels", len(ld.Levels))
		if r.notify() {
			r.Listener.ExitToMenu()
		}
		return true
	}
	return r.Load(next) == nil
}

func (r *RoundController) IsLevelCleared() bool {
	return r.State() == config.RoundCleared
}

func (r *RoundController) IsLevelFailed() bool {
	return r.State() == config.RoundFailed
}

func (r *RoundController) IsRetryOffered() bool {
	return r.State() == config.RoundRetryOffered
}

func (r *RoundController) PigsRemaining() int {
	return r.targets.Count()
}

func (r *RoundController) BirdsRemaining() int {
	return r.queue.Count()
}

// BlocksRemaining counts live blocks plus platform cells.
func (r *RoundController) BlocksRemaining() int {
	n := 0
	tags.Block.Each(r.ecs.World, func(*donburi.Entry) {
		n++
	})
	components.Platform.Each(r.ecs.World, func(e *donburi.Entry) {
		p := components.Platform.Get(e)
		n += p.Width * p.Height
	})
	return n
}

func (r *RoundController) LevelStability() float64 {
	return r.stability.Stability()
}

func (r *RoundController) CurrentBird() (*donburi.Entry, bool) {
	return r.queue.Current()
}

func (r *RoundController) LevelIndex() int {
	return r.levels().LevelIndex
}
