package systems

import (
	"io"
	"testing"
	"time"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/timer"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = time.Second / 60

// recorder stands in for the round controller.
type recorder struct {
	queue *LaunchQueue
	pigs  []donburi.Entity
	birds []donburi.Entity
}

func (r *recorder) PigKilled(pig *donburi.Entry) {
	r.pigs = append(r.pigs, pig.Entity())
}

func (r *recorder) BirdRemoved(bird *donburi.Entry) {
	r.birds = append(r.birds, bird.Entity())
	r.queue.Remove(bird)
}

type testEnv struct {
	ecs       *ecs.ECS
	space     *physics.Space
	triggers  *components.TriggerSpaceData
	sched     *timer.Scheduler
	queue     *LaunchQueue
	trail     *TrajectoryEmitter
	birds     *BirdSystem
	events    *recorder
	settings  config.Settings
	slingshot *donburi.Entry
}

func testSettings() config.Settings {
	s := config.Current()
	s.Bird.IdleHops = false
	return s
}

func newTestEnv(t *testing.T, settings config.Settings) *testEnv {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	space := physics.NewSpace(physics.Options{
		Gravity:    cp.Vector{Y: settings.Physics.Gravity},
		Iterations: settings.Physics.Iterations,
	})
	factory.CreateGround(e, space, settings.Physics)
	triggers := components.TriggerSpace.Get(factory.CreateTriggerSpace(e, settings.Physics))

	sched := timer.NewScheduler()
	queue := NewLaunchQueue(space, sched)
	trail := NewTrajectoryEmitter(e, settings.Bird.TrajectoryVariants)
	logger := log.New(io.Discard)
	birds := NewBirdSystem(e, space, triggers, queue, sched, trail, settings, 1, logger)
	events := &recorder{queue: queue}
	birds.Events = events

	sling := factory.CreateSlingshot(e, triggers, cp.Vector{}, settings.Bird)
	queue.SetRestPoint(components.Slingshot.Get(sling).RestPoint)

	return &testEnv{
		ecs:       e,
		space:     space,
		triggers:  triggers,
		sched:     sched,
		queue:     queue,
		trail:     trail,
		birds:     birds,
		events:    events,
		settings:  settings,
		slingshot: sling,
	}
}

// addBirds queues n birds on the ground left of the slingshot.
func (env *testEnv) addBirds(n int) []*donburi.Entry {
	bc := env.settings.Bird
	ground := env.settings.Physics.Ground()
	out := make([]*donburi.Entry, 0, n)
	for i := 0; i < n; i++ {
		pos := cp.Vector{X: -1 - float64(i), Y: ground.T + bc.Radius}
		bird := factory.CreateBird(env.ecs, env.space, env.triggers, i, pos, bc)
		env.queue.Enqueue(bird)
		out = append(out, bird)
	}
	return out
}

// tick runs one frame in world order without the round controller.
func (env *testEnv) tick() {
	env.sched.Advance(frame)
	env.queue.Update(env.ecs)
	env.birds.Update(env.ecs)
	env.space.Step(frame)
	UpdateObjects(env.ecs)
}

// aim selects the head and pulls it to offset from its anchor.
func (env *testEnv) aim(t *testing.T, bird *donburi.Entry, offset cp.Vector) {
	t.Helper()
	if !env.birds.Select(bird) {
		t.Fatal("select failed")
	}
	anchor := components.Bird.Get(bird).Anchor
	for i := 0; i < 300; i++ {
		env.birds.Drag(bird, anchor.Add(offset), frame)
	}
}
