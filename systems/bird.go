package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/timer"
	"github.com/automoto/slingshot/tags"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// idleHopBase is added to every random idle hop delay.
const idleHopBase = time.Second

// BirdSystem drives birds through select, drag, launch, collision and
// death.
type BirdSystem struct {
	ecs      *ecs.ECS
	space    *physics.Space
	triggers *components.TriggerSpaceData
	queue    *LaunchQueue
	sched    *timer.Scheduler
	trail    *TrajectoryEmitter

	// Events receives bird removals. The round controller sets it.
	Events RoundEvents

	cfg      config.BirdConfig
	ground   cp.BB
	idleHops bool
	rng      *rand.Rand
	log      *log.Logger
}

func NewBirdSystem(
	e *ecs.ECS,
	space *physics.Space,
	triggers *components.TriggerSpaceData,
	queue *LaunchQueue,
	sched *timer.Scheduler,
	trail *TrajectoryEmitter,
	settings config.Settings,
	seed int64,
	logger *log.Logger,
) *BirdSystem {
	return &BirdSystem{
		ecs:      e,
		space:    space,
		triggers: triggers,
		queue:    queue,
		sched:    sched,
		trail:    trail,
		cfg:      settings.Bird,
		ground:   settings.Physics.Ground(),
		idleHops: settings.Bird.IdleHops && !settings.Round.Simulation,
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		log:      logger,
	}
}

func (s *BirdSystem) isBird(bird *donburi.Entry) bool {
	return bird != nil && bird.Valid() && bird.HasComponent(components.Bird)
}

// Select picks up the bird waiting at the slingshot. Anything else is
// ignored.
func (s *BirdSystem) Select(bird *donburi.Entry) bool {
	if !s.isBird(bird) || !s.queue.IsHead(bird) {
		return false
	}
	bd := components.Bird.Get(bird)
	if bd.State != config.BirdIdle {
		return false
	}
	body := components.Body.Get(bird)

	bd.Anchor = body.Position()
	bd.State = config.BirdSelected
	bd.JumpToSlingshot = false
	bd.Move = nil
	body.SetVelocity(cp.Vector{})
	s.sched.Cancel(timer.Key{Owner: bird.Entity(), Purpose: timer.IdleHop})

	if sling, ok := tags.Slingshot.First(s.ecs.World); ok {
		base := &components.Slingshot.Get(sling).Base
		base.Active = true
		base.Position = bd.Anchor
		base.Angle = 0
	}

	s.log.Debug("bird selected", "index", bd.Index)
	return true
}

// Drag pulls a selected bird toward target. The target is clamped to the
// drag circle and approached with exponential smoothing.
func (s *BirdSystem) Drag(bird *donburi.Entry, target cp.Vector, dt time.Duration) bool {
	if !s.isBird(bird) {
		return false
	}
	bd := components.Bird.Get(bird)
	if bd.State != config.BirdSelected {
		return false
	}
	body := components.Body.Get(bird)

	clamped := gamemath.ClampToCircle(bd.Anchor, target, bd.DragRadius)
	pos := gamemath.DragStep(body.Position(), clamped, bd.DragSpeed, dt)
	body.SetPosition(pos)
	body.SetVelocity(cp.Vector{})

	s.followBase(bd, pos)
	return true
}

// Launch releases a selected bird. The pull away from the anchor becomes
// the launch velocity; dt only matters for frame scaled launches.
func (s *BirdSystem) Launch(bird *donburi.Entry, dt time.Duration) bool {
	if !s.isBird(bird) {
		return false
	}
	bd := components.Bird.Get(bird)
	if bd.State != config.BirdSelected {
		return false
	}
	body := components.Body.Get(bird)

	scale := s.cfg.LaunchScale
	if s.cfg.FrameScaledLaunch {
		scale = dt.Seconds()
	}
	velocity := gamemath.LaunchVelocity(bd.Anchor, body.Position(), bd.LaunchForce, scale)

	bd.State = config.BirdFlying
	bd.OutOfSlingshot = false
	body.SetGravityScale(bd.LaunchGravity)
	body.SetVelocity(velocity)

	period := gamemath.TrajectoryPeriod(bd.TrajectoryFrequency, velocity.X, s.cfg.MinTrajectoryPeriod, s.cfg.MaxTrajectoryPeriod)
	s.sched.Every(timer.Key{Owner: bird.Entity(), Purpose: timer.Trajectory}, s.cfg.TrajectoryStartDelay, period, func() {
		if bird.Valid() {
			s.trail.Emit(bird)
		}
	})

	s.log.Info("bird launched", "index", bd.Index, "vx", velocity.X, "vy", velocity.Y, "trail", period)
	return true
}

// Collide handles the first contact of a flying bird. Later contacts are
// ignored.
func (s *BirdSystem) Collide(bird *donburi.Entry) bool {
	if !s.isBird(bird) {
		return false
	}
	bd := components.Bird.Get(bird)
	if bd.State != config.BirdFlying {
		return false
	}
	owner := bird.Entity()

	s.sched.Cancel(timer.Key{Owner: owner, Purpose: timer.Trajectory})
	s.trail.RemoveLast(owner)
	s.trail.ClearExcept(owner)

	bd.State = config.BirdDying
	s.sched.After(timer.Key{Owner: owner, Purpose: timer.Death}, bd.DeathDelay, func() {
		s.Kill(bird)
	})

	s.log.Debug("bird hit", "index", bd.Index)
	return true
}

// Kill removes the bird from the world and reports it to the round. It runs
// at most once per bird.
func (s *BirdSystem) Kill(bird *donburi.Entry) {
	if !s.isBird(bird) {
		return
	}
	bd := components.Bird.Get(bird)
	if bd.State == config.BirdDead {
		return
	}
	bd.State = config.BirdDead
	s.sched.CancelOwner(bird.Entity())

	if obj := components.Object.Get(bird); obj.Object != nil {
		s.triggers.Space.Remove(obj.Object)
	}
	s.space.Remove(components.Body.Get(bird).Body)

	s.log.Debug("bird removed", "index", bd.Index)
	if s.Events != nil {
		s.Events.BirdRemoved(bird)
	}
	if bird.Valid() {
		s.ecs.World.Remove(bird.Entity())
	}
}

// ScheduleIdleHop makes a waiting bird hop now and then. The head is
// weightless at the slingshot, so it never hops.
func (s *BirdSystem) ScheduleIdleHop(bird *donburi.Entry) {
	if !s.idleHops || !s.isBird(bird) {
		return
	}
	delay := idleHopBase
	if s.cfg.MaxTimeToJump > 0 {
		delay += time.Duration(s.rng.Int64N(int64(s.cfg.MaxTimeToJump)))
	}
	s.sched.After(timer.Key{Owner: bird.Entity(), Purpose: timer.IdleHop}, delay, func() {
		if !s.isBird(bird) {
			return
		}
		bd := components.Bird.Get(bird)
		if bd.State != config.BirdIdle || bd.JumpToSlingshot {
			return
		}
		body := components.Body.Get(bird)
		if body.GravityScale() > 0 {
			body.ApplyImpulse(cp.Vector{Y: s.cfg.JumpImpulse})
		}
		s.ScheduleIdleHop(bird)
	})
}

// Update tracks flying birds through the slingshot zone and removes birds
// that left the arena.
func (s *BirdSystem) Update(e *ecs.ECS) {
	var lost []*donburi.Entry
	sling, hasSling := tags.Slingshot.First(e.World)

	tags.Bird.Each(e.World, func(bird *donburi.Entry) {
		bd := components.Bird.Get(bird)
		if bd.State == config.BirdDead {
			return
		}
		body := components.Body.Get(bird)
		if body.Body == nil || body.Removed() {
			return
		}
		if gamemath.OutOfWorld(body.BB(), s.ground) {
			lost = append(lost, bird)
			return
		}
		if bd.State != config.BirdFlying || bd.OutOfSlingshot || !hasSling {
			return
		}

		s.followBase(bd, body.Position())

		obj := components.Object.Get(bird)
		s.triggers.Place(obj.Object, body.BB())
		if inZone(obj.Object) {
			bd.OutOfSlingshot = true
			base := &components.Slingshot.Get(sling).Base
			base.Position = bd.Anchor
			base.Active = false
		}
	})

	for _, bird := range lost {
		s.log.Info("bird left the arena", "index", components.Bird.Get(bird).Index)
		s.Kill(bird)
	}
}

// followBase keeps the sling base behind the bird along the anchor line.
func (s *BirdSystem) followBase(bd *components.BirdData, pos cp.Vector) {
	sling, ok := tags.Slingshot.First(s.ecs.World)
	if !ok {
		return
	}
	base := &components.Slingshot.Get(sling).Base
	base.Position, base.Angle = gamemath.SlingBase(bd.Anchor, pos, base.Position, bd.Radius)
}

// DragDistance is how far the selected bird is pulled from its anchor, or
// zero when no bird is being aimed.
func (s *BirdSystem) DragDistance() float64 {
	head, ok := s.queue.Current()
	if !ok || !head.Valid() {
		return 0
	}
	bd := components.Bird.Get(head)
	if bd.State != config.BirdSelected {
		return 0
	}
	return components.Body.Get(head).Position().Distance(bd.Anchor)
}

// inZone reports whether obj overlaps the slingshot trigger. Resolv only
// reports shared cells, so the rectangles are compared as well.
func inZone(obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvSlingshotZone)
	if check == nil {
		return false
	}
	for _, zone := range check.ObjectsByTags(tags.ResolvSlingshotZone) {
		if obj.X < zone.X+zone.W && zone.X < obj.X+obj.W &&
			obj.Y < zone.Y+zone.H && zone.Y < obj.Y+obj.H {
			return true
		}
	}
	return false
}
