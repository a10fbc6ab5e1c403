package systems

import (
	"time"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Clock reports the length of the current tick.
type Clock interface {
	Delta() time.Duration
}

// LaunchQueue holds the birds waiting to be launched. The head is moved to
// the slingshot rest point and held there, weightless, until it is picked
// up.
type LaunchQueue struct {
	space *physics.Space
	clock Clock
	birds []*donburi.Entry
	rest  cp.Vector
}

func NewLaunchQueue(space *physics.Space, clock Clock) *LaunchQueue {
	return &LaunchQueue{
		space: space,
		clock: clock,
	}
}

// SetRestPoint moves the point the head travels to.
func (q *LaunchQueue) SetRestPoint(p cp.Vector) {
	q.rest = p
}

func (q *LaunchQueue) RestPoint() cp.Vector {
	return q.rest
}

func (q *LaunchQueue) Enqueue(bird *donburi.Entry) {
	q.birds = append(q.birds, bird)
	if len(q.birds) == 1 {
		q.promote(bird)
	}
}

// Current returns the head of the queue. The second result is false when
// no birds are left.
func (q *LaunchQueue) Current() (*donburi.Entry, bool) {
	if len(q.birds) == 0 {
		return nil, false
	}
	return q.birds[0], true
}

// IsHead reports whether bird is at the front of the queue.
func (q *LaunchQueue) IsHead(bird *donburi.Entry) bool {
	head, ok := q.Current()
	return ok && head.Entity() == bird.Entity()
}

// Advance pops the head and promotes the next bird. It returns the popped
// bird, or nil if the queue was empty.
func (q *LaunchQueue) Advance() *donburi.Entry {
	if len(q.birds) == 0 {
		return nil
	}
	head := q.birds[0]
	q.birds[0] = nil
	q.birds = q.birds[1:]
	if next, ok := q.Current(); ok {
		q.promote(next)
	}
	return head
}

// Remove drops bird wherever it is in the queue. Removing the head promotes
// the next bird.
func (q *LaunchQueue) Remove(bird *donburi.Entry) bool {
	for i, b := range q.birds {
		if b.Entity() != bird.Entity() {
			continue
		}
		if i == 0 {
			q.Advance()
			return true
		}
		q.birds = append(q.birds[:i], q.birds[i+1:]...)
		return true
	}
	return false
}

// restTolerance is how close the head must be to the rest point to count
// as waiting there.
const restTolerance = 1e-3

// Ready reports whether the head has finished moving and is waiting at the
// rest point. Selecting earlier anchors the drag wherever the bird happens
// to be.
func (q *LaunchQueue) Ready() bool {
	head, ok := q.Current()
	if !ok || !head.Valid() {
		return false
	}
	bd := components.Bird.Get(head)
	if bd.State != config.BirdIdle || bd.Move != nil {
		return false
	}
	return components.Body.Get(head).Position().Distance(q.rest) <= restTolerance
}

func (q *LaunchQueue) Count() int {
	return len(q.birds)
}

// Clear forgets every bird without touching the entities.
func (q *LaunchQueue) Clear() {
	q.birds = nil
}

// Each calls fn for every queued bird, head first.
func (q *LaunchQueue) Each(fn func(*donburi.Entry)) {
	for _, b := range q.birds {
		fn(b)
	}
}

func (q *LaunchQueue) promote(bird *donburi.Entry) {
	if !bird.Valid() {
		return
	}
	bd := components.Bird.Get(bird)
	body := components.Body.Get(bird)

	body.SetGravityScale(0)
	body.SetVelocity(cp.Vector{})

	bd.JumpToSlingshot = true
	bd.MoveFrom = body.Position()
	distance := bd.MoveFrom.Distance(q.rest)
	if bd.DragSpeed <= 0 || distance == 0 {
		bd.Move = nil
		return
	}
	bd.Move = gween.New(0, 1, float32(distance/bd.DragSpeed), ease.Linear)
}

// Update moves the head toward the rest point and turns bird collisions
// with the structure on only while the head is in the air.
func (q *LaunchQueue) Update(e *ecs.ECS) {
	head, ok := q.Current()
	inFlight := false
	if ok && head.Valid() {
		bd := components.Bird.Get(head)
		if bd.JumpToSlingshot && bd.State == config.BirdIdle {
			q.moveHead(bd, components.Body.Get(head))
		}
		inFlight = bd.State == config.BirdFlying || bd.State == config.BirdDying
	}
	q.space.SetCollision(physics.CategoryBird, physics.CategoryBlock, inFlight)
	q.space.SetCollision(physics.CategoryBird, physics.CategoryPig, inFlight)
}

func (q *LaunchQueue) moveHead(bd *components.BirdData, body *components.BodyData) {
	pos := q.rest
	if bd.Move != nil {
		t, done := bd.Move.Update(float32(q.clock.Delta().Seconds()))
		if done {
			bd.Move = nil
		} else {
			pos = bd.MoveFrom.Lerp(q.rest, float64(t))
		}
	}
	body.SetPosition(pos)
	body.SetVelocity(cp.Vector{})
}
