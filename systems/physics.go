package systems

import (
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi/ecs"
)

// PhysicsSystem steps the rigid body simulation by the tick length.
type PhysicsSystem struct {
	space *physics.Space
	clock Clock
}

func NewPhysicsSystem(space *physics.Space, clock Clock) *PhysicsSystem {
	return &PhysicsSystem{space: space, clock: clock}
}

func (p *PhysicsSystem) Update(_ *ecs.ECS) {
	p.space.Step(p.clock.Delta())
}
