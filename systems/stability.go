package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// StabilityMonitor measures how much the structure is still moving. Only
// blocks and pigs inside the arena count; birds and anything that has left
// the arena never hold up a round.
type StabilityMonitor struct {
	world   donburi.World
	ground  cp.BB
	epsilon float64
}

func NewStabilityMonitor(world donburi.World, ground cp.BB, epsilon float64) *StabilityMonitor {
	return &StabilityMonitor{
		world:   world,
		ground:  ground,
		epsilon: epsilon,
	}
}

// Stability is the sum of the speeds of every dynamic block and pig still in
// the arena.
func (m *StabilityMonitor) Stability() float64 {
	sum := 0.0
	add := func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		if body.Body == nil || body.Static() || body.Removed() {
			return
		}
		if gamemath.OutOfWorld(body.BB(), m.ground) {
			return
		}
		sum += body.Speed()
	}
	tags.Block.Each(m.world, add)
	tags.Pig.Each(m.world, add)
	return sum
}

// IsStable reports whether the structure has settled. An epsilon of zero
// requires every body to be exactly at rest.
func (m *StabilityMonitor) IsStable() bool {
	return m.Stability() <= m.epsilon
}
