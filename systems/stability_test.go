package systems

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/jakecoffman/cp"
)

func TestStabilitySumsSpeeds(t *testing.T) {
	env := newTestEnv(t, testSettings())
	s := env.settings
	ground := s.Physics.Ground()
	monitor := NewStabilityMonitor(env.ecs.World, ground, s.Round.StabilityEpsilon)

	if monitor.Stability() != 0 || !monitor.IsStable() {
		t.Fatal("an empty arena is stable")
	}

	pig := factory.CreatePig(env.ecs, env.space, leveldata.Object{Type: "BasicSmall", X: 2, Y: 2}, s.Pigs["BasicSmall"])
	block := factory.CreateBlock(env.ecs, env.space, leveldata.Object{Type: "RectSmall", X: 4, Y: 2}, s.Blocks["RectSmall"], s.Materials["wood"])
	components.Body.Get(pig).SetVelocity(cp.Vector{X: 3, Y: 4})
	components.Body.Get(block).SetVelocity(cp.Vector{Y: -1})

	// Birds and platforms never count.
	bird := env.addBirds(1)[0]
	components.Body.Get(bird).SetVelocity(cp.Vector{X: 100})
	factory.CreatePlatform(env.ecs, env.space, leveldata.Platform{X: 6, Y: 0, Width: 2, Height: 1}, s.Platform)

	if got := monitor.Stability(); math.Abs(got-6) > 1e-9 {
		t.Fatalf("stability = %v, want 6", got)
	}
	if monitor.IsStable() {
		t.Fatal("moving arena should not be stable")
	}
}

func TestStabilityIgnoresBodiesOutside(t *testing.T) {
	env := newTestEnv(t, testSettings())
	s := env.settings
	ground := s.Physics.Ground()
	monitor := NewStabilityMonitor(env.ecs.World, ground, 0)

	pig := factory.CreatePig(env.ecs, env.space, leveldata.Object{Type: "BasicSmall", X: ground.R + 10, Y: 0}, s.Pigs["BasicSmall"])
	components.Body.Get(pig).SetVelocity(cp.Vector{Y: -20})
	if got := monitor.Stability(); got != 0 {
		t.Fatalf("stability = %v, bodies outside the arena must not count", got)
	}
	if !monitor.IsStable() {
		t.Fatal("zero epsilon with nothing moving is stable")
	}

	inside := factory.CreatePig(env.ecs, env.space, leveldata.Object{Type: "BasicSmall", X: 0, Y: 5}, s.Pigs["BasicSmall"])
	components.Body.Get(inside).SetVelocity(cp.Vector{X: 1e-6})
	if monitor.IsStable() {
		t.Fatal("zero epsilon requires everything at rest")
	}
}
