package physics

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

var (
	testMaterial = Material{Density: 1, Friction: 0.6, Elasticity: 0}
	frame        = time.Second / 60
)

func newTestSpace() (*Space, *Body) {
	s := NewSpace(Options{Gravity: cp.Vector{Y: -9.81}, Iterations: 10})
	ground := s.AddStatic(cp.Vector{}, 0, []cp.BB{{L: -10, B: -1, R: 10, T: 0}}, testMaterial, CategoryGround)
	return s, ground
}

func stepFor(s *Space, d time.Duration) []Contact {
	var all []Contact
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.Step(frame)
		all = append(all, s.Contacts()...)
	}
	return all
}

func TestFallingBodyReportsContact(t *testing.T) {
	s, ground := newTestSpace()
	bird := s.AddCircle(cp.Vector{Y: 2}, 0.25, testMaterial, CategoryBird)

	contacts := stepFor(s, 2*time.Second)
	if len(contacts) == 0 {
		t.Fatal("expected a contact with the ground")
	}
	c := contacts[0]
	if c.Self != bird || c.Other != ground {
		t.Fatalf("unexpected contact %+v", c)
	}
	if c.Speed < 4 {
		t.Fatalf("impact speed too low: %v", c.Speed)
	}
	if bird.Position().Y < 0 {
		t.Fatalf("bird fell through the ground: %v", bird.Position())
	}
}

func TestGroundContactsAreNotReported(t *testing.T) {
	s, _ := newTestSpace()
	s.AddCircle(cp.Vector{Y: 2}, 0.25, testMaterial, CategoryBird)
	for _, c := range stepFor(s, 2*time.Second) {
		if c.Self.Category() == CategoryGround {
			t.Fatal("ground should not register contacts")
		}
	}
}

func TestGravityScale(t *testing.T) {
	s, _ := newTestSpace()
	bird := s.AddCircle(cp.Vector{Y: 5}, 0.25, testMaterial, CategoryBird)
	bird.SetGravityScale(0)

	stepFor(s, time.Second)
	if got := bird.Position(); math.Abs(got.Y-5) > 1e-9 {
		t.Fatalf("weightless body moved to %v", got)
	}

	bird.SetGravityScale(1)
	stepFor(s, 100*time.Millisecond)
	if bird.Velocity().Y >= 0 {
		t.Fatalf("expected the body to fall, velocity %v", bird.Velocity())
	}
}

func TestSetCollision(t *testing.T) {
	s, _ := newTestSpace()
	block := s.AddBox(cp.Vector{Y: 0.5}, 1, 1, 0, testMaterial, CategoryBlock)
	bird := s.AddCircle(cp.Vector{Y: 3}, 0.25, testMaterial, CategoryBird)

	s.SetCollision(CategoryBird, CategoryBlock, false)
	if s.Collides(CategoryBird, CategoryBlock) {
		t.Fatal("collision should be disabled")
	}
	if !s.Collides(CategoryBird, CategoryGround) {
		t.Fatal("other pairs must be untouched")
	}

	for _, c := range stepFor(s, 2*time.Second) {
		if c.Self == bird && c.Other == block {
			t.Fatal("bird hit the block while collisions were off")
		}
	}
	// The bird passed through the block and rests on the ground.
	if bird.Position().Y > 0.5 {
		t.Fatalf("bird should have fallen through, at %v", bird.Position())
	}

	s.SetCollision(CategoryBird, CategoryBlock, true)
	if !s.Collides(CategoryBlock, CategoryBird) {
		t.Fatal("collision should be enabled again")
	}
}

func TestRemove(t *testing.T) {
	s, _ := newTestSpace()
	pig := s.AddCircle(cp.Vector{Y: 1}, 0.3, testMaterial, CategoryPig)
	if s.Len() != 2 {
		t.Fatalf("expected 2 bodies, got %d", s.Len())
	}
	s.Remove(pig)
	s.Remove(pig)
	if !pig.Removed() || s.Len() != 1 {
		t.Fatalf("remove failed: removed=%v len=%d", pig.Removed(), s.Len())
	}
	stepFor(s, 100*time.Millisecond)
}

func TestContactsDropRemovedBodies(t *testing.T) {
	s, _ := newTestSpace()
	pig := s.AddCircle(cp.Vector{Y: 0.35}, 0.3, testMaterial, CategoryPig)
	pig.SetVelocity(cp.Vector{Y: -3})
	s.Step(frame)
	s.Remove(pig)
	for _, c := range s.Contacts() {
		if c.Self == pig || c.Other == pig {
			t.Fatal("contact for a removed body")
		}
	}
}

func TestStaticCellsShareTransform(t *testing.T) {
	s, _ := newTestSpace()
	cells := []cp.BB{
		{L: 0, B: 0, R: 1, T: 1},
		{L: 1, B: 0, R: 2, T: 1},
	}
	platform := s.AddStatic(cp.Vector{X: 3, Y: 3}, math.Pi/2, cells, testMaterial, CategoryPlatform)
	if platform.ShapeCount() != 2 {
		t.Fatalf("expected 2 cells, got %d", platform.ShapeCount())
	}
	if !platform.Static() {
		t.Fatal("platform must be static")
	}
	// Rotated a quarter turn about the platform origin the row of cells
	// becomes a column above it.
	bb := platform.BB()
	if math.Abs(bb.L-2) > 1e-6 || math.Abs(bb.R-3) > 1e-6 || math.Abs(bb.B-3) > 1e-6 || math.Abs(bb.T-5) > 1e-6 {
		t.Fatalf("unexpected bounds %v", bb)
	}
}

func TestPolygonIsCentred(t *testing.T) {
	s, _ := newTestSpace()
	verts := []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tri := s.AddPolygon(cp.Vector{X: 4, Y: 4}, verts, 0, testMaterial, CategoryBlock)
	c := tri.BB().Center()
	// The centroid of the triangle sits a third of the way in; the bounds
	// centre is half way, so it is offset by 1/6 on each axis.
	if math.Abs(c.X-(4+1.0/6)) > 1e-6 || math.Abs(c.Y-(4+1.0/6)) > 1e-6 {
		t.Fatalf("unexpected centre %v", c)
	}
	if tri.Mass() <= 0 {
		t.Fatal("polygon needs mass")
	}
}
