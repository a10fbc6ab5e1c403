// Package physics wraps the Chipmunk2D port in the small contract the game
// needs: bodies with a per-body gravity scale, category based collision
// toggling, and a queue of first-contact events drained once per step.
package physics

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// Contact is reported once when two shapes start touching. Self is the body
// whose category registered for contacts; Other is what it touched.
type Contact struct {
	Self  *Body
	Other *Body
	// Speed is the relative speed of the two bodies when contact began.
	Speed float64
}

// Options configure a new Space.
type Options struct {
	Gravity            cp.Vector
	Iterations         uint
	SleepTimeThreshold float64
}

// Space owns the simulation and every body in it.
type Space struct {
	space    *cp.Space
	bodies   map[*Body]struct{}
	masks    map[Category]Category
	contacts []Contact
}

// Reported categories get a begin handler that queues contacts.
var reported = []Category{CategoryBird, CategoryPig, CategoryBlock}

func NewSpace(opts Options) *Space {
	cs := cp.NewSpace()
	cs.SetGravity(opts.Gravity)
	if opts.Iterations > 0 {
		cs.Iterations = opts.Iterations
	}
	if opts.SleepTimeThreshold > 0 {
		cs.SleepTimeThreshold = opts.SleepTimeThreshold
	}

	s := &Space{
		space:  cs,
		bodies: make(map[*Body]struct{}),
		masks:  make(map[Category]Category),
	}
	for _, c := range []Category{CategoryGround, CategoryPlatform, CategoryBird, CategoryPig, CategoryBlock} {
		s.masks[c] = allCategories
	}
	for _, c := range reported {
		handler := cs.NewWildcardCollisionHandler(cp.CollisionType(c))
		handler.BeginFunc = s.begin
	}
	return s
}

func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	self, ok := a.UserData.(*Body)
	if !ok {
		return true
	}
	other, ok := b.UserData.(*Body)
	if !ok {
		return true
	}
	s.contacts = append(s.contacts, Contact{
		Self:  self,
		Other: other,
		Speed: self.Velocity().Sub(other.Velocity()).Length(),
	})
	return true
}

func (s *Space) filter(c Category) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(c), uint(s.masks[c]))
}

// SetGravity changes the gravity applied to every body.
func (s *Space) SetGravity(g cp.Vector) {
	s.space.SetGravity(g)
}

func (s *Space) Gravity() cp.Vector {
	return s.space.Gravity()
}

// AddCircle adds a dynamic circle centred at pos.
func (s *Space) AddCircle(pos cp.Vector, radius float64, m Material, c Category) *Body {
	mass := massFor(m.Density, math.Pi*radius*radius)
	cb := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	cb.SetPosition(pos)
	b := s.add(cb, c)
	b.attach(s.space.AddShape(cp.NewCircle(cb, radius, cp.Vector{})), m)
	return b
}

// AddBox adds a dynamic w×h box centred at pos, rotated by angle radians.
func (s *Space) AddBox(pos cp.Vector, w, h, angle float64, m Material, c Category) *Body {
	mass := massFor(m.Density, w*h)
	cb := cp.NewBody(mass, cp.MomentForBox(mass, w, h))
	cb.SetPosition(pos)
	cb.SetAngle(angle)
	b := s.add(cb, c)
	b.attach(s.space.AddShape(cp.NewBox(cb, w, h, 0)), m)
	return b
}

// AddPolygon adds a dynamic convex polygon. The vertices are re-centred on
// their centroid, which is then placed at pos.
func (s *Space) AddPolygon(pos cp.Vector, verts []cp.Vector, angle float64, m Material, c Category) *Body {
	n := len(verts)
	centroid := cp.CentroidForPoly(n, verts)
	local := make([]cp.Vector, n)
	for i, v := range verts {
		local[i] = v.Sub(centroid)
	}
	mass := massFor(m.Density, math.Abs(cp.AreaForPoly(n, local, 0)))
	cb := cp.NewBody(mass, cp.MomentForPoly(mass, n, local, cp.Vector{}, 0))
	cb.SetPosition(pos)
	cb.SetAngle(angle)
	b := s.add(cb, c)
	b.attach(s.space.AddShape(cp.NewPolyShape(cb, n, local, cp.NewTransformIdentity(), 0)), m)
	return b
}

// AddStatic adds one immovable body at pos, rotated by angle, carrying a box
// shape per cell. Cells are in body-local coordinates, so they all share the
// body's transform.
func (s *Space) AddStatic(pos cp.Vector, angle float64, cells []cp.BB, m Material, c Category) *Body {
	cb := cp.NewStaticBody()
	cb.SetPosition(pos)
	cb.SetAngle(angle)
	b := s.add(cb, c)
	for _, cell := range cells {
		b.attach(s.space.AddShape(cp.NewBox2(cb, cell, 0)), m)
	}
	return b
}

func (s *Space) add(cb *cp.Body, c Category) *Body {
	s.space.AddBody(cb)
	b := newBody(s, cb, c)
	s.bodies[b] = struct{}{}
	return b
}

func massFor(density, area float64) float64 {
	if density <= 0 {
		density = 1
	}
	return math.Max(density*area, 1e-3)
}

// Remove takes the body and its shapes out of the simulation. Removing a
// body twice is a no-op. It must not be called from inside Step.
func (s *Space) Remove(b *Body) {
	if b == nil || b.space != s {
		return
	}
	for _, shape := range b.shapes {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(b.body)
	delete(s.bodies, b)
	b.space = nil
}

// Step advances the simulation by dt. Contacts that begin during the step
// are queued for Contacts.
func (s *Space) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt.Seconds())
}

// Contacts returns the contacts queued since the last call and clears the
// queue. Contacts whose bodies were removed in the meantime are dropped.
func (s *Space) Contacts() []Contact {
	out := s.contacts[:0:0]
	for _, c := range s.contacts {
		if c.Self.Removed() || c.Other.Removed() {
			continue
		}
		out = append(out, c)
	}
	s.contacts = s.contacts[:0]
	return out
}

// SetCollision enables or disables collisions between two categories. Shape
// filters are only rewritten when the setting actually changes.
func (s *Space) SetCollision(a, b Category, enabled bool) {
	if s.Collides(a, b) == enabled {
		return
	}
	for _, c := range []Category{a, b} {
		other := b
		if c == b {
			other = a
		}
		if enabled {
			s.masks[c] |= other
		} else {
			s.masks[c] &^= other
		}
	}
	for body := range s.bodies {
		if body.category != a && body.category != b {
			continue
		}
		f := s.filter(body.category)
		for _, shape := range body.shapes {
			shape.SetFilter(f)
		}
	}
}

// Collides reports whether bodies of the two categories currently collide.
func (s *Space) Collides(a, b Category) bool {
	return s.masks[a]&b != 0 && s.masks[b]&a != 0
}

// EachBody calls fn for every body in the space.
func (s *Space) EachBody(fn func(*Body)) {
	for b := range s.bodies {
		fn(b)
	}
}

// Len is the number of bodies in the space.
func (s *Space) Len() int {
	return len(s.bodies)
}
