package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Category classifies bodies for collision filtering and contact reporting.
type Category uint

const (
	CategoryGround Category = 1 << iota
	CategoryPlatform
	CategoryBird
	CategoryPig
	CategoryBlock
)

const allCategories = CategoryGround | CategoryPlatform | CategoryBird | CategoryPig | CategoryBlock

func (c Category) String() string {
	switch c {
	case CategoryGround:
		return "ground"
	case CategoryPlatform:
		return "platform"
	case CategoryBird:
		return "bird"
	case CategoryPig:
		return "pig"
	case CategoryBlock:
		return "block"
	}
	return "mixed"
}

// Material holds the surface response of a body's shapes.
type Material struct {
	Density    float64
	Friction   float64
	Elasticity float64
}

// Body is a rigid body in a Space. Data carries the owning entity, the same
// way resolv objects carry theirs.
type Body struct {
	Data any

	body         *cp.Body
	shapes       []*cp.Shape
	category     Category
	gravityScale float64
	space        *Space
}

func newBody(s *Space, cb *cp.Body, category Category) *Body {
	b := &Body{
		body:         cb,
		category:     category,
		gravityScale: 1,
		space:        s,
	}
	cb.UserData = b
	if cb.GetType() == cp.BODY_DYNAMIC {
		cb.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
		})
	}
	return b
}

func (b *Body) attach(shape *cp.Shape, m Material) {
	shape.UserData = b
	shape.SetFriction(m.Friction)
	shape.SetElasticity(m.Elasticity)
	shape.SetCollisionType(cp.CollisionType(b.category))
	shape.SetFilter(b.space.filter(b.category))
	b.shapes = append(b.shapes, shape)
}

func (b *Body) Category() Category {
	return b.category
}

func (b *Body) Static() bool {
	return b.body.GetType() != cp.BODY_DYNAMIC
}

// Removed reports whether the body has been taken out of its space.
func (b *Body) Removed() bool {
	return b.space == nil
}

func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

// SetPosition teleports the body. Static bodies are placed once when they
// are created and must not be moved afterwards.
func (b *Body) SetPosition(p cp.Vector) {
	b.body.SetPosition(p)
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *Body) SetVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
}

// Speed is the magnitude of the body's linear velocity.
func (b *Body) Speed() float64 {
	return b.body.Velocity().Length()
}

// Angle is the body rotation in radians, counter-clockwise.
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

func (b *Body) Mass() float64 {
	if b.Static() {
		return math.Inf(1)
	}
	return b.body.Mass()
}

func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

// SetGravityScale multiplies the space gravity for this body only.
func (b *Body) SetGravityScale(scale float64) {
	b.gravityScale = scale
	b.body.Activate()
}

// ApplyImpulse pushes the body through its center of gravity.
func (b *Body) ApplyImpulse(impulse cp.Vector) {
	if b.Static() {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(impulse, b.body.Position())
}

// BB returns the bounds of all shapes at the current transform.
func (b *Body) BB() cp.BB {
	if len(b.shapes) == 0 {
		p := b.body.Position()
		return cp.BB{L: p.X, B: p.Y, R: p.X, T: p.Y}
	}
	bb := b.shapes[0].CacheBB()
	for _, s := range b.shapes[1:] {
		bb = bb.Merge(s.CacheBB())
	}
	return bb
}

// ShapeBBs returns the bounds of each shape. Platforms use it to report
// their individual cells.
func (b *Body) ShapeBBs() []cp.BB {
	out := make([]cp.BB, 0, len(b.shapes))
	for _, s := range b.shapes {
		out = append(out, s.CacheBB())
	}
	return out
}

// ShapeCount is the number of collision shapes on the body.
func (b *Body) ShapeCount() int {
	return len(b.shapes)
}
