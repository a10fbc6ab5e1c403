package scenes

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	groundColor   = color.RGBA{R: 96, G: 72, B: 48, A: 255}
	platformColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	pigColor      = color.RGBA{R: 90, G: 200, B: 60, A: 255}
	birdColor     = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	slingColor    = color.RGBA{R: 80, G: 40, B: 10, A: 255}
	triggerColor  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	markerColor   = color.RGBA{R: 255, G: 255, B: 255, A: 220}

	materialColors = map[string]color.RGBA{
		"wood":  {R: 200, G: 150, B: 80, A: 255},
		"stone": {R: 150, G: 150, B: 160, A: 255},
		"ice":   {R: 170, G: 220, B: 255, A: 255},
	}
)

// view maps world units (y up) onto the screen (y down). The camera's
// bottom-left corner sits at the bottom-left of the screen.
type view struct {
	origin cp.Vector
	scale  float64
	height float64
}

func newView(world donburi.World, screenW, screenH int) view {
	v := view{scale: 1, height: float64(screenH)}
	entry, ok := components.Camera.First(world)
	if !ok {
		return v
	}
	cam := components.Camera.Get(entry)
	if cam.Width > 0 {
		v.scale = float64(screenW) / cam.Width
	}
	v.origin = cp.Vector{X: cam.Position.X, Y: cam.Position.Y}
	return v
}

func (v view) point(p cp.Vector) (float32, float32) {
	return float32((p.X - v.origin.X) * v.scale), float32(v.height - (p.Y-v.origin.Y)*v.scale)
}

func (v view) world(x, y int) cp.Vector {
	return cp.Vector{
		X: v.origin.X + float64(x)/v.scale,
		Y: v.origin.Y + (v.height-float64(y))/v.scale,
	}
}

func (v view) fillBB(screen *ebiten.Image, bb cp.BB, c color.Color) {
	x, y := v.point(cp.Vector{X: bb.L, Y: bb.T})
	w, h := float32((bb.R-bb.L)*v.scale), float32((bb.T-bb.B)*v.scale)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func (v view) strokeBB(screen *ebiten.Image, bb cp.BB, c color.Color) {
	x, y := v.point(cp.Vector{X: bb.L, Y: bb.T})
	w, h := float32((bb.R-bb.L)*v.scale), float32((bb.T-bb.B)*v.scale)
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}

func (v view) circle(screen *ebiten.Image, center cp.Vector, r float64, c color.Color) {
	x, y := v.point(center)
	vector.DrawFilledCircle(screen, x, y, float32(r*v.scale), c, true)
}

// DrawArena renders the arena as debug geometry.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Debug.Background)
	b := screen.Bounds()
	v := newView(ecs.World, b.Dx(), b.Dy())

	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		v.fillBB(screen, components.Body.Get(e).BB(), groundColor)
	})

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		for _, cell := range components.Body.Get(e).ShapeBBs() {
			v.fillBB(screen, cell, platformColor)
			v.strokeBB(screen, cell, groundColor)
		}
	})

	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		block := components.Block.Get(e)
		c, ok := materialColors[block.Material]
		if !ok {
			c = platformColor
		}
		v.fillBB(screen, components.Body.Get(e).BB(), c)
	})

	tags.Pig.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		bb := body.BB()
		v.circle(screen, body.Position(), (bb.R-bb.L)/2, pigColor)
	})

	tags.Slingshot.Each(ecs.World, func(e *donburi.Entry) {
		sling := components.Slingshot.Get(e)
		x0, y0 := v.point(sling.Position)
		x1, y1 := v.point(sling.RestPoint)
		vector.StrokeLine(screen, x0, y0, x1, y1, 4, slingColor, true)
		if sling.Base.Active {
			bx, by := v.point(sling.Base.Position)
			vector.StrokeLine(screen, x1, y1, bx, by, 2, slingColor, true)
		}
	})

	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		v.circle(screen, body.Position(), components.Bird.Get(e).Radius, birdColor)
	})

	tags.Trajectory.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Marker.Get(e)
		v.circle(screen, m.Position, 0.04+0.02*float64(m.Variant), markerColor)
	})

	if cfg.Debug.ShowTriggers {
		drawTriggers(ecs, screen, v)
	}
}

// drawTriggers outlines every resolv object, mapped back to world units.
func drawTriggers(ecs *ecs.ECS, screen *ebiten.Image, v view) {
	entry, ok := components.TriggerSpace.First(ecs.World)
	if !ok {
		return
	}
	ts := components.TriggerSpace.Get(entry)
	for _, obj := range ts.Space.Objects() {
		l := ts.Origin.X + obj.X/ts.Scale
		t := ts.Origin.Y - obj.Y/ts.Scale
		bb := cp.BB{L: l, T: t, R: l + obj.W/ts.Scale, B: t - obj.H/ts.Scale}
		v.strokeBB(screen, bb, triggerColor)
	}
}
