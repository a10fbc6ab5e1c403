package components

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's trigger volume in the resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// TriggerSpaceData is the resolv space used for trigger zones. Resolv works
// in screen-like units with y down, so world bounds are mapped through
// Origin (the world's top-left corner) and Scale (units per world unit).
type TriggerSpaceData struct {
	Space  *resolv.Space
	Origin cp.Vector
	Scale  float64
}

var TriggerSpace = donburi.NewComponentType[TriggerSpaceData]()

// Rect maps world bounds to a resolv rectangle.
func (t *TriggerSpaceData) Rect(bb cp.BB) (x, y, w, h float64) {
	x = (bb.L - t.Origin.X) * t.Scale
	y = (t.Origin.Y - bb.T) * t.Scale
	w = math.Max((bb.R-bb.L)*t.Scale, 1)
	h = math.Max((bb.T-bb.B)*t.Scale, 1)
	return x, y, w, h
}

// Place moves obj over the world bounds and refreshes its cells.
func (t *TriggerSpaceData) Place(obj *resolv.Object, bb cp.BB) {
	obj.X, obj.Y, obj.W, obj.H = t.Rect(bb)
	obj.Update()
}
