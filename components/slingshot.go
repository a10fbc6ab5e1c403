package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// SlingBaseData is the pouch drawn behind the bird while aiming.
type SlingBaseData struct {
	Position cp.Vector
	Angle    float64
	Active   bool
}

type SlingshotData struct {
	Position  cp.Vector
	RestPoint cp.Vector // Where the queue head waits to be picked up
	Base      SlingBaseData
}

var Slingshot = donburi.NewComponentType[SlingshotData]()
