package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the framed view of the arena in world units.
type CameraData struct {
	Position math.Vec2 // Bottom-left corner of the view
	Width    float64
}

var Camera = donburi.NewComponentType[CameraData]()
