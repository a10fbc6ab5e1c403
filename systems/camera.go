package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraFramer sizes the camera so the whole structure fits on screen.
type CameraFramer struct {
	margin float64
}

func NewCameraFramer(margin float64) *CameraFramer {
	return &CameraFramer{margin: margin}
}

// ComputeWidth returns the view width for the given geometry. It reports
// false when there is nothing to frame.
func (f *CameraFramer) ComputeWidth(geometry []cp.BB, ground cp.BB) (float64, bool) {
	return gamemath.FrameWidth(geometry, ground, f.margin)
}

// Frame fits the camera to every block, pig and platform in the world. The
// camera is left alone when the arena is empty.
func (f *CameraFramer) Frame(world donburi.World, camera *donburi.Entry, ground cp.BB) bool {
	var geometry []cp.BB
	collect := func(e *donburi.Entry) {
		if body := components.Body.Get(e); body.Body != nil {
			geometry = append(geometry, body.BB())
		}
	}
	tags.Block.Each(world, collect)
	tags.Pig.Each(world, collect)
	tags.Platform.Each(world, collect)

	width, ok := f.ComputeWidth(geometry, ground)
	if !ok {
		return false
	}
	cam := components.Camera.Get(camera)
	cam.Width = width
	cam.Position = math.NewVec2(ground.L, ground.B)
	return true
}
