package components

import (
	"time"

	"github.com/automoto/slingshot/config"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BirdData is the launch state of one projectile. Position, velocity and
// gravity scale live on its body.
type BirdData struct {
	Index int
	State config.BirdStateID

	// Anchor is where the bird was picked up; drags are clamped around it.
	Anchor          cp.Vector
	JumpToSlingshot bool // Being moved to and held at the slingshot rest point
	OutOfSlingshot  bool

	// Head move toward the slingshot.
	Move     *gween.Tween
	MoveFrom cp.Vector

	Radius              float64
	DragRadius          float64
	DragSpeed           float64
	LaunchForce         cp.Vector
	LaunchGravity       float64
	TrajectoryFrequency float64
	DeathDelay          time.Duration
}

var Bird = donburi.NewComponentType[BirdData]()
