package tags

import "github.com/yohamta/donburi"

var (
	Bird       = donburi.NewTag().SetName("Bird")
	Pig        = donburi.NewTag().SetName("Pig")
	Block      = donburi.NewTag().SetName("Block")
	Platform   = donburi.NewTag().SetName("Platform")
	Ground     = donburi.NewTag().SetName("Ground")
	Slingshot  = donburi.NewTag().SetName("Slingshot")
	Trajectory = donburi.NewTag().SetName("Trajectory")
)

// Resolv tags for trigger zones
const (
	ResolvBird          = "Bird"
	ResolvSlingshotZone = "slingshot"
)
