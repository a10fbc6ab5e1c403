package factory

import (
	"math"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTriggerSpace spawns the resolv space covering the arena from the
// ground up to the ceiling.
func CreateTriggerSpace(ecs *ecs.ECS, cfg config.PhysicsConfig) *donburi.Entry {
	space := archetypes.TriggerSpace.Spawn(ecs)

	ground := cfg.Ground()
	origin := cp.Vector{X: ground.L, Y: cfg.Ceiling}
	width := int(math.Ceil((ground.R - ground.L) * cfg.TriggerScale))
	height := int(math.Ceil((cfg.Ceiling - ground.B) * cfg.TriggerScale))

	components.TriggerSpace.SetValue(space, components.TriggerSpaceData{
		Space:  resolv.NewSpace(width, height, cfg.TriggerCell, cfg.TriggerCell),
		Origin: origin,
		Scale:  cfg.TriggerScale,
	})
	return space
}
