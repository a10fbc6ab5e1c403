package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTrajectoryMarker(ecs *ecs.ECS, owner donburi.Entity, pos cp.Vector, variant int) *donburi.Entry {
	marker := archetypes.Trajectory.Spawn(ecs)
	components.Marker.SetValue(marker, components.MarkerData{
		Owner:    owner,
		Position: pos,
		Variant:  variant,
	})
	return marker
}
