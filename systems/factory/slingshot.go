package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSlingshot spawns the slingshot and its trigger zone around the rest
// point. A bird leaving the slingshot flies through the zone.
func CreateSlingshot(ecs *ecs.ECS, triggers *components.TriggerSpaceData, pos cp.Vector, cfg config.BirdConfig) *donburi.Entry {
	slingshot := archetypes.Slingshot.Spawn(ecs)

	rest := pos.Add(cfg.RestOffset)
	zone := cp.NewBBForExtents(rest, cfg.SlingZoneWidth/2, cfg.SlingZoneHeight/2)
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvSlingshotZone)
	obj.Data = slingshot
	triggers.Place(obj, zone)
	triggers.Space.Add(obj)
	components.Object.SetValue(slingshot, components.ObjectData{Object: obj})

	components.Slingshot.SetValue(slingshot, components.SlingshotData{
		Position:  pos,
		RestPoint: rest,
		Base: components.SlingBaseData{
			Position: rest,
		},
	})

	return slingshot
}
