package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBird spawns a queued bird at pos. Its tuning is copied from cfg so
// a level can be replayed with different settings without touching birds
// already in play.
func CreateBird(ecs *ecs.ECS, space *physics.Space, triggers *components.TriggerSpaceData, index int, pos cp.Vector, cfg config.BirdConfig) *donburi.Entry {
	bird := archetypes.Bird.Spawn(ecs)

	body := space.AddCircle(pos, cfg.Radius, physics.Material{
		Density:    cfg.Density,
		Friction:   cfg.Friction,
		Elasticity: cfg.Elasticity,
	}, physics.CategoryBird)
	body.Data = bird
	components.Body.SetValue(bird, components.BodyData{Body: body})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvBird)
	obj.Data = bird
	triggers.Place(obj, body.BB())
	triggers.Space.Add(obj)
	components.Object.SetValue(bird, components.ObjectData{Object: obj})

	components.Bird.SetValue(bird, components.BirdData{
		Index:               index,
		State:               config.BirdIdle,
		Radius:              cfg.Radius,
		DragRadius:          cfg.DragRadius,
		DragSpeed:           cfg.DragSpeed,
		LaunchForce:         cfg.LaunchForce,
		LaunchGravity:       cfg.LaunchGravity,
		TrajectoryFrequency: cfg.TrajectoryFrequency,
		DeathDelay:          cfg.DeathDelay,
	})

	return bird
}
