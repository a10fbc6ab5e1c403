package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePig(ecs *ecs.ECS, space *physics.Space, placed leveldata.Object, pigType config.PigTypeConfig) *donburi.Entry {
	pig := archetypes.Pig.Spawn(ecs)

	body := space.AddCircle(cp.Vector{X: placed.X, Y: placed.Y}, pigType.Radius, physics.Material{
		Density:    pigType.Density,
		Friction:   pigType.Friction,
		Elasticity: pigType.Elasticity,
	}, physics.CategoryPig)
	body.Data = pig
	components.Body.SetValue(pig, components.BodyData{Body: body})

	components.Pig.SetValue(pig, components.PigData{
		Type:      placed.Type,
		Health:    pigType.Health,
		MaxHealth: pigType.Health,
	})

	return pig
}
