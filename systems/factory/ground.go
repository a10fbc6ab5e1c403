package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround spawns the static floor that also defines the arena bounds.
func CreateGround(ecs *ecs.ECS, space *physics.Space, cfg config.PhysicsConfig) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	body := space.AddStatic(cp.Vector{}, 0, []cp.BB{cfg.Ground()}, physics.Material{
		Friction: cfg.GroundFriction,
	}, physics.CategoryGround)
	body.Data = ground
	components.Body.SetValue(ground, components.BodyData{Body: body})

	return ground
}
