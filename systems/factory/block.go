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

func CreateBlock(ecs *ecs.ECS, space *physics.Space, placed leveldata.Object, blockType config.BlockTypeConfig, material config.MaterialConfig) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	pos := cp.Vector{X: placed.X, Y: placed.Y}
	angle := degToRad(placed.Rotation)
	m := physics.Material{
		Density:    material.Density,
		Friction:   material.Friction,
		Elasticity: material.Elasticity,
	}

	var body *physics.Body
	switch blockType.Shape {
	case config.ShapeCircle:
		body = space.AddCircle(pos, blockType.Width/2, m, physics.CategoryBlock)
	case config.ShapeTriangle:
		hw, hh := blockType.Width/2, blockType.Height/2
		verts := []cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: -hw, Y: hh}}
		body = space.AddPolygon(pos, verts, angle, m, physics.CategoryBlock)
	default:
		body = space.AddBox(pos, blockType.Width, blockType.Height, angle, m, physics.CategoryBlock)
	}
	body.Data = block
	components.Body.SetValue(block, components.BodyData{Body: body})

	components.Block.SetValue(block, components.BlockData{
		Type:     placed.Type,
		Material: material.Name,
		Health:   material.Health,
	})

	return block
}
