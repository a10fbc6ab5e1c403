package archetypes

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Body,
		components.Object,
	)
	Pig = newArchetype(
		tags.Pig,
		components.Pig,
		components.Body,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Body,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Body,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Body,
	)
	Slingshot = newArchetype(
		tags.Slingshot,
		components.Slingshot,
		components.Object,
	)
	Trajectory = newArchetype(
		tags.Trajectory,
		components.Marker,
	)
	TriggerSpace = newArchetype(
		components.TriggerSpace,
	)
	Level = newArchetype(
		components.Level,
	)
	Round = newArchetype(
		components.Round,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
