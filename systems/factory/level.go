package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, levels []leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels: levels,
	})
	return level
}

func CreateRound(ecs *ecs.ECS, cfg config.RoundConfig) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.Set(round, &components.RoundData{
		State:         config.RoundLoading,
		TimesToGiveUp: cfg.TimesToGiveUp,
		ResetDelay:    cfg.ResetDelay,
	})
	return round
}
