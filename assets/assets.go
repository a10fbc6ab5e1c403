package assets

import (
	"embed"

	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// LevelOptions maps level pixels onto the arena using the configured
// origin and scale.
func LevelOptions() leveldata.Options {
	return leveldata.Options{
		PixelsPerUnit: config.Levels.PixelsPerUnit,
		OriginX:       config.Levels.Origin.X,
		OriginY:       config.Levels.Origin.Y,
	}
}

// LoadLevels decodes every level bundled with the game, in file name order.
func LoadLevels() ([]leveldata.Level, error) {
	return leveldata.LoadAllLevels(levelFS, config.Levels.Dir, LevelOptions())
}
