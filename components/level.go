package components

import (
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels     []leveldata.Level
	LevelIndex int
}

// Current returns the level being played, or nil past the last one.
func (l *LevelData) Current() *leveldata.Level {
	if l.LevelIndex < 0 || l.LevelIndex >= len(l.Levels) {
		return nil
	}
	return &l.Levels[l.LevelIndex]
}

var Level = donburi.NewComponentType[LevelData]()
