package components

import (
	"time"

	"github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

type RoundData struct {
	State         config.RoundStateID
	PigsAtStart   int
	BirdsAtStart  int
	BlocksAtStart int
	TimesTried    int
	TimesToGiveUp int
	ResetDelay    time.Duration
	// Cleared is set as soon as the last pig dies. Failure can never be
	// committed afterwards.
	Cleared bool
}

var Round = donburi.NewComponentType[RoundData]()
