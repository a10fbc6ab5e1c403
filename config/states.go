package config

// BirdStateID is the lifecycle state of a bird. States only move forward.
type BirdStateID int

const (
	BirdIdle BirdStateID = iota
	BirdSelected
	BirdFlying
	BirdDying
	BirdDead
)

func (s BirdStateID) String() string {
	switch s {
	case BirdIdle:
		return "idle"
	case BirdSelected:
		return "selected"
	case BirdFlying:
		return "flying"
	case BirdDying:
		return "dying"
	case BirdDead:
		return "dead"
	}
	return "unknown"
}

// RoundStateID is the state of the round controller.
type RoundStateID int

const (
	RoundLoading RoundStateID = iota
	RoundActive
	RoundClearing
	RoundCleared
	RoundFailing
	RoundRetryOffered
	RoundFailed
	RoundFinished
)

func (s RoundStateID) String() string {
	switch s {
	case RoundLoading:
		return "loading"
	case RoundActive:
		return "active"
	case RoundClearing:
		return "clearing"
	case RoundCleared:
		return "cleared"
	case RoundFailing:
		return "failing"
	case RoundRetryOffered:
		return "retry-offered"
	case RoundFailed:
		return "failed"
	case RoundFinished:
		return "finished"
	}
	return "unknown"
}
