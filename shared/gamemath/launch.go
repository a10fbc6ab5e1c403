package gamemath

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// LaunchVelocity is the release velocity of a bird pulled back from anchor
// to pos: the pull is reversed and scaled per axis by force, then by scale.
func LaunchVelocity(anchor, pos, force cp.Vector, scale float64) cp.Vector {
	delta := pos.Sub(anchor)
	return cp.Vector{
		X: -delta.X * force.X * scale,
		Y: -delta.Y * force.Y * scale,
	}
}

// TrajectoryPeriod is the interval between trajectory markers for a bird
// moving at horizontal speed vx. Faster birds drop markers more often so
// the spacing stays roughly even. The result is clamped to [min, max]; a
// zero vx yields max.
func TrajectoryPeriod(frequency, vx float64, min, max time.Duration) time.Duration {
	if max < min {
		max = min
	}
	speed := math.Abs(vx)
	if speed < 1e-9 || frequency <= 0 || math.IsNaN(speed) {
		return max
	}
	secs := frequency / speed
	if math.IsInf(secs, 0) || secs >= max.Seconds() {
		return max
	}
	period := time.Duration(secs * float64(time.Second))
	if period < min {
		return min
	}
	return period
}
