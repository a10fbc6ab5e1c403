package gamemath

import (
	"math"

	"github.com/jakecoffman/cp"
)

// OutOfWorld reports whether bb has left the arena: fully past either side
// of the ground or fully below it. Anything above the ground is still in.
func OutOfWorld(bb, ground cp.BB) bool {
	return bb.L > ground.R || bb.R < ground.L || bb.T < ground.B
}

// FrameWidth returns the camera width that fits the level geometry: the
// distance from the ground's left edge to the structures, plus the larger of
// the structure span and its height above the ground surface, plus margin.
// It reports false when there is no geometry to frame.
func FrameWidth(geometry []cp.BB, ground cp.BB, margin float64) (float64, bool) {
	if len(geometry) == 0 {
		return 0, false
	}
	minX, maxX, maxY := math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, bb := range geometry {
		minX = math.Min(minX, bb.L)
		maxX = math.Max(maxX, bb.R)
		maxY = math.Max(maxY, bb.T)
	}
	span := math.Max(math.Abs(maxX-minX), math.Abs(maxY-ground.T))
	return math.Abs(minX-ground.L) + span + margin, true
}
