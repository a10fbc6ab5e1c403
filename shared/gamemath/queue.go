package gamemath

import "github.com/jakecoffman/cp"

// QueueSlot returns where the i-th waiting bird sits. Birds line up to the
// left of start on the ground, rowSize per row with a half-pitch gap between
// rows. Alternate birds are nudged by jitter (a fraction in [0, 1] of the
// free space between neighbours), which never lets two birds overlap.
func QueueSlot(i, rowSize int, start cp.Vector, radius, spacing, jitter float64) cp.Vector {
	if rowSize < 1 {
		rowSize = 1
	}
	if spacing < 1 {
		spacing = 1
	}
	jitter = cp.Clamp01(jitter)
	pitch := 2 * radius * spacing
	row := i / rowSize
	x := start.X - float64(i+1)*pitch - float64(row)*pitch/2
	// Keep a tenth of the gap free so neighbours nudged toward each other
	// still do not touch.
	nudge := jitter * 0.45 * (pitch - 2*radius)
	if i%2 == 0 {
		x += nudge
	} else {
		x -= nudge
	}
	return cp.Vector{X: x, Y: start.Y}
}
