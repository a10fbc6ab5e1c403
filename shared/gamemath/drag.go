package gamemath

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// ClampToCircle returns target pulled back onto the circle of radius around
// center when it lies outside of it.
func ClampToCircle(center, target cp.Vector, radius float64) cp.Vector {
	if radius <= 0 {
		return center
	}
	return center.Add(target.Sub(center).Clamp(radius))
}

// SmoothingFactor converts a per-second approach rate into the fraction of
// the remaining distance covered in one step of dt. The result is always in
// [0, 1], so the smoothed position never overshoots.
func SmoothingFactor(speed float64, dt time.Duration) float64 {
	if speed <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-speed*dt.Seconds())
}

// DragStep moves current toward target by SmoothingFactor(speed, dt).
func DragStep(current, target cp.Vector, speed float64, dt time.Duration) cp.Vector {
	return current.Lerp(target, SmoothingFactor(speed, dt))
}

// SlingBase places the sling base at radius from the bird along the
// anchor→bird direction. The angle points from the anchor toward the base's
// previous position. A zero-length direction leaves the base on the bird.
func SlingBase(anchor, bird, prevBase cp.Vector, radius float64) (pos cp.Vector, angle float64) {
	toBase := prevBase.Sub(anchor)
	if toBase.LengthSq() > 0 {
		angle = toBase.ToAngle()
	}
	dir := bird.Sub(anchor)
	if dir.LengthSq() == 0 {
		return bird, angle
	}
	return bird.Add(dir.Normalize().Mult(radius)), angle
}
