package gamemath

import "math"

// ApplyFriction decays speed multiplicatively and snaps it to zero once its
// magnitude drops below threshold. The sign never flips.
func ApplyFriction(speedX, friction, threshold float64) float64 {
	speedX *= friction
	if math.Abs(speedX) < threshold {
		return 0
	}
	return speedX
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Smooth moves current a fraction of the way toward target.
func Smooth(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// HorizontalInput resolves held direction keys to a velocity. Left wins when
// both are held.
func HorizontalInput(left, right bool, speed float64) float64 {
	switch {
	case left:
		return -speed
	case right:
		return speed
	}
	return 0
}
