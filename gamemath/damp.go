// Package gamemath holds the pure math shared by the animator: the damped
// pose driver, easing curves and small vector helpers.
package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the minimum distance accepted before normalising a direction.
const Epsilon = 1e-6

// MaxDampFactor caps rate*dt so a long frame lands on the target instead of
// overshooting it.
const MaxDampFactor = 1.0

// DampFactor converts a blend rate (1/s) and a frame step into the fraction of
// the remaining distance to cover this frame.
func DampFactor(rate, dt float64) float64 {
	f := rate * dt
	if f > MaxDampFactor {
		return MaxDampFactor
	}
	if f < 0 {
		return 0
	}
	return f
}

// Damp moves current toward target by factor.
func Damp(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// DampVec3 moves each axis of current toward target by factor.
func DampVec3(current, target mgl64.Vec3, factor float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Damp(current[0], target[0], factor),
		Damp(current[1], target[1], factor),
		Damp(current[2], target[2], factor),
	}
}

// ExpFactor is the frame-rate independent smoothing used by the gaze layer.
func ExpFactor(smoothing, dt float64) float64 {
	return 1 - expNeg(smoothing*dt)
}

// Lerp blends a toward b by t without clamping.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
