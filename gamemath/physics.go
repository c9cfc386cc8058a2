package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ApplyDrag scales a velocity by the fraction left after rate*dt of linear
// drag. The result never reverses the velocity.
func ApplyDrag(v mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	keep := 1 - rate*dt
	if keep < 0 {
		keep = 0
	}
	return v.Mul(keep)
}

// Clamp clamps a value to [min, max].
func Clamp(v, min, max float64) float64 {
	return mgl64.Clamp(v, min, max)
}

// Clamp01 clamps a value to [0, 1].
func Clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}

// HomingAccel returns an acceleration of fixed magnitude pointing from toward
// target, along with the current distance. ok is false when the two points
// coincide and no direction exists.
func HomingAccel(from, target mgl64.Vec3, magnitude float64) (accel mgl64.Vec3, dist float64, ok bool) {
	dir := target.Sub(from)
	dist = dir.Len()
	if dist < Epsilon {
		return mgl64.Vec3{}, dist, false
	}
	return dir.Mul(magnitude / dist), dist, true
}

// SafeNormalize normalises v, reporting false for a near-zero vector.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// ClosestOnSegment returns the point of segment ab nearest to p.
func ClosestOnSegment(p, a, b mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < Epsilon {
		return a
	}
	t := Clamp01(p.Sub(a).Dot(ab) / lenSq)
	return a.Add(ab.Mul(t))
}

func expNeg(x float64) float64 {
	return math.Exp(-x)
}
