package gamemath

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EaseInCubic maps t in [0,1] through a cubic ease-in.
func EaseInCubic(t float64) float64 {
	return float64(ease.InCubic(float32(Clamp01(t)), 0, 1, 1))
}

// EaseInOutSine maps t in [0,1] through a sine ease-in-out.
func EaseInOutSine(t float64) float64 {
	return float64(ease.InOutSine(float32(Clamp01(t)), 0, 1, 1))
}

// HalfSine is 0 at both ends of [0,1] and 1 in the middle.
func HalfSine(t float64) float64 {
	return math.Sin(Clamp01(t) * math.Pi)
}

// DecayingBounce is an exponentially damped cosine starting at amplitude.
func DecayingBounce(t, amplitude, decay, freq float64) float64 {
	if t < 0 {
		return 0
	}
	return amplitude * math.Exp(-decay*t) * math.Cos(freq*t)
}

// Oscillate returns sin(t*speed)*radius, cos(t*speed)*radius.
func Oscillate(t, speed, radius float64) (float64, float64) {
	s, c := math.Sincos(t * speed)
	return s * radius, c * radius
}
