package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDampFactorClamp(t *testing.T) {
	tests := []struct {
		rate, dt, want float64
	}{
		{10, 0.016, 0.16},
		{10, 0.1, 1},
		{10, 5, 1},
		{0, 0.5, 0},
		{10, -1, 0},
	}
	for _, tc := range tests {
		got := DampFactor(tc.rate, tc.dt)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("DampFactor(%v, %v) = %v, want %v", tc.rate, tc.dt, got, tc.want)
		}
	}
}

func TestDampConvergesWithoutOvershoot(t *testing.T) {
	for _, f := range []float64{0.05, 0.2, 0.5, 0.99} {
		current, target := 3.0, -1.5
		dist := math.Abs(target - current)
		// dist*(1-f)^n < 1e-6 once n exceeds ln(1e-6/dist)/ln(1-f)
		limit := int(math.Ceil(math.Log(1e-6/dist)/math.Log(1-f))) + 1
		steps := 0
		for ; steps < limit && dist > 1e-6; steps++ {
			next := Damp(current, target, f)
			nd := math.Abs(target - next)
			if nd >= dist {
				t.Fatalf("f=%v step %d: distance did not shrink (%v -> %v)", f, steps, dist, nd)
			}
			if (current-target)*(next-target) < 0 {
				t.Fatalf("f=%v step %d: overshot target", f, steps)
			}
			current, dist = next, nd
		}
		if dist > 1e-6 {
			t.Errorf("f=%v did not converge within %d steps (dist %v)", f, limit, dist)
		}
	}
}

func TestDampFullFactorLandsOnTarget(t *testing.T) {
	got := DampVec3(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{-1, 0, 4}, DampFactor(20, 1))
	if !got.ApproxEqual(mgl64.Vec3{-1, 0, 4}) {
		t.Errorf("got %v, want the target", got)
	}
}

func TestHomingAccelMagnitudeIsConstant(t *testing.T) {
	target := mgl64.Vec3{0, 1, 0}
	for _, from := range []mgl64.Vec3{{5, 1, 0}, {0.1, 1, 0}, {-3, -2, 7}} {
		acc, _, ok := HomingAccel(from, target, 30)
		if !ok {
			t.Fatalf("no direction from %v", from)
		}
		if math.Abs(acc.Len()-30) > 1e-9 {
			t.Errorf("from %v: |accel| = %v, want 30", from, acc.Len())
		}
	}
	if _, _, ok := HomingAccel(target, target, 30); ok {
		t.Error("expected coincident points to report no direction")
	}
}

func TestClosestOnSegment(t *testing.T) {
	a, b := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -1, 0}
	if got := ClosestOnSegment(mgl64.Vec3{1, -0.5, 0}, a, b); !got.ApproxEqual(mgl64.Vec3{0, -0.5, 0}) {
		t.Errorf("mid: got %v", got)
	}
	if got := ClosestOnSegment(mgl64.Vec3{0, 3, 0}, a, b); !got.ApproxEqual(a) {
		t.Errorf("above: got %v", got)
	}
	if got := ClosestOnSegment(mgl64.Vec3{0, 3, 0}, a, a); !got.ApproxEqual(a) {
		t.Errorf("degenerate: got %v", got)
	}
}

func TestEasing(t *testing.T) {
	if EaseInCubic(0) != 0 || math.Abs(EaseInCubic(1)-1) > 1e-6 {
		t.Error("ease-in cubic endpoints")
	}
	if EaseInCubic(0.5) > 0.2 {
		t.Errorf("ease-in cubic should start slow, got %v at 0.5", EaseInCubic(0.5))
	}
	if math.Abs(HalfSine(0.5)-1) > 1e-12 || HalfSine(0) != 0 {
		t.Error("half sine envelope")
	}
	if DecayingBounce(-1, 1, 1, 1) != 0 || DecayingBounce(0, 0.5, 6, 18) != 0.5 {
		t.Error("bounce start")
	}
}
