package systems

import (
	"math"
	"testing"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestRestingPropStaysOnString(t *testing.T) {
	_, entry := newTestActor(t, 1)
	pend := components.Pendulum.Get(entry)
	pend.Velocity = mgl64.Vec3{3, 1, -2}

	for i := 0; i < 300; i++ {
		stepActor(entry, Environment{})
		dist := pend.Position.Sub(RodTip(entry)).Len()
		if dist > pend.Length+1e-9 {
			t.Fatalf("frame %d: prop %.6fm from the tip, string is %.6fm", i, dist, pend.Length)
		}
	}
}

func TestResetDangle(t *testing.T) {
	_, entry := newTestActor(t, 1)
	pend := components.Pendulum.Get(entry)
	pend.Active = true
	pend.Position = mgl64.Vec3{5, 5, 5}
	pend.Velocity = mgl64.Vec3{1, 1, 1}

	ResetDangle(entry)

	want := RodTip(entry).Sub(mgl64.Vec3{0, pend.Length, 0})
	if pend.Active || !vecNear(pend.Position, want, 1e-9) || pend.Velocity != (mgl64.Vec3{}) {
		t.Errorf("after reset: active=%v pos=%v vel=%v, want dangle at %v", pend.Active, pend.Position, pend.Velocity, want)
	}
	if math.Abs(pend.Line.Length-pend.Length) > 1e-9 {
		t.Errorf("line length = %v, want %v", pend.Line.Length, pend.Length)
	}
}

func TestLaunchUsesCharge(t *testing.T) {
	_, entry := newTestActor(t, 1)
	a := components.Actor.Get(entry)
	pend := components.Pendulum.Get(entry)
	a.Status.IsFishing = true
	a.FishingCharge = 0.5
	a.Timers.Fishing = cfg.Fishing.WindupEnd

	Animate(entry, Frame{DT: testDT})

	if !pend.Active {
		t.Fatal("prop was not launched after the windup")
	}
	f := cfg.Fishing
	wantZ := f.CastSpeed + f.CastBonus*0.5/f.MaxCharge
	if math.Abs(pend.Velocity.Z()-wantZ) > 1e-9 || math.Abs(pend.Velocity.Y()-f.CastLift) > 1e-9 {
		t.Errorf("launch velocity = %v, want z=%v y=%v", pend.Velocity, wantZ, f.CastLift)
	}
	if a.FishingCharge != 0 {
		t.Errorf("charge = %v after launch, want 0", a.FishingCharge)
	}
}

func TestReelCaptureEndsFishing(t *testing.T) {
	_, entry := newTestActor(t, 1)
	a := components.Actor.Get(entry)
	pend := components.Pendulum.Get(entry)
	a.Status.IsFishing = true
	a.Status.IsReeling = true
	a.Timers.Fishing = 2
	pend.Active = true
	pend.Position = RodTip(entry).Add(mgl64.Vec3{0, 0, 2})

	for i := 0; i < 300 && a.Status.IsFishing; i++ {
		stepActor(entry, Environment{})
	}

	if a.Status.IsFishing || a.Status.IsReeling {
		t.Fatalf("still fishing=%v reeling=%v after reeling in", a.Status.IsFishing, a.Status.IsReeling)
	}
	if pend.Active {
		t.Error("prop still active after capture")
	}
}

func TestActivePropLandsOnGround(t *testing.T) {
	pend := &components.PendulumData{
		Active:   true,
		Position: mgl64.Vec3{0, 0.5, 3},
		Velocity: mgl64.Vec3{0, -4, 1},
		Length:   cfg.Pendulum.StringLength,
	}
	env := Environment{Terrain: func(x, z float64) float64 { return 0.2 }}
	for i := 0; i < 240; i++ {
		stepActive(pend, mgl64.Vec3{0, 1.5, 0}, false, testDT, env)
		if pend.Position.Y() < 0.2-1e-12 {
			t.Fatalf("frame %d: prop fell through the ground to %v", i, pend.Position.Y())
		}
	}
	if pend.Velocity.Len() > cfg.Pendulum.RestSpeed {
		t.Errorf("prop still moving at %v after settling", pend.Velocity)
	}
}

func TestEnvironmentGroundHeight(t *testing.T) {
	env := Environment{Terrain: pondTerrain}
	if got := env.GroundHeight(0, 0); got != 0 {
		t.Errorf("shore height = %v, want 0", got)
	}
	if got := env.GroundHeight(0, cfg.Preview.PondEdge+1); got != -cfg.Preview.PondDepth {
		t.Errorf("pond height = %v, want %v", got, -cfg.Preview.PondDepth)
	}
	if got := (Environment{}).GroundHeight(0, 0); got > -1e6 {
		t.Errorf("empty environment ground = %v, want far below", got)
	}
}

func TestSubmergedPropFloatsUp(t *testing.T) {
	deep := cfg.Pendulum.WaterLevel - 0.5
	shallow := cfg.Pendulum.WaterLevel - 0.2
	env := Environment{Terrain: func(x, z float64) float64 { return -10 }}
	tip := mgl64.Vec3{0, 1.5, 0}

	step := func(y float64) *components.PendulumData {
		pend := &components.PendulumData{Active: true, Position: mgl64.Vec3{0, y, 3}, Length: cfg.Pendulum.StringLength}
		stepActive(pend, tip, false, testDT, env)
		return pend
	}

	d, s, air := step(deep), step(shallow), step(1)
	if d.Velocity.Y() <= 0 || d.Position.Y() <= deep {
		t.Errorf("deep prop not pushed up: pos %v vel %v", d.Position, d.Velocity)
	}
	if s.Velocity.Y() <= 0 || s.Velocity.Y() >= d.Velocity.Y() {
		t.Errorf("buoyancy should grow with depth: shallow %v, deep %v", s.Velocity.Y(), d.Velocity.Y())
	}
	if air.Velocity.Y() >= 0 {
		t.Errorf("prop above water rose: %v", air.Velocity)
	}
}

func TestAnimateActivePhysics(t *testing.T) {
	_, entry := newTestActor(t, 1)
	a := components.Actor.Get(entry)
	pend := components.Pendulum.Get(entry)

	rest := pend.Position
	if AnimateActivePhysics(entry, testDT, Environment{}) || pend.Position != rest {
		t.Fatal("a dangling prop should be left to the resting step")
	}

	a.Status.IsFishing = true
	a.Status.IsReeling = true
	pend.Active = true
	pend.Position = RodTip(entry).Add(mgl64.Vec3{0, 0, 2})

	captured := false
	for i := 0; i < 300 && !captured; i++ {
		captured = AnimateActivePhysics(entry, testDT, Environment{})
	}
	if !captured {
		t.Fatalf("prop not reeled in, still %v from the tip", pend.Position.Sub(RodTip(entry)).Len())
	}
	if pend.Active {
		t.Error("captured prop still active")
	}
	want := RodTip(entry).Sub(mgl64.Vec3{0, pend.Length, 0})
	if !vecNear(pend.Position, want, 1e-9) {
		t.Errorf("captured prop at %v, want dangling at %v", pend.Position, want)
	}
	if !a.Status.IsFishing {
		t.Error("fishing flags belong to the caller")
	}
}
