package systems

import (
	"testing"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSelectLayersPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		set     func(a *components.ActorData)
		body    cfg.LayerID
		blend   cfg.LayerID
		overlay cfg.OverlayID
	}{
		{"idle", func(a *components.ActorData) {}, cfg.LayerLocomotion, cfg.LayerNone, cfg.OverlayNone},
		{"punch overlays locomotion", func(a *components.ActorData) { a.Combat.IsPunch = true }, cfg.LayerLocomotion, cfg.LayerNone, cfg.OverlayMelee},
		{"punch beats swing", func(a *components.ActorData) {
			a.Combat.IsPunch = true
			a.Combat.IsAxeSwing = true
		}, cfg.LayerLocomotion, cfg.LayerNone, cfg.OverlayMelee},
		{"swing beats interact", func(a *components.ActorData) {
			a.Combat.IsAxeSwing = true
			a.Status.IsInteracting = true
		}, cfg.LayerLocomotion, cfg.LayerNone, cfg.OverlaySwing},
		{"dead beats fishing", func(a *components.ActorData) {
			a.Status.IsDead = true
			a.Status.IsFishing = true
		}, cfg.LayerDeath, cfg.LayerNone, cfg.OverlayNone},
		{"drag beats death", func(a *components.ActorData) {
			a.Status.IsDead = true
			a.Status.IsDragged = true
		}, cfg.LayerRagdoll, cfg.LayerNone, cfg.OverlayNone},
		{"recovery keeps ragdoll", func(a *components.ActorData) { a.Drag.RecoverTimer = 0.2 }, cfg.LayerRagdoll, cfg.LayerNone, cfg.OverlayNone},
		{"bow blends over locomotion and its overlay", func(a *components.ActorData) {
			a.Combat.IsFiringBow = true
			a.Combat.IsPunch = true
		}, cfg.LayerLocomotion, cfg.LayerBow, cfg.OverlayMelee},
		{"bow falls through to pickup", func(a *components.ActorData) {
			a.Combat.IsFiringBow = true
			a.Status.IsPickingUp = true
		}, cfg.LayerPickup, cfg.LayerBow, cfg.OverlayNone},
		{"bow falls through to fishing", func(a *components.ActorData) {
			a.Combat.IsFiringBow = true
			a.Status.IsFishing = true
		}, cfg.LayerFishing, cfg.LayerBow, cfg.OverlayNone},
		{"cast beats bow", func(a *components.ActorData) {
			a.Status.IsFireballCasting = true
			a.Combat.IsFiringBow = true
		}, cfg.LayerCast, cfg.LayerNone, cfg.OverlayNone},
		{"ledge beats cast", func(a *components.ActorData) {
			a.Status.IsLedgeGrabbing = true
			a.Status.IsFireballCasting = true
		}, cfg.LayerLedge, cfg.LayerNone, cfg.OverlayNone},
		{"fishing beats wave", func(a *components.ActorData) {
			a.Status.IsFishing = true
			a.Status.IsWaving = true
		}, cfg.LayerFishing, cfg.LayerNone, cfg.OverlayNone},
		{"full body layer drops overlay", func(a *components.ActorData) {
			a.Status.IsPickingUp = true
			a.Combat.IsPunch = true
		}, cfg.LayerPickup, cfg.LayerNone, cfg.OverlayNone},
		{"wave beats left wave", func(a *components.ActorData) {
			a.Status.IsWaving = true
			a.Status.IsLeftHandWaving = true
		}, cfg.LayerWave, cfg.LayerNone, cfg.OverlayNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &components.ActorData{}
			tc.set(a)
			got := SelectLayers(a)
			if got.Body != tc.body || got.Blend != tc.blend || got.Overlay != tc.overlay {
				t.Errorf("got body=%s blend=%s overlay=%s, want body=%s blend=%s overlay=%s",
					got.Body, got.Blend, got.Overlay, tc.body, tc.blend, tc.overlay)
			}
		})
	}
}

func TestPhaseIndexIsMonotonic(t *testing.T) {
	thresholds := []float64{0.2, 0.5, 0.9}
	tests := []struct {
		t    float64
		want int
	}{
		{0, 0}, {0.19, 0}, {0.2, 1}, {0.49, 1}, {0.5, 2}, {0.9, 3}, {5, 3},
	}
	for _, tc := range tests {
		if got := phaseIndex(thresholds, tc.t); got != tc.want {
			t.Errorf("phaseIndex(%v) = %d, want %d", tc.t, got, tc.want)
		}
	}

	prev := 0
	for ts := 0.0; ts < 2; ts += 0.01 {
		idx := phaseIndex(thresholds, ts)
		if idx < prev {
			t.Fatalf("phase went back from %d to %d at t=%v", prev, idx, ts)
		}
		prev = idx
	}
}

func TestBowKeepsArmsOverLocomotion(t *testing.T) {
	_, entry := newTestActor(t, 1)
	a := components.Actor.Get(entry)
	a.Combat.IsFiringBow = true
	a.Timers.Bow = 0.8

	c := newAnimContext(entry, Frame{DT: testDT, Moving: true})
	bow := findLayer(cfg.LayerBow)
	bow.animate(c)
	want, ok := c.pose.Target(components.JointRightArm)
	if !ok {
		t.Fatal("bow layer did not pose the right arm")
	}
	c.pose.Reserve(rightArmJoints...)
	animateLocomotion(c)

	if got, _ := c.pose.Target(components.JointRightArm); got != want {
		t.Errorf("locomotion overrode the bow arm: %v, want %v", got, want)
	}
	if _, ok := c.pose.Target(components.JointLeftThigh); !ok {
		t.Error("locomotion did not drive the legs under the bow")
	}
}

func TestBowDuringCastKeepsPropInFlight(t *testing.T) {
	_, entry := newTestActor(t, 1)
	a := components.Actor.Get(entry)
	pend := components.Pendulum.Get(entry)
	a.Status.IsFishing = true
	a.Timers.Fishing = 2
	pend.Active = true
	pend.Position = RodTip(entry).Add(mgl64.Vec3{0, 1, 3})
	pend.Velocity = mgl64.Vec3{0, 0, 2}
	start := pend.Position

	a.Combat.IsFiringBow = true
	Animate(entry, Frame{DT: testDT, Env: Environment{Terrain: func(x, z float64) float64 { return -5 }}})

	if !pend.Active {
		t.Fatal("firing the bow reset the cast")
	}
	if pend.Position.Z() <= start.Z() {
		t.Errorf("prop did not keep flying: %v from %v", pend.Position, start)
	}
}

func TestClothOnlyRunsUnderLocomotion(t *testing.T) {
	tests := []struct {
		name  string
		set   func(a *components.ActorData)
		moves bool
	}{
		{"idle", func(a *components.ActorData) {}, true},
		{"bow over locomotion", func(a *components.ActorData) { a.Combat.IsFiringBow = true }, true},
		{"pickup", func(a *components.ActorData) { a.Status.IsPickingUp = true }, false},
		{"ledge", func(a *components.ActorData) { a.Status.IsLedgeGrabbing = true }, false},
		{"cast", func(a *components.ActorData) { a.Status.IsFireballCasting = true }, false},
		{"dragged", func(a *components.ActorData) { a.Status.IsDragged = true }, false},
		{"dead", func(a *components.ActorData) { a.Status.IsDead = true }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, entry := newTestActor(t, 1)
			skirt := components.Rig.Get(entry).Skirt
			i := components.Cloth.Get(entry).Lower[0]
			displaced := skirt.Vertices[i].Add(mgl64.Vec3{0.05, 0, 0})
			skirt.Vertices[i] = displaced
			tc.set(components.Actor.Get(entry))

			Animate(entry, Frame{DT: testDT})

			if moved := skirt.Vertices[i] != displaced; moved != tc.moves {
				t.Errorf("skirt moved = %v, want %v", moved, tc.moves)
			}
		})
	}
}
