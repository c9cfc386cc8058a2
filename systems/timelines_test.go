package systems

import (
	"math"
	"testing"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

func layerTargets(set func(a *components.ActorData), animate func(c *animContext)) *animContext {
	c := &animContext{
		actor: &components.ActorData{},
		rig:   factory.NewHumanoidRig(),
		frame: Frame{DT: testDT},
	}
	set(c.actor)
	animate(c)
	return c
}

func TestTimelinePhaseTargets(t *testing.T) {
	tests := []struct {
		name    string
		set     func(a *components.ActorData)
		animate func(c *animContext)
		joint   components.JointID
		want    mgl64.Vec3
	}{
		{"ledge reach", func(a *components.ActorData) { a.Timers.Ledge = 0.1 }, animateLedge,
			components.JointLeftArm, v3(-2.9, 0, 0.2)},
		{"ledge hang", func(a *components.ActorData) { a.Timers.Ledge = 0.5 }, animateLedge,
			components.JointRightArm, v3(-3.0, 0, -0.15)},
		{"ledge hang sway at rest", func(a *components.ActorData) { a.Timers.Ledge = 0.5 }, animateLedge,
			components.JointHips, v3(0, 0, 0)},
		{"ledge pull up", func(a *components.ActorData) { a.Timers.Ledge = 0.8 }, animateLedge,
			components.JointLeftForearm, v3(-1.8, 0, 0)},
		{"ledge mantle holds", func(a *components.ActorData) { a.Timers.Ledge = 3 }, animateLedge,
			components.JointLeftArm, v3(-0.2, 0, 0.1)},
		{"pickup crouch", func(a *components.ActorData) { a.Timers.Pickup = 0.1 }, animatePickup,
			components.JointTorso, v3(0.5, 0, 0)},
		{"pickup grab", func(a *components.ActorData) { a.Timers.Pickup = 0.7 }, animatePickup,
			components.JointRightFingers, v3(1.2, 0, 0)},
		{"pickup stand", func(a *components.ActorData) { a.Timers.Pickup = 1.2 }, animatePickup,
			components.JointRightForearm, v3(-1.2, 0, 0)},
		{"skinning kneel", func(a *components.ActorData) { a.Timers.Skinning = 0.1 }, animateSkinning,
			components.JointLeftThigh, v3(-1.5, 0, 0.1)},
		{"summon raise", func(a *components.ActorData) { a.Timers.Summon = 0.1 }, animateSummon,
			components.JointLeftArm, v3(-1.6, 0, 0.8)},
		{"summon channel", func(a *components.ActorData) { a.Timers.Summon = 0.5 }, animateSummon,
			components.JointRightArm, v3(-2.9, 0, -0.3)},
		{"summon slam", func(a *components.ActorData) { a.Timers.Summon = 0.7 }, animateSummon,
			components.JointLeftArm, v3(-0.6, 0, 0.5)},
		{"wave raise", func(a *components.ActorData) { a.Timers.Wave = 0.1 }, animateWave,
			components.JointRightArm, v3(-0.3, 0, -1.2)},
		{"left wave raise is mirrored", func(a *components.ActorData) { a.Timers.LeftWave = 0.1 }, animateLeftWave,
			components.JointLeftArm, mirror(v3(-0.3, 0, -1.2))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := layerTargets(tc.set, tc.animate)
			got, ok := c.pose.Target(tc.joint)
			if !ok {
				t.Fatalf("no target for joint %d", tc.joint)
			}
			if !vecNear(got, tc.want, 1e-12) {
				t.Errorf("target = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSkinningSaws(t *testing.T) {
	const at = 0.5
	c := layerTargets(func(a *components.ActorData) { a.Timers.Skinning = at }, animateSkinning)
	saw := math.Sin(at*cfg.Timelines.SawSpeed) * cfg.Timelines.SawAmount

	if got, _ := c.pose.Target(components.JointRightForearm); !vecNear(got, v3(-0.5-saw, 0, 0), 1e-12) {
		t.Errorf("forearm = %v, want saw %v", got, saw)
	}
	if got, _ := c.pose.Target(components.JointRightArm); !vecNear(got, v3(-1.2+saw*0.5, 0, -0.1), 1e-12) {
		t.Errorf("arm = %v", got)
	}
}

func TestWaveOscillatesForearm(t *testing.T) {
	const at = 1.0
	osc := math.Sin(at*cfg.Timelines.WaveSpeed) * cfg.Timelines.WaveAmount

	right := layerTargets(func(a *components.ActorData) { a.Timers.Wave = at }, animateWave)
	if got, _ := right.pose.Target(components.JointRightForearm); !vecNear(got, v3(-1.4, 0, osc), 1e-6) {
		t.Errorf("right forearm = %v, want z %v", got, osc)
	}

	left := layerTargets(func(a *components.ActorData) { a.Timers.LeftWave = at }, animateLeftWave)
	if got, _ := left.pose.Target(components.JointLeftForearm); !vecNear(got, v3(-1.4, 0, -osc), 1e-6) {
		t.Errorf("left forearm = %v, want z %v", got, -osc)
	}
	if _, ok := left.pose.Target(components.JointRightForearm); !ok {
		t.Error("left wave should leave the right arm to the idle pose")
	}
}
