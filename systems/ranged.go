package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
)

// Fireball cast: gather between the palms, thrust forward, recover.
var castTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, setHips: true, hips: v3(0, -0.06, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.1, 0.25, 0)},
		{components.JointLeftThigh, v3(-0.3, 0, 0.05)},
		{components.JointRightThigh, v3(0.25, 0, -0.05)},
		{components.JointLeftShin, v3(0.35, 0, 0)},
		{components.JointRightShin, v3(0.2, 0, 0)},
		{components.JointLeftFingers, v3(0, 0, 0)},
		{components.JointRightFingers, v3(0, 0, 0)},
	}},
	{tempo: tempoFast, setHips: true, hips: v3(0, -0.04, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.2, -0.2, 0)},
		{components.JointLeftArm, v3(-1.55, 0, -0.15)},
		{components.JointRightArm, v3(-1.55, 0, 0.15)},
		{components.JointLeftForearm, v3(0, 0, 0)},
		{components.JointRightForearm, v3(0, 0, 0)},
		{components.JointLeftHand, v3(0.9, 0, 0)},
		{components.JointRightHand, v3(0.9, 0, 0)},
		{components.JointLeftFingers, v3(-0.2, 0, 0)},
		{components.JointRightFingers, v3(-0.2, 0, 0)},
	}},
	{tempo: tempoMedium, setHips: true, hips: v3(0, 0, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.05, 0, 0)},
		{components.JointLeftArm, v3(-0.3, 0, 0.1)},
		{components.JointRightArm, v3(-0.3, 0, -0.1)},
		{components.JointLeftForearm, v3(-0.5, 0, 0)},
		{components.JointRightForearm, v3(-0.5, 0, 0)},
		{components.JointLeftHand, v3(0, 0, 0)},
		{components.JointRightHand, v3(0, 0, 0)},
		{components.JointLeftThigh, v3(0, 0, 0)},
		{components.JointRightThigh, v3(0, 0, 0)},
		{components.JointLeftShin, v3(0, 0, 0)},
		{components.JointRightShin, v3(0, 0, 0)},
	}},
}}

// animateCast overrides the whole body while a fireball is cast.
func animateCast(c *animContext) {
	t := c.actor.Timers.Cast
	p := &c.pose
	idx := castTimeline.apply(p, cfg.Timelines.Cast, t)
	if idx != 0 {
		return
	}
	// Hands circle each other while the charge gathers.
	sx, sy := gamemath.Oscillate(t, cfg.Timelines.CastSwirlSpeed, cfg.Timelines.CastSwirlRadius)
	rate := tempoFast.rate()
	p.Set(components.JointLeftArm, v3(-0.9+sy, sx, -0.3), rate)
	p.Set(components.JointRightArm, v3(-0.9-sy, -sx, 0.3), rate)
	p.Set(components.JointLeftForearm, v3(-1.1, 0, 0), rate)
	p.Set(components.JointRightForearm, v3(-1.1, 0, 0), rate)
	p.Set(components.JointLeftHand, v3(0, 0, -0.6), rate)
	p.Set(components.JointRightHand, v3(0, 0, 0.6), rate)
}

// Bow: draw, hold at full draw, release. Arms only; locomotion drives the rest.
var bowTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, joints: []jointPose{
		{components.JointLeftArm, v3(-1.5, 0, 0.1)},
		{components.JointLeftForearm, v3(0, 0, 0)},
		{components.JointRightArm, v3(-1.4, 0, -0.4)},
		{components.JointRightForearm, v3(-1.6, 0.4, 0)},
		{components.JointRightFingers, v3(0.6, 0, 0)},
		{components.JointRightThumb, v3(0.4, 0, 0)},
	}},
	{tempo: tempoSlow, joints: []jointPose{
		{components.JointLeftArm, v3(-1.55, 0, 0.1)},
		{components.JointLeftForearm, v3(0, 0, 0)},
		{components.JointRightArm, v3(-1.5, 0.5, -0.9)},
		{components.JointRightForearm, v3(-2.3, 0.6, 0)},
		{components.JointRightFingers, v3(0.7, 0, 0)},
		{components.JointRightThumb, v3(0.5, 0, 0)},
	}},
	{tempo: tempoFast, joints: []jointPose{
		{components.JointLeftArm, v3(-1.45, 0, 0.1)},
		{components.JointLeftForearm, v3(0, 0, 0)},
		{components.JointRightArm, v3(-1.2, 0.8, -1.2)},
		{components.JointRightForearm, v3(-0.6, 0, 0)},
		{components.JointRightFingers, v3(-0.1, 0, 0)},
		{components.JointRightThumb, v3(0, 0, 0)},
	}},
}}

// animateBow drives the arms for a bow shot; the resolver reserves them so
// locomotion keeps the legs moving underneath.
func animateBow(c *animContext) {
	p := &c.pose
	bowTimeline.apply(p, cfg.Timelines.Bow, c.actor.Timers.Bow)
	curlFingers(p, components.JointLeftFingers, components.JointLeftThumb, 1, tempoMedium.rate())
	p.Set(components.JointNeck, v3(0, -0.3, 0), tempoMedium.rate())
}
