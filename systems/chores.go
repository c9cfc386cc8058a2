package systems

import (
	"math"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
)

// Pickup: crouch, reach down, grab, stand back up.
var pickupTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, setHips: true, hips: v3(0, -0.2, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.5, 0, 0)},
		{components.JointNeck, v3(0.2, 0, 0)},
		{components.JointLeftThigh, v3(-0.9, 0, 0.05)},
		{components.JointRightThigh, v3(-0.9, 0, -0.05)},
		{components.JointLeftShin, v3(1.4, 0, 0)},
		{components.JointRightShin, v3(1.4, 0, 0)},
		{components.JointRightArm, v3(-0.5, 0, -0.1)},
		{components.JointLeftArm, v3(-0.2, 0, 0.2)},
	}},
	{tempo: tempoMedium, setHips: true, hips: v3(0, -0.35, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.7, 0, 0)},
		{components.JointNeck, v3(0.25, 0, 0)},
		{components.JointLeftThigh, v3(-1.3, 0, 0.05)},
		{components.JointRightThigh, v3(-1.3, 0, -0.05)},
		{components.JointLeftShin, v3(2.0, 0, 0)},
		{components.JointRightShin, v3(2.0, 0, 0)},
		{components.JointRightArm, v3(-1.0, 0, -0.05)},
		{components.JointRightForearm, v3(-0.1, 0, 0)},
		{components.JointRightFingers, v3(0, 0, 0)},
		{components.JointRightThumb, v3(0, 0, 0)},
	}},
	{tempo: tempoFast, setHips: true, hips: v3(0, -0.35, 0), feet: true, joints: []jointPose{
		{components.JointRightArm, v3(-1.0, 0, -0.05)},
		{components.JointRightForearm, v3(-0.3, 0, 0)},
		{components.JointRightFingers, v3(1.2, 0, 0)},
		{components.JointRightThumb, v3(0.7, 0, 0)},
	}},
	{tempo: tempoMedium, setHips: true, hips: v3(0, 0, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.05, 0, 0)},
		{components.JointNeck, v3(0, 0, 0)},
		{components.JointLeftThigh, v3(0, 0, 0)},
		{components.JointRightThigh, v3(0, 0, 0)},
		{components.JointLeftShin, v3(0, 0, 0)},
		{components.JointRightShin, v3(0, 0, 0)},
		{components.JointRightArm, v3(-0.6, 0, -0.1)},
		{components.JointRightForearm, v3(-1.2, 0, 0)},
		{components.JointLeftArm, v3(0, 0, 0.1)},
	}},
}}

func animatePickup(c *animContext) {
	pickupTimeline.apply(&c.pose, cfg.Timelines.Pickup, c.actor.Timers.Pickup)
}

// Skinning: kneel over the carcass, then saw back and forth until the flag
// clears.
var skinningTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, setHips: true, hips: v3(0, -0.4, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.6, 0, 0)},
		{components.JointNeck, v3(0.3, 0, 0)},
		{components.JointLeftThigh, v3(-1.5, 0, 0.1)},
		{components.JointRightThigh, v3(-0.2, 0, -0.1)},
		{components.JointLeftShin, v3(1.6, 0, 0)},
		{components.JointRightShin, v3(2.1, 0, 0)},
		{components.JointLeftArm, v3(-1.1, 0, 0.1)},
		{components.JointLeftForearm, v3(-0.4, 0, 0)},
		{components.JointRightArm, v3(-1.1, 0, -0.1)},
		{components.JointRightForearm, v3(-0.4, 0, 0)},
	}},
	{tempo: tempoMedium, setHips: true, hips: v3(0, -0.4, 0), feet: true, joints: []jointPose{
		{components.JointTorso, v3(0.65, 0, 0)},
		{components.JointNeck, v3(0.35, 0, 0)},
		{components.JointLeftThigh, v3(-1.5, 0, 0.1)},
		{components.JointRightThigh, v3(-0.2, 0, -0.1)},
		{components.JointLeftShin, v3(1.6, 0, 0)},
		{components.JointRightShin, v3(2.1, 0, 0)},
		{components.JointLeftArm, v3(-1.2, 0, 0.15)},
		{components.JointLeftForearm, v3(-0.5, 0, 0)},
	}},
}}

func animateSkinning(c *animContext) {
	t := c.actor.Timers.Skinning
	p := &c.pose
	idx := skinningTimeline.apply(p, cfg.Timelines.Skinning, t)
	curlFingers(p, components.JointRightFingers, components.JointRightThumb, 1, tempoMedium.rate())
	if idx == 0 {
		return
	}
	saw := math.Sin(t*cfg.Timelines.SawSpeed) * cfg.Timelines.SawAmount
	rate := tempoFast.rate()
	p.Set(components.JointRightArm, v3(-1.2+saw*0.5, 0, -0.1), rate)
	p.Set(components.JointRightForearm, v3(-0.5-saw, 0, 0), rate)
}

// Summon: raise both arms, channel overhead, slam down.
var summonTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, setHips: true, hips: v3(0, 0, 0), feet: true, joints: []jointPose{
		{components.JointLeftArm, v3(-1.6, 0, 0.8)},
		{components.JointRightArm, v3(-1.6, 0, -0.8)},
		{components.JointLeftForearm, v3(-0.4, 0, 0)},
		{components.JointRightForearm, v3(-0.4, 0, 0)},
		{components.JointTorso, v3(-0.15, 0, 0)},
		{components.JointNeck, v3(-0.25, 0, 0)},
		{components.JointLeftFingers, v3(0, 0, 0)},
		{components.JointRightFingers, v3(0, 0, 0)},
	}},
	{tempo: tempoSlow, setHips: true, hips: v3(0, 0.03, 0), feet: true, joints: []jointPose{
		{components.JointLeftArm, v3(-2.9, 0, 0.3)},
		{components.JointRightArm, v3(-2.9, 0, -0.3)},
		{components.JointLeftForearm, v3(0, 0, 0)},
		{components.JointRightForearm, v3(0, 0, 0)},
		{components.JointTorso, v3(-0.25, 0, 0)},
		{components.JointNeck, v3(-0.4, 0, 0)},
		{components.JointLeftFingers, v3(-0.3, 0, 0)},
		{components.JointRightFingers, v3(-0.3, 0, 0)},
	}},
	{tempo: tempoFast, setHips: true, hips: v3(0, -0.12, 0), feet: true, joints: []jointPose{
		{components.JointLeftArm, v3(-0.6, 0, 0.5)},
		{components.JointRightArm, v3(-0.6, 0, -0.5)},
		{components.JointLeftForearm, v3(-0.2, 0, 0)},
		{components.JointRightForearm, v3(-0.2, 0, 0)},
		{components.JointTorso, v3(0.4, 0, 0)},
		{components.JointNeck, v3(0.1, 0, 0)},
		{components.JointLeftThigh, v3(-0.3, 0, 0.1)},
		{components.JointRightThigh, v3(-0.3, 0, -0.1)},
		{components.JointLeftShin, v3(0.5, 0, 0)},
		{components.JointRightShin, v3(0.5, 0, 0)},
		{components.JointLeftFingers, v3(0.4, 0, 0)},
		{components.JointRightFingers, v3(0.4, 0, 0)},
	}},
}}

func animateSummon(c *animContext) {
	summonTimeline.apply(&c.pose, cfg.Timelines.Summon, c.actor.Timers.Summon)
}
