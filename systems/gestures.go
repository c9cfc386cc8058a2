package systems

import (
	"math"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
)

// Ledge: reach up, hang, pull up, mantle over the edge.
var ledgeTimeline = timeline{phases: []phase{
	{tempo: tempoFast, setHips: true, hips: v3(0, 0.05, 0), feet: true, joints: []jointPose{
		{components.JointLeftArm, v3(-2.9, 0, 0.2)},
		{components.JointRightArm, v3(-2.9, 0, -0.2)},
		{components.JointLeftForearm, v3(-0.1, 0, 0)},
		{components.JointRightForearm, v3(-0.1, 0, 0)},
		{components.JointLeftFingers, v3(1.0, 0, 0)},
		{components.JointRightFingers, v3(1.0, 0, 0)},
		{components.JointNeck, v3(-0.3, 0, 0)},
	}},
	{tempo: tempoSlow, setHips: true, hips: v3(0, 0, 0), feet: true, joints: []jointPose{
		{components.JointLeftArm, v3(-3.0, 0, 0.15)},
		{components.JointRightArm, v3(-3.0, 0, -0.15)},
		{components.JointLeftForearm, v3(0, 0, 0)},
		{components.JointRightForearm, v3(0, 0, 0)},
		{components.JointLeftFingers, v3(1.2, 0, 0)},
		{components.JointRightFingers, v3(1.2, 0, 0)},
		{components.JointLeftThigh, v3(0.1, 0, 0)},
		{components.JointRightThigh, v3(0.1, 0, 0)},
		{components.JointLeftShin, v3(0.3, 0, 0)},
		{components.JointRightShin, v3(0.3, 0, 0)},
	}},
	{tempo: tempoMedium, setHips: true, hips: v3(0, 0.35, 0), feet: true, joints: []jointPose{
		{components.JointLeftArm, v3(-1.6, 0, 0.3)},
		{components.JointRightArm, v3(-1.6, 0, -0.3)},
		{components.JointLeftForearm, v3(-1.8, 0, 0)},
		{components.JointRightForearm, v3(-1.8, 0, 0)},
		{components.JointTorso, v3(0.3, 0, 0)},
		{components.JointLeftThigh, v3(-0.8, 0, 0)},
		{components.JointRightThigh, v3(-0.2, 0, 0)},
		{components.JointLeftShin, v3(1.3, 0, 0)},
		{components.JointRightShin, v3(0.6, 0, 0)},
	}},
	{tempo: tempoMedium, setHips: true, hips: v3(0, 0, 0), feet: true, joints: []jointPose{
		{components.JointLeftArm, v3(-0.2, 0, 0.1)},
		{components.JointRightArm, v3(-0.2, 0, -0.1)},
		{components.JointLeftForearm, v3(-0.3, 0, 0)},
		{components.JointRightForearm, v3(-0.3, 0, 0)},
		{components.JointLeftFingers, v3(0.2, 0, 0)},
		{components.JointRightFingers, v3(0.2, 0, 0)},
		{components.JointTorso, v3(0.05, 0, 0)},
		{components.JointNeck, v3(0, 0, 0)},
		{components.JointLeftThigh, v3(0, 0, 0)},
		{components.JointRightThigh, v3(0, 0, 0)},
		{components.JointLeftShin, v3(0, 0, 0)},
		{components.JointRightShin, v3(0, 0, 0)},
	}},
}}

func animateLedge(c *animContext) {
	t := c.actor.Timers.Ledge
	p := &c.pose
	if ledgeTimeline.apply(p, cfg.Timelines.Ledge, t) != 1 {
		return
	}
	// Legs swing a little while hanging.
	sway := math.Sin(c.actor.Clock*3) * cfg.Timelines.HangSway
	p.Set(components.JointHips, v3(sway, 0, sway*0.5), tempoSlow.rate())
}

// Wave: raise the hand, then wave from the forearm. Authored for the right
// hand and mirrored onto the left.
var waveTimeline = timeline{phases: []phase{
	{tempo: tempoMedium, joints: []jointPose{
		{components.JointRightArm, v3(-0.3, 0, -1.2)},
		{components.JointRightForearm, v3(-1.4, 0, 0)},
		{components.JointRightFingers, v3(0, 0, 0)},
		{components.JointRightThumb, v3(0, 0, 0)},
	}},
	{tempo: tempoMedium, joints: []jointPose{
		{components.JointRightArm, v3(-0.3, 0, -1.4)},
		{components.JointRightFingers, v3(0, 0, 0)},
		{components.JointRightThumb, v3(0, 0, 0)},
	}},
}}

var mirrorJoint = map[components.JointID]components.JointID{
	components.JointRightArm:     components.JointLeftArm,
	components.JointRightForearm: components.JointLeftForearm,
	components.JointRightHand:    components.JointLeftHand,
	components.JointRightFingers: components.JointLeftFingers,
	components.JointRightThumb:   components.JointLeftThumb,
}

func animateWave(c *animContext) {
	wave(c, c.actor.Timers.Wave, false)
}

func animateLeftWave(c *animContext) {
	wave(c, c.actor.Timers.LeftWave, true)
}

func wave(c *animContext, t float64, left bool) {
	// The rest of the body idles underneath the waving arm.
	locomotionIdle(c)

	// Record into a scratch pose so the table can be mirrored.
	var scratch Pose
	idx := waveTimeline.apply(&scratch, cfg.Timelines.Wave, t)
	rate := waveTimeline.phases[idx].tempo.rate()
	if idx == 1 {
		// Ease the stroke in so the first swing does not snap.
		ramp := gamemath.EaseInOutSine(gamemath.Clamp01((t - cfg.Timelines.Wave[0]) / 0.3))
		osc := math.Sin(t*cfg.Timelines.WaveSpeed) * cfg.Timelines.WaveAmount * ramp
		scratch.Set(components.JointRightForearm, v3(-1.4, 0, osc), rate)
		scratch.Set(components.JointRightHand, v3(0, 0, osc*0.5), rate)
		rate = tempoFast.rate()
	}
	for _, id := range rightArmJoints {
		rot, ok := scratch.Target(id)
		if !ok {
			continue
		}
		if left {
			c.pose.Set(mirrorJoint[id], mirror(rot), rate)
		} else {
			c.pose.Set(id, rot, rate)
		}
	}
}

// Interact: reach out, press, retract. Layered over locomotion on the right
// arm.
var interactTimeline = timeline{phases: []phase{
	{tempo: tempoMedium, joints: []jointPose{
		{components.JointRightArm, v3(-1.1, 0, -0.15)},
		{components.JointRightForearm, v3(-0.6, 0, 0)},
		{components.JointRightHand, v3(-0.3, 0, 0)},
		{components.JointRightFingers, v3(0.1, 0, 0)},
	}},
	{tempo: tempoFast, joints: []jointPose{
		{components.JointRightArm, v3(-1.35, 0, -0.1)},
		{components.JointRightForearm, v3(-0.15, 0, 0)},
		{components.JointRightHand, v3(-0.5, 0, 0)},
		{components.JointRightFingers, v3(0, 0, 0)},
	}},
	{tempo: tempoMedium, joints: []jointPose{
		{components.JointRightArm, v3(-0.2, 0, -0.1)},
		{components.JointRightForearm, v3(-0.3, 0, 0)},
		{components.JointRightHand, v3(0, 0, 0)},
		{components.JointRightFingers, v3(0.2, 0, 0)},
	}},
}}

func animateInteract(c *animContext) {
	interactTimeline.apply(&c.pose, cfg.Timelines.Interact, c.actor.Timers.Interact)
}
