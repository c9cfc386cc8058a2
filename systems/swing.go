package systems

import (
	"math"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
)

// Horizontal slash for blades: draw across the body, cut through, follow through.
var slashTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, joints: []jointPose{
		{components.JointRightArm, v3(-1.2, 0.9, -0.4)},
		{components.JointRightForearm, v3(-1.0, 0, 0)},
		{components.JointRightHand, v3(0, 0, 0.4)},
		{components.JointTorso, v3(0.05, 0.45, 0)},
		{components.JointLeftArm, v3(-0.5, 0, 0.35)},
	}},
	{tempo: tempoFast, joints: []jointPose{
		{components.JointRightArm, v3(-1.4, -1.1, -0.5)},
		{components.JointRightForearm, v3(-0.15, 0, 0)},
		{components.JointRightHand, v3(0, 0, -0.3)},
		{components.JointTorso, v3(0.1, -0.5, 0)},
		{components.JointLeftArm, v3(-0.2, 0, 0.5)},
	}},
	{tempo: tempoMedium, joints: []jointPose{
		{components.JointRightArm, v3(-0.4, -0.2, -0.2)},
		{components.JointRightForearm, v3(-0.5, 0, 0)},
		{components.JointRightHand, v3(0, 0, 0)},
		{components.JointTorso, v3(0.02, 0, 0)},
		{components.JointLeftArm, v3(0, 0, 0.15)},
	}},
}}

// Vertical overhead strike for hafted tools: raise, chop, recover.
var overheadTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, joints: []jointPose{
		{components.JointRightArm, v3(-2.8, 0, -0.2)},
		{components.JointRightForearm, v3(-1.2, 0, 0)},
		{components.JointLeftArm, v3(-2.6, 0, 0.2)},
		{components.JointLeftForearm, v3(-1.2, 0, 0)},
		{components.JointTorso, v3(-0.25, 0, 0)},
	}},
	{tempo: tempoFast, joints: []jointPose{
		{components.JointRightArm, v3(-0.9, 0, -0.1)},
		{components.JointRightForearm, v3(-0.2, 0, 0)},
		{components.JointLeftArm, v3(-0.9, 0, 0.1)},
		{components.JointLeftForearm, v3(-0.3, 0, 0)},
		{components.JointTorso, v3(0.45, 0, 0)},
	}},
	{tempo: tempoMedium, joints: []jointPose{
		{components.JointRightArm, v3(-0.5, 0, -0.1)},
		{components.JointRightForearm, v3(-0.6, 0, 0)},
		{components.JointLeftArm, v3(-0.4, 0, 0.1)},
		{components.JointLeftForearm, v3(-0.6, 0, 0)},
		{components.JointTorso, v3(0.1, 0, 0)},
	}},
}}

// animateSwing layers a weapon or tool swing over locomotion. The pose family
// depends on the held item.
func animateSwing(c *animContext) {
	t := c.actor.Timers.Swing
	p := &c.pose

	if c.actor.HeldItem.SwingsHorizontally() {
		slashTimeline.apply(p, cfg.Timelines.Slash, t)
	} else {
		idx := overheadTimeline.apply(p, cfg.Timelines.Overhead, t)
		if idx == 0 {
			// Wind-up jitter sells the weight of the tool.
			j := math.Sin(t*cfg.Timelines.JitterSpeed) * cfg.Timelines.WindupJitter
			p.Set(components.JointRightArm, v3(-2.8+j, 0, -0.2), tempoSlow.rate())
			p.Set(components.JointLeftArm, v3(-2.6+j, 0, 0.2), tempoSlow.rate())
		}
	}
	curlFingers(p, components.JointRightFingers, components.JointRightThumb, 1, tempoFast.rate())
}
