package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
)

// Fishing: wind up over the shoulder, flick the rod forward, hold. Charging
// holds the windup pose.
var fishingTimeline = timeline{phases: []phase{
	{tempo: tempoSlow, setHips: true, hips: v3(0, -0.03, 0), feet: true, joints: []jointPose{
		{components.JointRightArm, v3(-2.6, 0, -0.3)},
		{components.JointRightForearm, v3(-1.0, 0, 0)},
		{components.JointRightHand, v3(0.4, 0, 0)},
		{components.JointTorso, v3(-0.1, 0.3, 0)},
		{components.JointLeftArm, v3(-0.6, 0, 0.35)},
		{components.JointLeftForearm, v3(-0.5, 0, 0)},
		{components.JointLeftThigh, v3(-0.2, 0, 0.05)},
		{components.JointRightThigh, v3(0.15, 0, -0.05)},
		{components.JointLeftShin, v3(0.2, 0, 0)},
		{components.JointRightShin, v3(0.1, 0, 0)},
	}},
	{tempo: tempoFast, setHips: true, hips: v3(0, -0.03, 0), feet: true, joints: []jointPose{
		{components.JointRightArm, v3(-1.3, 0, -0.2)},
		{components.JointRightForearm, v3(-0.1, 0, 0)},
		{components.JointRightHand, v3(-0.3, 0, 0)},
		{components.JointTorso, v3(0.15, -0.2, 0)},
		{components.JointLeftArm, v3(-0.2, 0, 0.4)},
		{components.JointLeftForearm, v3(-0.3, 0, 0)},
	}},
	{tempo: tempoMedium, setHips: true, hips: v3(0, 0, 0), feet: true, joints: []jointPose{
		{components.JointRightArm, v3(-0.9, 0, -0.2)},
		{components.JointRightForearm, v3(-0.6, 0, 0)},
		{components.JointRightHand, v3(0, 0, 0)},
		{components.JointTorso, v3(0.05, 0, 0)},
		{components.JointLeftThigh, v3(0, 0, 0)},
		{components.JointRightThigh, v3(0, 0, 0)},
		{components.JointLeftShin, v3(0, 0, 0)},
		{components.JointRightShin, v3(0, 0, 0)},
	}},
}}

func fishingThresholds() []float64 {
	return []float64{cfg.Fishing.WindupEnd, cfg.Fishing.FlickEnd}
}

func animateFishing(c *animContext) {
	a := c.actor
	p := &c.pose
	f := cfg.Fishing

	curlFingers(p, components.JointRightFingers, components.JointRightThumb, 1, tempoMedium.rate())

	if a.Status.IsChargingFishing {
		a.FishingCharge = gamemath.Clamp(a.FishingCharge+f.ChargeRate*c.frame.DT, 0, f.MaxCharge)
		fishingTimeline.apply(p, fishingThresholds(), 0)
		return
	}

	if fishingTimeline.apply(p, fishingThresholds(), a.Timers.Fishing) < 2 {
		return
	}

	// Holding: the off hand balances, or winds the reel.
	rate := tempoMedium.rate()
	if a.Status.IsReeling {
		sx, sy := gamemath.Oscillate(a.Timers.Fishing, f.ReelWindSpeed, f.ReelWindSize)
		rate = tempoFast.rate()
		p.Set(components.JointLeftArm, v3(-1.0+sy, sx, 0.2), rate)
		p.Set(components.JointLeftForearm, v3(-1.4+sx, 0, 0), rate)
		curlFingers(p, components.JointLeftFingers, components.JointLeftThumb, 0.8, rate)
		return
	}
	p.Set(components.JointLeftArm, v3(-0.2, 0, 0.3), rate)
	p.Set(components.JointLeftForearm, v3(-0.4, 0, 0), rate)
	curlFingers(p, components.JointLeftFingers, components.JointLeftThumb, 0.2, rate)
}

// stepFishingProp runs after the pose pass so the rod tip is current. A cast
// launches once the windup completes; a reel ends the fishing action when
// the prop reaches the rod.
func stepFishingProp(c *animContext) {
	a := c.actor
	pend := c.pendulum
	tip := rodTip(a, c.rig)

	if !pend.Active {
		if !a.Status.IsChargingFishing && a.Timers.Fishing >= cfg.Fishing.WindupEnd {
			launchProp(a, pend, tip)
		} else {
			stepResting(pend, tip, c.frame.DT)
		}
		updateLine(a, c.rig, pend, tip)
		return
	}

	if stepActive(pend, tip, a.Status.IsReeling, c.frame.DT, c.frame.Env) {
		a.Status.IsFishing = false
		a.Status.IsReeling = false
		a.Status.IsChargingFishing = false
		resetDangle(a, c.rig, pend)
		return
	}
	updateLine(a, c.rig, pend, tip)
}
