package systems

import (
	"math"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
)

// animateLocomotion is the base layer: idle breathing, the walk/sprint cycle
// or the airborne tuck, selected from the frame's intent.
func animateLocomotion(c *animContext) {
	switch {
	case c.frame.Intent.Jumping:
		locomotionJump(c)
	case c.frame.Moving:
		locomotionMove(c)
	default:
		locomotionIdle(c)
	}
}

func locomotionIdle(c *animContext) {
	l := cfg.Locomotion
	p := &c.pose
	rate := tempoMedium.rate()
	t := c.actor.Clock

	breath := math.Sin(t*l.BreathSpeed) * l.BreathAmount
	sway := math.Sin(t*l.BreathSpeed*0.5) * l.IdleSway

	p.Set(components.JointHips, v3(0, sway, 0), rate)
	p.SetHips(v3(0, 0, 0), rate)
	p.Set(components.JointTorso, v3(breath, 0, 0), rate)
	p.Set(components.JointNeck, v3(-breath*0.5, 0, 0), rate)
	p.Set(components.JointHead, v3(0, 0, 0), rate)

	if c.frame.Intent.CombatStance {
		guardArms(p, rate)
		p.Set(components.JointLeftThigh, v3(-0.15, 0, 0.05), rate)
		p.Set(components.JointRightThigh, v3(0.1, 0, -0.05), rate)
		p.Set(components.JointLeftShin, v3(0.25, 0, 0), rate)
		p.Set(components.JointRightShin, v3(0.2, 0, 0), rate)
		p.SetHips(v3(0, -0.04, 0), rate)
	} else {
		relaxedArms(p, rate, breath)
		p.Set(components.JointLeftThigh, v3(0, 0, 0), rate)
		p.Set(components.JointRightThigh, v3(0, 0, 0), rate)
		p.Set(components.JointLeftShin, v3(0, 0, 0), rate)
		p.Set(components.JointRightShin, v3(0, 0, 0), rate)
	}
	p.ResetFeet(rate)
}

func locomotionMove(c *animContext) {
	l := cfg.Locomotion
	p := &c.pose
	rate := tempoFast.rate()

	speed, stride, lean := l.WalkCycleSpeed, l.StrideAngle, 0.0
	if c.frame.Intent.Sprinting {
		speed, stride, lean = l.SprintCycleSpeed, l.SprintStride, l.SprintLean
	}
	c.actor.StridePhase = math.Mod(c.actor.StridePhase+c.frame.DT*speed, 2*math.Pi)
	s, co := math.Sincos(c.actor.StridePhase)

	// Thighs swing in opposition; each knee flexes while its leg swings forward.
	p.Set(components.JointLeftThigh, v3(-stride*s, 0, 0), rate)
	p.Set(components.JointRightThigh, v3(stride*s, 0, 0), rate)
	p.Set(components.JointLeftShin, v3(l.KneeBend*math.Max(0, co), 0, 0), rate)
	p.Set(components.JointRightShin, v3(l.KneeBend*math.Max(0, -co), 0, 0), rate)
	p.Set(components.JointLeftFoot, v3(l.FootRoll*s, 0, 0), rate)
	p.Set(components.JointRightFoot, v3(-l.FootRoll*s, 0, 0), rate)

	p.Set(components.JointLeftArm, v3(l.ArmSwing*s, 0, 0.08), rate)
	p.Set(components.JointRightArm, v3(-l.ArmSwing*s, 0, -0.08), rate)
	p.Set(components.JointLeftForearm, v3(-l.ForearmBend, 0, 0), rate)
	p.Set(components.JointRightForearm, v3(-l.ForearmBend, 0, 0), rate)
	p.Set(components.JointLeftHand, v3(0, 0, 0), rate)
	p.Set(components.JointRightHand, v3(0, 0, 0), rate)

	p.Set(components.JointHips, v3(0, 0.1*s, 0), rate)
	p.SetHips(v3(0, -l.BobHeight*math.Abs(co), 0), rate)
	p.Set(components.JointTorso, v3(lean, -0.08*s, 0), rate)
	p.Set(components.JointNeck, v3(-lean*0.5, 0, 0), rate)
}

func locomotionJump(c *animContext) {
	l := cfg.Locomotion
	p := &c.pose
	rate := tempoFast.rate()

	p.Set(components.JointLeftThigh, v3(-l.JumpTuck, 0, 0), rate)
	p.Set(components.JointRightThigh, v3(-l.JumpTuck*0.6, 0, 0), rate)
	p.Set(components.JointLeftShin, v3(l.JumpKnee, 0, 0), rate)
	p.Set(components.JointRightShin, v3(l.JumpKnee*0.8, 0, 0), rate)
	p.Set(components.JointLeftArm, v3(-l.JumpArmRaise, 0, 0.3), rate)
	p.Set(components.JointRightArm, v3(-l.JumpArmRaise, 0, -0.3), rate)
	p.Set(components.JointLeftForearm, v3(-0.4, 0, 0), rate)
	p.Set(components.JointRightForearm, v3(-0.4, 0, 0), rate)
	p.Set(components.JointTorso, v3(0.1, 0, 0), rate)
	p.Set(components.JointHips, v3(0, 0, 0), rate)
	p.SetHips(v3(0, 0.05, 0), rate)
	p.ResetFeet(rate)
}

func relaxedArms(p *Pose, rate, breath float64) {
	p.Set(components.JointLeftArm, v3(breath, 0, 0.1), rate)
	p.Set(components.JointRightArm, v3(breath, 0, -0.1), rate)
	p.Set(components.JointLeftForearm, v3(-0.15, 0, 0), rate)
	p.Set(components.JointRightForearm, v3(-0.15, 0, 0), rate)
	p.Set(components.JointLeftHand, v3(0, 0, 0), rate)
	p.Set(components.JointRightHand, v3(0, 0, 0), rate)
	p.Set(components.JointLeftFingers, v3(0.2, 0, 0), rate)
	p.Set(components.JointRightFingers, v3(0.2, 0, 0), rate)
	p.Set(components.JointLeftThumb, v3(0.1, 0, 0), rate)
	p.Set(components.JointRightThumb, v3(0.1, 0, 0), rate)
}

// guardArms raises both fists in front of the face.
func guardArms(p *Pose, rate float64) {
	guardHand(p, components.JointLeftArm, components.JointLeftForearm, 1, rate)
	guardHand(p, components.JointRightArm, components.JointRightForearm, -1, rate)
	curlFingers(p, components.JointLeftFingers, components.JointLeftThumb, 1, rate)
	curlFingers(p, components.JointRightFingers, components.JointRightThumb, 1, rate)
}

// guardHand holds one arm in guard; side is +1 for left, -1 for right.
func guardHand(p *Pose, arm, forearm components.JointID, side, rate float64) {
	p.Set(arm, v3(-0.9, 0, 0.25*side), rate)
	p.Set(forearm, v3(-1.9, 0.3*side, 0), rate)
}

// curlFingers closes a hand proportionally to tight in [0,1].
func curlFingers(p *Pose, fingers, thumb components.JointID, tight, rate float64) {
	p.Set(fingers, v3(cfg.Melee.FingerCurl*tight, 0, 0), rate)
	p.Set(thumb, v3(cfg.Melee.ThumbCurl*tight, 0, 0), rate)
}
