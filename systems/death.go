package systems

import (
	"math"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// startDeath samples the collapse variation once and builds the fall tweens
// from it.
func startDeath(c *animContext) {
	d := cfg.Death
	a := c.actor
	v := &a.DeathVariation

	v.FallDir, v.StumbleDir = 1, 1
	if a.Rand != nil {
		if a.Rand.Float64() < 0.5 {
			v.FallDir = -1
		}
		if a.Rand.Float64() < 0.5 {
			v.StumbleDir = -1
		}
		v.Twist = (a.Rand.Float64()*2 - 1) * d.MaxTwist
		v.SideBias = a.Rand.Float64()*2 - 1
	}

	c.death.Started = true
	c.death.Drop = gween.New(float32(d.BuckleDrop), float32(d.GroundDrop), float32(d.FallDuration), ease.InCubic)
	c.death.Pitch = gween.New(0, float32(-d.FallPitch*v.FallDir), float32(d.FallDuration), ease.InCubic)
}

// clearDeath forgets the collapse so a revived actor samples a fresh one.
func clearDeath(c *animContext) {
	c.death.Started = false
	c.death.Drop = nil
	c.death.Pitch = nil
	c.actor.DeathVariation = components.DeathVariation{}
}

// animateDeath buckles the knees, falls with a cubic ease-in in the sampled
// direction, then settles with a decaying bounce. FallDir +1 falls backward.
func animateDeath(c *animContext) {
	if !c.death.Started {
		startDeath(c)
	}
	d := cfg.Death
	v := c.actor.DeathVariation
	p := &c.pose
	rate := tempoFast.rate()
	elapsed := c.actor.Timers.Death

	var drop, pitch, twist, roll, fall float64
	switch {
	case elapsed < d.BuckleDuration:
		b := gamemath.EaseInOutSine(elapsed / d.BuckleDuration)
		drop = d.BuckleDrop * b
		roll = d.StumbleAngle * v.StumbleDir * b
		p.Set(components.JointLeftThigh, v3(-0.6*b, 0, 0), rate)
		p.Set(components.JointRightThigh, v3(-0.5*b, 0, 0), rate)
		p.Set(components.JointLeftShin, v3(1.2*b, 0, 0), rate)
		p.Set(components.JointRightShin, v3(1.1*b, 0, 0), rate)
		p.Set(components.JointTorso, v3(0.35*b, 0, 0), rate)
		p.Set(components.JointHead, v3(0.3*b, 0, 0), rate)
	case elapsed < d.BuckleDuration+d.FallDuration:
		t := float32(elapsed - d.BuckleDuration)
		dv, _ := c.death.Drop.Set(t)
		pv, _ := c.death.Pitch.Set(t)
		drop, pitch = float64(dv), float64(pv)
		fall = gamemath.EaseInCubic(float64(t) / d.FallDuration)
		twist = v.Twist * fall
		roll = d.StumbleAngle * v.StumbleDir * (1 - fall)
	default:
		t := elapsed - d.BuckleDuration - d.FallDuration
		fall = 1
		drop = d.GroundDrop - math.Abs(gamemath.DecayingBounce(t, d.BounceHeight, d.BounceDecay, d.BounceFreq))
		pitch = -d.FallPitch*v.FallDir + gamemath.DecayingBounce(t, d.BounceAngle, d.BounceDecay, d.BounceFreq)*v.FallDir
		twist = v.Twist
	}

	if elapsed >= d.BuckleDuration {
		// Legs straighten out behind the fall, arms fling toward the leading side.
		p.Set(components.JointLeftThigh, v3(0.2*v.FallDir*fall, 0, 0.1), rate)
		p.Set(components.JointRightThigh, v3(0.2*v.FallDir*fall, 0, -0.1), rate)
		p.Set(components.JointLeftShin, v3(0.3*(1-fall), 0, 0), rate)
		p.Set(components.JointRightShin, v3(0.3*(1-fall), 0, 0), rate)
		p.Set(components.JointTorso, v3(-0.15*v.FallDir*fall, 0, 0), rate)
		p.Set(components.JointHead, v3(-0.3*v.FallDir*fall, 0, 0), rate)
	}
	lead := 0.5 + 0.5*v.SideBias
	p.Set(components.JointLeftArm, v3(-0.9*v.FallDir*fall, 0, 0.3+1.1*lead*fall), rate)
	p.Set(components.JointRightArm, v3(-0.9*v.FallDir*fall, 0, -0.3-1.1*(1-lead)*fall), rate)
	p.Set(components.JointLeftForearm, v3(-0.3, 0, 0), rate)
	p.Set(components.JointRightForearm, v3(-0.3, 0, 0), rate)
	p.Set(components.JointLeftFingers, v3(0.4, 0, 0), rate)
	p.Set(components.JointRightFingers, v3(0.4, 0, 0), rate)

	p.Set(components.JointHips, v3(pitch, twist, roll), rate)
	p.SetHips(v3(0, -drop, 0), rate)
	p.ResetFeet(rate)
}
