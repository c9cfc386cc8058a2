package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/go-gl/mathgl/mgl64"
)

// strikeDef is one punch of the combo, authored for the left arm and
// mirrored for the right.
type strikeDef struct {
	right                      bool
	windupArm, windupForearm   mgl64.Vec3
	strikeArm, strikeForearm   mgl64.Vec3
	windupTwist, strikeTwist   float64 // multiples of TorsoTwist, left-handed
	recoverArm, recoverForearm mgl64.Vec3
}

var comboStrikes = []strikeDef{
	{ // jab
		right:          true,
		windupArm:      v3(-0.6, 0, 0.15),
		windupForearm:  v3(-2.1, 0, 0),
		strikeArm:      v3(-1.5, 0, 0.05),
		strikeForearm:  v3(-0.1, 0, 0),
		windupTwist:    -0.4,
		strikeTwist:    1,
		recoverArm:     v3(-0.9, 0, 0.25),
		recoverForearm: v3(-1.9, 0.3, 0),
	},
	{ // cross
		right:          false,
		windupArm:      v3(-0.5, 0, 0.2),
		windupForearm:  v3(-2.2, 0, 0),
		strikeArm:      v3(-1.55, 0, -0.1),
		strikeForearm:  v3(-0.05, 0, 0),
		windupTwist:    -0.5,
		strikeTwist:    1,
		recoverArm:     v3(-0.9, 0, 0.25),
		recoverForearm: v3(-1.9, 0.3, 0),
	},
	{ // hook
		right:          true,
		windupArm:      v3(-0.4, 0.3, 0.6),
		windupForearm:  v3(-1.6, 0, 0),
		strikeArm:      v3(-1.3, -0.9, 0.9),
		strikeForearm:  v3(-1.4, 0, 0),
		windupTwist:    -0.7,
		strikeTwist:    1.4,
		recoverArm:     v3(-0.9, 0, 0.25),
		recoverForearm: v3(-1.9, 0.3, 0),
	},
}

// mirror turns a left-arm rotation into the matching right-arm one.
func mirror(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], -v[1], -v[2]}
}

// meleeStrike returns which chained strike t falls in, the phase within it
// (0 windup, 1 strike, 2 recovery) and the phase progress.
func meleeStrike(t float64) (strike, ph int, progress float64) {
	m := cfg.Melee
	strikes := m.Strikes
	if strikes > len(comboStrikes) {
		strikes = len(comboStrikes)
	}
	strike = int(t / m.StrikeDuration)
	if strike >= strikes {
		strike = strikes - 1
	}
	if strike < 0 {
		strike = 0
	}
	local := t - float64(strike)*m.StrikeDuration
	thresholds := meleeThresholds(strike, strikes)
	ph = phaseIndex(thresholds, local)
	return strike, ph, phaseProgress(thresholds, ph, local)
}

func meleeThresholds(strike, strikes int) []float64 {
	m := cfg.Melee
	end := m.StrikeEnd
	if strike == strikes-1 {
		end = m.FinalStrikeEnd
	}
	return []float64{m.WindupEnd * m.StrikeDuration, end * m.StrikeDuration}
}

// fistTightness ramps from open through the windup to a full fist at the
// strike, easing off during recovery.
func fistTightness(ph int, progress float64) float64 {
	m := cfg.Melee
	switch ph {
	case 0:
		return m.WindupTight * progress
	case 1:
		return m.WindupTight + (1-m.WindupTight)*progress
	}
	return 1 - 0.5*progress
}

// animateMelee layers the three-strike combo over locomotion.
func animateMelee(c *animContext) {
	t := c.actor.Timers.Punch
	p := &c.pose

	// A new combo starts from flat hands so the fist curl reads clearly.
	if t <= c.frame.DT {
		for _, j := range []*components.Joint{c.rig.LeftFingers, c.rig.LeftThumb, c.rig.RightFingers, c.rig.RightThumb} {
			j.Rotation = mgl64.Vec3{}
		}
	}

	strike, ph, progress := meleeStrike(t)
	def := &comboStrikes[strike]

	var arm, forearm, fingers, thumb components.JointID
	var idleArm, idleForearm, idleFingers, idleThumb components.JointID
	side := 1.0
	if def.right {
		arm, forearm, fingers, thumb = components.JointRightArm, components.JointRightForearm, components.JointRightFingers, components.JointRightThumb
		idleArm, idleForearm, idleFingers, idleThumb = components.JointLeftArm, components.JointLeftForearm, components.JointLeftFingers, components.JointLeftThumb
		side = -1
	} else {
		arm, forearm, fingers, thumb = components.JointLeftArm, components.JointLeftForearm, components.JointLeftFingers, components.JointLeftThumb
		idleArm, idleForearm, idleFingers, idleThumb = components.JointRightArm, components.JointRightForearm, components.JointRightFingers, components.JointRightThumb
	}

	orient := func(v mgl64.Vec3) mgl64.Vec3 {
		if def.right {
			return mirror(v)
		}
		return v
	}

	var tp tempo
	var armRot, foreRot mgl64.Vec3
	var twist float64
	switch ph {
	case 0:
		tp, armRot, foreRot, twist = tempoSlow, def.windupArm, def.windupForearm, def.windupTwist
	case 1:
		tp, armRot, foreRot, twist = tempoFast, def.strikeArm, def.strikeForearm, def.strikeTwist
	default:
		tp, armRot, foreRot, twist = tempoMedium, def.recoverArm, def.recoverForearm, 0
	}
	rate := tp.rate()

	p.Set(arm, orient(armRot), rate)
	p.Set(forearm, orient(foreRot), rate)
	curlFingers(p, fingers, thumb, fistTightness(ph, progress), rate)

	// The other hand keeps guard.
	guardHand(p, idleArm, idleForearm, -side, tempoMedium.rate())
	curlFingers(p, idleFingers, idleThumb, 1, tempoMedium.rate())

	// Twisting the torso only reads right when planted.
	if c.frame.Intent.CombatStance && !c.frame.Moving {
		p.Set(components.JointTorso, v3(0.05, twist*cfg.Melee.TorsoTwist*side, 0), rate)
	}
}
