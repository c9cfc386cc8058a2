package systems

import (
	"math"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// animateFace runs the blink cycle, idle gaze wander and the weighted
// head-look on top of whatever the body layer produced. It drives its joints
// through its own pose pass since the body pose has already been applied.
func animateFace(c *animContext) {
	a := c.actor
	dt := c.frame.DT
	g := cfg.Gaze
	var p Pose

	closure := stepBlink(&a.Face, dt)
	if a.Status.IsDragged || ragdollAlpha(a) > g.HeavyRecovery {
		closure = 1
	}
	p.Set(components.JointLeftUpperLid, v3(g.LidClosed*closure, 0, 0), g.LidRate)
	p.Set(components.JointRightUpperLid, v3(g.LidClosed*closure, 0, 0), g.LidRate)
	p.Set(components.JointLeftLowerLid, v3(-g.LowerLidClosed*closure, 0, 0), g.LidRate)
	p.Set(components.JointRightLowerLid, v3(-g.LowerLidClosed*closure, 0, 0), g.LidRate)

	stepGaze(a, dt)

	w := gamemath.Clamp01(a.Face.HeadLookWeight)
	eye := a.Face.EyeLook.Mul(1 - w)
	p.Set(components.JointLeftEye, v3(eye.Y(), eye.X(), 0), g.LidRate)
	p.Set(components.JointRightEye, v3(eye.Y(), eye.X(), 0), g.LidRate)

	mouth := 0.0
	if a.Status.IsTalking {
		mouth = g.TalkOpen * (0.5 + 0.5*math.Sin(a.Clock*g.TalkFlapSpeed))
	}
	mouth = gamemath.Lerp(mouth, g.TalkOpen, w)
	p.Set(components.JointMouth, v3(mouth, 0, 0), g.FaceRate)

	if w > 0 {
		pitch, yaw := headLookAngles(c)
		head := v3(pitch*(1-g.NeckShare), yaw*(1-g.NeckShare), 0)
		neck := v3(pitch*g.NeckShare, yaw*g.NeckShare, 0)
		p.Set(components.JointHead, lerpVec3(c.rig.Head.Rotation, head, w), g.FaceRate)
		p.Set(components.JointNeck, lerpVec3(c.rig.Neck.Rotation, neck, w), g.FaceRate)
	}

	p.Apply(c.rig, dt)
}

// stepBlink advances the blink cycle and returns the lid closure in [0,1].
func stepBlink(f *components.FaceState, dt float64) float64 {
	g := cfg.Gaze
	f.BlinkTimer += dt
	if !f.Blinking {
		if f.BlinkTimer >= g.BlinkInterval {
			f.Blinking = true
			f.BlinkTimer = 0
		}
		return 0
	}
	if f.BlinkTimer >= g.BlinkDuration {
		f.Blinking = false
		f.BlinkTimer = 0
		return 0
	}
	return gamemath.HalfSine(f.BlinkTimer / g.BlinkDuration)
}

// stepGaze picks a new gaze target at random intervals and eases the eyes
// toward it.
func stepGaze(a *components.ActorData, dt float64) {
	g := cfg.Gaze
	f := &a.Face
	f.GazeTimer -= dt
	if f.GazeTimer <= 0 && a.Rand != nil {
		f.GazeTimer = g.GazeMinInterval + a.Rand.Float64()*(g.GazeMaxInterval-g.GazeMinInterval)
		if a.Rand.Float64() < g.RecenterChance {
			f.EyeTarget = mgl64.Vec2{}
		} else {
			f.EyeTarget = mgl64.Vec2{
				(a.Rand.Float64()*2 - 1) * g.EyeMaxYaw,
				(a.Rand.Float64()*2 - 1) * g.EyeMaxPitch,
			}
		}
	}
	k := gamemath.ExpFactor(g.EyeSmoothing, dt)
	f.EyeLook = f.EyeLook.Add(f.EyeTarget.Sub(f.EyeLook).Mul(k))
}

// headLookAngles returns the clamped pitch and yaw that turn the head toward
// the look target, in the actor's local frame.
func headLookAngles(c *animContext) (pitch, yaw float64) {
	g := cfg.Gaze
	a := c.actor
	headPos := c.rig.World(c.rig.Head, a.Position, a.Yaw).Col(3).Vec3()
	dir := mgl64.QuatRotate(-a.Yaw, up).Rotate(a.Face.LookTarget.Sub(headPos))
	horiz := math.Hypot(dir.X(), dir.Z())
	if horiz < gamemath.Epsilon && math.Abs(dir.Y()) < gamemath.Epsilon {
		return 0, 0
	}
	yaw = gamemath.Clamp(math.Atan2(dir.X(), dir.Z()), -g.HeadMaxYaw, g.HeadMaxYaw)
	// Positive X rotation tips the face down.
	pitch = gamemath.Clamp(-math.Atan2(dir.Y(), horiz), -g.HeadMaxPitch, g.HeadMaxPitch)
	return pitch, yaw
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
