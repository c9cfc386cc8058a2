package systems

import (
	"math"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func isRagdolling(a *components.ActorData) bool {
	return a.Status.IsDragged || a.Drag.RecoverTimer > 0
}

// ragdollAlpha is 1 while dragged and fades linearly to 0 over the recovery
// window after release.
func ragdollAlpha(a *components.ActorData) float64 {
	if a.Status.IsDragged {
		return 1
	}
	if cfg.Ragdoll.RecoveryWindow <= 0 {
		return 0
	}
	return gamemath.Clamp01(a.Drag.RecoverTimer / cfg.Ragdoll.RecoveryWindow)
}

// limbNoise phases keep the limbs from wobbling in unison.
var limbNoise = map[components.JointID]float64{
	components.JointLeftArm:    0,
	components.JointRightArm:   1.7,
	components.JointLeftThigh:  3.1,
	components.JointRightThigh: 4.6,
	components.JointHead:       2.3,
}

// animateRagdoll drives the body from the drag velocity and gravity, both
// expressed in the hips' local frame.
func animateRagdoll(c *animContext) {
	r := cfg.Ragdoll
	a := c.actor
	p := &c.pose
	alpha := ragdollAlpha(a)

	toLocal := mgl64.QuatRotate(a.Yaw, up).Mul(c.rig.Hips.Quat()).Inverse()
	drag := toLocal.Rotate(a.Drag.Velocity)
	down := toLocal.Rotate(mgl64.Vec3{0, -1, 0})
	speed := a.Drag.Velocity.Len()

	noise := func(id components.JointID) float64 {
		return math.Sin(a.Clock*r.NoiseSpeed+limbNoise[id]) * r.NoiseAmount * speed
	}

	// The hips lean away from the pull and sag.
	tiltX := gamemath.Clamp(-drag.Z()*r.HipTilt, -r.MaxTilt, r.MaxTilt)
	tiltZ := gamemath.Clamp(drag.X()*r.HipTilt, -r.MaxTilt, r.MaxTilt)
	p.Set(components.JointHips, v3(tiltX, 0, tiltZ).Mul(alpha), r.Rate)
	p.SetHips(v3(0, -r.HipSag*alpha, 0), r.Rate)
	p.Set(components.JointTorso, v3(tiltX*0.5, 0, tiltZ*0.5).Mul(alpha), r.Rate)

	// Limbs trail behind the drag and droop toward local down.
	swingX := drag.Z()*r.LimbSwing - down.Z()*r.GravityDroop
	swingZ := -drag.X()*r.LimbSwing + down.X()*r.GravityDroop
	limb := func(id components.JointID, splay, scale float64) {
		n := noise(id)
		rot := v3(swingX*scale+n, 0, swingZ*scale+splay+n*0.5)
		p.Set(id, rot.Mul(alpha), r.Rate)
	}
	limb(components.JointLeftArm, 0.3, 1)
	limb(components.JointRightArm, -0.3, 1)
	limb(components.JointLeftThigh, 0.05, 0.6)
	limb(components.JointRightThigh, -0.05, 0.6)

	p.Set(components.JointLeftForearm, v3(-0.3, 0, 0).Mul(alpha), r.Rate)
	p.Set(components.JointRightForearm, v3(-0.3, 0, 0).Mul(alpha), r.Rate)
	p.Set(components.JointLeftShin, v3(0.25, 0, 0).Mul(alpha), r.Rate)
	p.Set(components.JointRightShin, v3(0.25, 0, 0).Mul(alpha), r.Rate)
	p.Set(components.JointLeftFingers, v3(0.3, 0, 0).Mul(alpha), r.Rate)
	p.Set(components.JointRightFingers, v3(0.3, 0, 0).Mul(alpha), r.Rate)
	p.Set(components.JointNeck, v3(-tiltX*0.3, 0, 0).Mul(alpha), r.Rate)
	p.Set(components.JointHead, v3(0.25+noise(components.JointHead), 0, -tiltZ*0.3).Mul(alpha), r.Rate)
	p.ResetFeet(r.Rate)
}
