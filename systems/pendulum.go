package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

var up = mgl64.Vec3{0, 1, 0}

// rodTip returns the world position of the rod tip held in the right hand.
func rodTip(a *components.ActorData, rig *components.RigData) mgl64.Vec3 {
	t := cfg.Pendulum.RodTip
	m := rig.World(rig.RightHand, a.Position, a.Yaw)
	return m.Mul4x1(mgl64.Vec4{t[0], t[1], t[2], 1}).Vec3()
}

// RodTip returns the world position the prop string hangs from.
func RodTip(e *donburi.Entry) mgl64.Vec3 {
	return rodTip(components.Actor.Get(e), components.Rig.Get(e))
}

// ResetDangle ends any cast and hangs the prop straight below the rod tip at
// rest.
func ResetDangle(e *donburi.Entry) {
	a := components.Actor.Get(e)
	rig := components.Rig.Get(e)
	resetDangle(a, rig, components.Pendulum.Get(e))
}

// AnimateActivePhysics steps a cast prop for one frame. It reports whether the
// prop was reeled into the capture radius, in which case it has already been
// reset to dangle. The caller owns the fishing flags.
func AnimateActivePhysics(e *donburi.Entry, dt float64, env Environment) bool {
	a := components.Actor.Get(e)
	rig := components.Rig.Get(e)
	pend := components.Pendulum.Get(e)
	if !pend.Active {
		return false
	}
	tip := rodTip(a, rig)
	if stepActive(pend, tip, a.Status.IsReeling, dt, env) {
		resetDangle(a, rig, pend)
		return true
	}
	updateLine(a, rig, pend, tip)
	return false
}

func resetDangle(a *components.ActorData, rig *components.RigData, pend *components.PendulumData) {
	tip := rodTip(a, rig)
	pend.Active = false
	pend.Position = tip.Sub(up.Mul(pend.Length))
	pend.Velocity = mgl64.Vec3{}
	updateLine(a, rig, pend, tip)
}

// restProp is the default prop step for every layer that does not own it.
func restProp(c *animContext) {
	if c.pendulum.Active {
		resetDangle(c.actor, c.rig, c.pendulum)
		return
	}
	tip := rodTip(c.actor, c.rig)
	stepResting(c.pendulum, tip, c.frame.DT)
	updateLine(c.actor, c.rig, c.pendulum, tip)
}

// stepResting integrates the prop as a pendulum on an inextensible string.
func stepResting(pend *components.PendulumData, tip mgl64.Vec3, dt float64) {
	p := cfg.Pendulum
	pend.Velocity = pend.Velocity.Add(mgl64.Vec3{0, -p.Gravity * dt, 0})
	pend.Velocity = gamemath.ApplyDrag(pend.Velocity, p.AirDrag, dt)
	pend.Position = pend.Position.Add(pend.Velocity.Mul(dt))

	offset := pend.Position.Sub(tip)
	dist := offset.Len()
	if dist <= pend.Length || dist < gamemath.Epsilon {
		return
	}
	dir := offset.Mul(1 / dist)
	pend.Position = tip.Add(dir.Mul(pend.Length))
	// The string only pulls: drop the outward radial speed, keep the swing.
	if radial := pend.Velocity.Dot(dir); radial > 0 {
		pend.Velocity = pend.Velocity.Sub(dir.Mul(radial))
	}
}

// stepActive integrates a cast prop in free flight and reports whether it
// has been reeled in.
func stepActive(pend *components.PendulumData, tip mgl64.Vec3, reeling bool, dt float64, env Environment) bool {
	p := cfg.Pendulum
	v := pend.Velocity.Add(mgl64.Vec3{0, -p.Gravity * dt, 0})

	if depth := p.WaterLevel - pend.Position.Y(); depth > 0 {
		v[1] += p.Buoyancy * depth * dt
		v = gamemath.ApplyDrag(v, p.WaterDrag, dt)
	} else {
		v = gamemath.ApplyDrag(v, p.AirDrag, dt)
	}

	if reeling {
		if accel, _, ok := gamemath.HomingAccel(pend.Position, tip, p.ReelForce); ok {
			v = v.Add(accel.Mul(dt))
		}
		v = gamemath.ApplyDrag(v, p.ReelDamping, dt)
	}

	pos := pend.Position.Add(v.Mul(dt))
	if ground := env.GroundHeight(pos.X(), pos.Z()); pos.Y() < ground {
		pos[1] = ground
		if v.Y() < 0 {
			v[1] = -v.Y() * p.Restitution
		}
		v[0] *= p.GroundFriction
		v[2] *= p.GroundFriction
		if v.Len() < p.RestSpeed {
			v = mgl64.Vec3{}
		}
	}
	pend.Position = pos
	pend.Velocity = v

	return reeling && pos.Sub(tip).Len() < p.CaptureRadius
}

// launchProp throws the prop from the rod tip along the actor's facing.
func launchProp(a *components.ActorData, pend *components.PendulumData, tip mgl64.Vec3) {
	p := cfg.Fishing
	forward := mgl64.Vec3{0, 0, 1}
	forward = mgl64.QuatRotate(a.Yaw, up).Rotate(forward)
	speed := p.CastSpeed + p.CastBonus*gamemath.Clamp01(a.FishingCharge/p.MaxCharge)

	pend.Active = true
	pend.Position = tip
	pend.Velocity = forward.Mul(speed).Add(up.Mul(p.CastLift))
	a.FishingCharge = 0
}

// updateLine rebuilds the line segment from the rod tip to the prop in the
// rod hand's local space.
func updateLine(a *components.ActorData, rig *components.RigData, pend *components.PendulumData, tip mgl64.Vec3) {
	inv := rig.World(rig.RightHand, a.Position, a.Yaw).Inv()
	from := inv.Mul4x1(tip.Vec4(1)).Vec3()
	to := inv.Mul4x1(pend.Position.Vec4(1)).Vec3()

	span := to.Sub(from)
	pend.Line.Position = from.Add(span.Mul(0.5))
	pend.Line.Length = span.Len()
	if dir, ok := gamemath.SafeNormalize(span); ok {
		pend.Line.Rotation = mgl64.QuatBetweenVectors(up, dir)
	} else {
		pend.Line.Rotation = mgl64.QuatIdent()
	}
}
