package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type capsule struct {
	a, b   mgl64.Vec3
	radius float64
}

// thighCapsule returns a thigh collider in hips-local space.
func thighCapsule(thigh *components.Joint) capsule {
	a := thigh.Offset.Add(thigh.Position)
	b := a.Add(thigh.Quat().Rotate(mgl64.Vec3{0, -cfg.Cloth.ThighLength, 0}))
	return capsule{a: a, b: b, radius: cfg.Cloth.ColliderRadius}
}

// animateCloth steps the lower skirt vertices: a spring toward rest, push-out
// from both thighs, damping, then semi-implicit Euler.
func animateCloth(c *animContext) {
	skirt := c.rig.Skirt
	cloth := c.cloth
	if skirt == nil || cloth == nil || len(cloth.Rest) != len(skirt.Vertices) {
		return
	}
	stepCloth(skirt, cloth, [2]capsule{thighCapsule(c.rig.LeftThigh), thighCapsule(c.rig.RightThigh)}, c.frame.DT)
}

// stepCloth advances the skirt simulation by dt against the given colliders.
func stepCloth(skirt *components.Mesh, cloth *components.ClothData, colliders [2]capsule, dt float64) {
	k := cfg.Cloth
	for _, i := range cloth.Lower {
		pos := skirt.Vertices[i]
		v := cloth.Velocity[i]

		v = v.Add(cloth.Rest[i].Sub(pos).Mul(k.Stiffness * dt))
		for _, col := range colliders {
			v = v.Add(pushOut(pos, col).Mul(k.PushStrength * dt))
		}
		v = gamemath.ApplyDrag(v, k.Damping, dt)

		cloth.Velocity[i] = v
		skirt.Vertices[i] = pos.Add(v.Mul(dt))
	}
}

// pushOut returns the penetration vector of p into the capsule, or zero when
// p is outside it or sits on its axis.
func pushOut(p mgl64.Vec3, col capsule) mgl64.Vec3 {
	d := p.Sub(gamemath.ClosestOnSegment(p, col.a, col.b))
	dist := d.Len()
	if dist >= col.radius || dist < gamemath.Epsilon {
		return mgl64.Vec3{}
	}
	return d.Mul((col.radius - dist) / dist)
}
