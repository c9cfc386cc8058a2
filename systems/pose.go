package systems

import (
	"github.com/automoto/marionette/components"
	"github.com/automoto/marionette/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type jointTarget struct {
	set  bool
	rot  mgl64.Vec3
	rate float64
}

// Pose collects the joint targets produced by the active layers for one
// frame. Nothing touches the rig until Apply, which blends every target
// through the damped driver.
type Pose struct {
	joints   [components.JointCount]jointTarget
	reserved [components.JointCount]bool

	hipsSet  bool
	hipsPos  mgl64.Vec3
	hipsRate float64
}

// Set records the rotation target for a joint. Reserved joints keep the
// target of the layer that reserved them.
func (p *Pose) Set(id components.JointID, rot mgl64.Vec3, rate float64) {
	if p.reserved[id] {
		return
	}
	p.joints[id] = jointTarget{set: true, rot: rot, rate: rate}
}

// SetHips records the hips translation target.
func (p *Pose) SetHips(pos mgl64.Vec3, rate float64) {
	p.hipsSet = true
	p.hipsPos = pos
	p.hipsRate = rate
}

// Reserve stops later layers from overriding the given joints this frame.
func (p *Pose) Reserve(ids ...components.JointID) {
	for _, id := range ids {
		p.reserved[id] = true
	}
}

// Target returns the recorded target of a joint.
func (p *Pose) Target(id components.JointID) (mgl64.Vec3, bool) {
	t := p.joints[id]
	return t.rot, t.set
}

// Hips returns the recorded hips translation target.
func (p *Pose) Hips() (mgl64.Vec3, bool) {
	return p.hipsPos, p.hipsSet
}

// ResetFeet targets a neutral foot pose, clearing any roll correction.
func (p *Pose) ResetFeet(rate float64) {
	p.Set(components.JointLeftFoot, mgl64.Vec3{}, rate)
	p.Set(components.JointRightFoot, mgl64.Vec3{}, rate)
}

// Apply blends the rig toward every recorded target. Joints without a target
// hold their current pose.
func (p *Pose) Apply(rig *components.RigData, dt float64) {
	for i := range p.joints {
		t := &p.joints[i]
		if !t.set {
			continue
		}
		j := rig.Joint(components.JointID(i))
		j.Rotation = gamemath.DampVec3(j.Rotation, t.rot, gamemath.DampFactor(t.rate, dt))
	}
	if p.hipsSet {
		rig.Hips.Position = gamemath.DampVec3(rig.Hips.Position, p.hipsPos, gamemath.DampFactor(p.hipsRate, dt))
	}
}

// ResetFeet snaps both feet to neutral. Timelines clear foot roll through the
// pose instead; this is for callers resetting a rig outside the frame loop.
func ResetFeet(rig *components.RigData) {
	rig.LeftFoot.Rotation = mgl64.Vec3{}
	rig.RightFoot.Rotation = mgl64.Vec3{}
}

var (
	leftArmJoints = []components.JointID{
		components.JointLeftArm, components.JointLeftForearm, components.JointLeftHand,
		components.JointLeftFingers, components.JointLeftThumb,
	}
	rightArmJoints = []components.JointID{
		components.JointRightArm, components.JointRightForearm, components.JointRightHand,
		components.JointRightFingers, components.JointRightThumb,
	}
)

func v3(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}
