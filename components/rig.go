package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// JointID indexes the joints of a humanoid rig.
type JointID int

const (
	JointHips JointID = iota
	JointTorso
	JointNeck
	JointHead
	JointMouth
	JointLeftArm
	JointLeftForearm
	JointLeftHand
	JointLeftFingers
	JointLeftThumb
	JointRightArm
	JointRightForearm
	JointRightHand
	JointRightFingers
	JointRightThumb
	JointLeftThigh
	JointLeftShin
	JointLeftFoot
	JointRightThigh
	JointRightShin
	JointRightFoot
	JointLeftUpperLid
	JointLeftLowerLid
	JointRightUpperLid
	JointRightLowerLid
	JointLeftEye
	JointRightEye
	JointCount // Must be last - used for array sizing
)

// Joint is a node of the rig. Rotation is a local XYZ Euler rotation in
// radians. Position is an animated translation on top of Offset and is only
// driven on the hips.
type Joint struct {
	Name     string
	Parent   *Joint
	Offset   mgl64.Vec3
	Rotation mgl64.Vec3
	Position mgl64.Vec3
}

// Quat returns the joint's local rotation.
func (j *Joint) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(j.Rotation[0], j.Rotation[1], j.Rotation[2], mgl64.XYZ)
}

// Local returns the joint's transform relative to its parent.
func (j *Joint) Local() mgl64.Mat4 {
	t := j.Offset.Add(j.Position)
	return mgl64.Translate3D(t[0], t[1], t[2]).Mul4(j.Quat().Mat4())
}

// Mesh is a vertex set expressed in hips-local space.
type Mesh struct {
	Vertices []mgl64.Vec3
}

// RigData holds non-owning handles to an actor's joints. The rig is built by
// the model layer; the animator only writes Rotation and the hips Position.
type RigData struct {
	Hips, Torso, Neck, Head, Mouth *Joint

	LeftArm, LeftForearm, LeftHand, LeftFingers, LeftThumb      *Joint
	RightArm, RightForearm, RightHand, RightFingers, RightThumb *Joint

	LeftThigh, LeftShin, LeftFoot    *Joint
	RightThigh, RightShin, RightFoot *Joint

	LeftUpperLid, LeftLowerLid, RightUpperLid, RightLowerLid *Joint
	LeftEye, RightEye                                        *Joint

	Skirt *Mesh
}

// Joint returns the handle for id.
func (r *RigData) Joint(id JointID) *Joint {
	switch id {
	case JointHips:
		return r.Hips
	case JointTorso:
		return r.Torso
	case JointNeck:
		return r.Neck
	case JointHead:
		return r.Head
	case JointMouth:
		return r.Mouth
	case JointLeftArm:
		return r.LeftArm
	case JointLeftForearm:
		return r.LeftForearm
	case JointLeftHand:
		return r.LeftHand
	case JointLeftFingers:
		return r.LeftFingers
	case JointLeftThumb:
		return r.LeftThumb
	case JointRightArm:
		return r.RightArm
	case JointRightForearm:
		return r.RightForearm
	case JointRightHand:
		return r.RightHand
	case JointRightFingers:
		return r.RightFingers
	case JointRightThumb:
		return r.RightThumb
	case JointLeftThigh:
		return r.LeftThigh
	case JointLeftShin:
		return r.LeftShin
	case JointLeftFoot:
		return r.LeftFoot
	case JointRightThigh:
		return r.RightThigh
	case JointRightShin:
		return r.RightShin
	case JointRightFoot:
		return r.RightFoot
	case JointLeftUpperLid:
		return r.LeftUpperLid
	case JointLeftLowerLid:
		return r.LeftLowerLid
	case JointRightUpperLid:
		return r.RightUpperLid
	case JointRightLowerLid:
		return r.RightLowerLid
	case JointLeftEye:
		return r.LeftEye
	case JointRightEye:
		return r.RightEye
	}
	return nil
}

// Model returns the joint's transform in actor space by walking up the
// parent chain.
func (r *RigData) Model(j *Joint) mgl64.Mat4 {
	m := mgl64.Ident4()
	for n := j; n != nil; n = n.Parent {
		m = n.Local().Mul4(m)
	}
	return m
}

// World returns the joint's transform in world space for an actor root at
// position with the given yaw.
func (r *RigData) World(j *Joint, position mgl64.Vec3, yaw float64) mgl64.Mat4 {
	return Root(position, yaw).Mul4(r.Model(j))
}

// Root returns the actor root transform.
func Root(position mgl64.Vec3, yaw float64) mgl64.Mat4 {
	return mgl64.Translate3D(position[0], position[1], position[2]).Mul4(mgl64.HomogRotate3DY(yaw))
}

var Rig = donburi.NewComponentType[RigData]()
