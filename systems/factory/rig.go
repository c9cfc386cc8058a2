package factory

import (
	"math"

	"github.com/automoto/marionette/components"
	"github.com/go-gl/mathgl/mgl64"
)

// Skirt rings, top to bottom: height below the hips and radius, in meters.
var skirtRings = [][2]float64{
	{0, 0.16},
	{-0.18, 0.2},
	{-0.35, 0.24},
}

const skirtSegments = 12

func joint(name string, parent *components.Joint, x, y, z float64) *components.Joint {
	return &components.Joint{Name: name, Parent: parent, Offset: mgl64.Vec3{x, y, z}}
}

// NewHumanoidRig builds the default rig in its bind pose: facing +Z, Y up,
// the actor's left on +X.
func NewHumanoidRig() *components.RigData {
	r := &components.RigData{}
	r.Hips = joint("hips", nil, 0, 0.95, 0)
	r.Torso = joint("torso", r.Hips, 0, 0.1, 0)
	r.Neck = joint("neck", r.Torso, 0, 0.45, 0)
	r.Head = joint("head", r.Neck, 0, 0.1, 0)
	r.Mouth = joint("mouth", r.Head, 0, 0.05, 0.09)

	r.LeftArm, r.LeftForearm, r.LeftHand, r.LeftFingers, r.LeftThumb = arm("left", r.Torso, 1)
	r.RightArm, r.RightForearm, r.RightHand, r.RightFingers, r.RightThumb = arm("right", r.Torso, -1)

	r.LeftThigh, r.LeftShin, r.LeftFoot = leg("left", r.Hips, 1)
	r.RightThigh, r.RightShin, r.RightFoot = leg("right", r.Hips, -1)

	r.LeftUpperLid = joint("left_upper_lid", r.Head, 0.035, 0.07, 0.085)
	r.LeftLowerLid = joint("left_lower_lid", r.Head, 0.035, 0.05, 0.085)
	r.RightUpperLid = joint("right_upper_lid", r.Head, -0.035, 0.07, 0.085)
	r.RightLowerLid = joint("right_lower_lid", r.Head, -0.035, 0.05, 0.085)
	r.LeftEye = joint("left_eye", r.Head, 0.035, 0.06, 0.08)
	r.RightEye = joint("right_eye", r.Head, -0.035, 0.06, 0.08)

	r.Skirt = NewSkirtMesh()
	return r
}

// arm builds a shoulder chain; side is +1 for left, -1 for right.
func arm(prefix string, torso *components.Joint, side float64) (a, f, h, fi, th *components.Joint) {
	a = joint(prefix+"_arm", torso, 0.19*side, 0.4, 0)
	f = joint(prefix+"_forearm", a, 0, -0.28, 0)
	h = joint(prefix+"_hand", f, 0, -0.25, 0)
	fi = joint(prefix+"_fingers", h, 0, -0.08, 0)
	th = joint(prefix+"_thumb", h, -0.03*side, -0.03, 0.02)
	return a, f, h, fi, th
}

func leg(prefix string, hips *components.Joint, side float64) (t, s, f *components.Joint) {
	t = joint(prefix+"_thigh", hips, 0.09*side, -0.05, 0)
	s = joint(prefix+"_shin", t, 0, -0.42, 0)
	f = joint(prefix+"_foot", s, 0, -0.42, 0)
	return t, s, f
}

// NewSkirtMesh returns a three-ring skirt around the hips in hips-local space.
func NewSkirtMesh() *components.Mesh {
	m := &components.Mesh{}
	for _, ring := range skirtRings {
		for i := 0; i < skirtSegments; i++ {
			a := 2 * math.Pi * float64(i) / skirtSegments
			m.Vertices = append(m.Vertices, mgl64.Vec3{ring[1] * math.Cos(a), ring[0], ring[1] * math.Sin(a)})
		}
	}
	return m
}

// NewCloth captures the mesh's rest pose. Vertices below the vertical
// midline are simulated; the rest follow the pelvis rigidly.
func NewCloth(m *components.Mesh) components.ClothData {
	c := components.ClothData{
		Rest:     make([]mgl64.Vec3, len(m.Vertices)),
		Velocity: make([]mgl64.Vec3, len(m.Vertices)),
	}
	if len(m.Vertices) == 0 {
		return c
	}
	minY, maxY := m.Vertices[0].Y(), m.Vertices[0].Y()
	for i, v := range m.Vertices {
		c.Rest[i] = v
		minY = math.Min(minY, v.Y())
		maxY = math.Max(maxY, v.Y())
	}
	mid := (minY + maxY) / 2
	for i, v := range m.Vertices {
		if v.Y() < mid {
			c.Lower = append(c.Lower, i)
		}
	}
	return c
}
