package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// LineSegment is the fishing line transform in the rod hand's local space:
// the segment midpoint, the rotation taking +Y onto the line, and the length
// used as the Y scale of a unit line mesh.
type LineSegment struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Length   float64
}

// PendulumData is the prop hanging from the rod tip. While Active is false it
// dangles on a fixed-length string; once cast it flies freely until reeled in.
type PendulumData struct {
	Position mgl64.Vec3 // world space
	Velocity mgl64.Vec3
	Length   float64
	Active   bool
	Line     LineSegment
}

var Pendulum = donburi.NewComponentType[PendulumData]()
