package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the preview camera. Yaw orbits the view around the actor;
// Orbit sweeps it back and forth.
type CameraData struct {
	Position math.Vec2 // world XY the screen centre follows
	Yaw      float64
	Orbit    *gween.Sequence
}

var Camera = donburi.NewComponentType[CameraData]()
