package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ClothData is the skirt particle state. Rest positions are captured when the
// actor is created; only vertices listed in Lower are simulated, the rest
// move rigidly with the pelvis.
type ClothData struct {
	Rest     []mgl64.Vec3
	Velocity []mgl64.Vec3
	Lower    []int
}

var Cloth = donburi.NewComponentType[ClothData]()
