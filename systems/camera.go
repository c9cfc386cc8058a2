package systems

import (
	"github.com/automoto/marionette/components"
	"github.com/automoto/marionette/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

const cameraFollowSmoothing = 0.1

// UpdateCamera follows the first actor and advances the orbit sweep.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.Orbit != nil {
		yaw, _, done := camera.Orbit.Update(float32(frameTime(e)))
		camera.Yaw = float64(yaw)
		if done {
			camera.Orbit.Reset()
		}
	}

	actorEntry, ok := tags.Actor.First(e.World)
	if !ok {
		return
	}
	a := components.Actor.Get(actorEntry)
	camera.Position.X += (a.Position.X() - camera.Position.X) * cameraFollowSmoothing
	camera.Position.Y += (a.Position.Z() - camera.Position.Y) * cameraFollowSmoothing
}

// project maps a world point to screen space. The view looks at the actor's
// right side, so forward is screen right, rotated by the camera yaw.
func project(camera *components.CameraData, p mgl64.Vec3, width, pixelsPerM, groundY float64) (float32, float32) {
	rel := p.Sub(mgl64.Vec3{camera.Position.X, 0, camera.Position.Y})
	q := mgl64.QuatRotate(-camera.Yaw, up).Rotate(rel)
	return float32(width/2 + q.Z()*pixelsPerM), float32(groundY - q.Y()*pixelsPerM)
}
