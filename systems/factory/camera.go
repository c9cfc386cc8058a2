package factory

import (
	"github.com/automoto/marionette/archetypes"
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the preview camera. The orbit sequence sweeps the
// view yaw back and forth around the actor.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	orbit := gween.NewSequence()
	a := float32(cfg.Preview.OrbitYaw)
	d := float32(cfg.Preview.OrbitDuration)
	orbit.Add(
		gween.New(0, a, d, ease.InOutSine),
		gween.New(a, -a, 2*d, ease.InOutSine),
		gween.New(-a, 0, d, ease.InOutSine),
	)
	components.Camera.Set(camera, &components.CameraData{Orbit: orbit})
	return camera
}

// CreatePreviewSettings creates the settings entity with the given values.
func CreatePreviewSettings(ecs *ecs.ECS, s components.PreviewSettingsData) *donburi.Entry {
	e := archetypes.Settings.Spawn(ecs)
	components.PreviewSettings.SetValue(e, s)
	return e
}

// CreateInput creates the entity holding the preview's input state.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
