package archetypes

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Rig,
		components.Cloth,
		components.Pendulum,
		components.Death,
		components.Drive,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		tags.Preview,
		components.PreviewSettings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
