package factory

import (
	"github.com/automoto/marionette/archetypes"
	"github.com/automoto/marionette/components"
	"github.com/automoto/marionette/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle adds a solid box whose footprint starts at x,z and spans
// w by d meters, with its walkable surface at height top.
func CreateObstacle(ecs *ecs.ECS, x, z, w, d, top float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	spaceEntry, ok := components.Space.First(ecs.World)
	scale, ox, oz := 1.0, 0.0, 0.0
	if ok {
		s := components.Space.Get(spaceEntry)
		scale, ox, oz = s.Scale, s.OriginX, s.OriginZ
	}

	obj := resolv.NewObject((x-ox)*scale, (z-oz)*scale, w*scale, d*scale, tags.ResolvObstacle)
	obj.Data = obstacle // Link for O(1) lookup

	components.Obstacle.SetValue(obstacle, components.ObstacleData{Object: obj, Top: top})

	if ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obstacle
}
