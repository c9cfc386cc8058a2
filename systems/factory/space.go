package factory

import (
	"github.com/automoto/marionette/archetypes"
	"github.com/automoto/marionette/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the obstacle space covering width x depth meters of
// the XZ plane starting at originX, originZ. scale is grid units per meter.
func CreateSpace(ecs *ecs.ECS, originX, originZ, width, depth, scale float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(int(width*scale), int(depth*scale), cellSize, cellSize),
		OriginX: originX,
		OriginZ: originZ,
		Scale:   scale,
	})
	return space
}
