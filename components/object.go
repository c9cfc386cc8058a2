package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObstacleData is a solid volume the cast prop can land on. The resolv object
// covers its footprint on the XZ plane; Top is the walkable surface height.
type ObstacleData struct {
	*resolv.Object
	Top float64
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// SpaceData wraps the resolv space holding obstacle footprints. Origin and
// Scale map world XZ meters onto the space's non-negative grid.
type SpaceData struct {
	*resolv.Space
	OriginX, OriginZ float64
	Scale            float64 // grid units per meter
}

var Space = donburi.NewComponentType[SpaceData]()
