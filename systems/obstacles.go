package systems

import (
	"github.com/automoto/marionette/components"
	"github.com/automoto/marionette/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObstacleField answers ground-height queries against the obstacle
// footprints held in a resolv space. It adds a probe object to the space for
// the duration of each query, so it must not be shared across goroutines.
type ObstacleField struct {
	space *components.SpaceData
}

func NewObstacleField(space *components.SpaceData) *ObstacleField {
	return &ObstacleField{space: space}
}

// SurfaceHeight returns the highest obstacle top whose footprint covers x,z.
func (f *ObstacleField) SurfaceHeight(x, z float64) (float64, bool) {
	if f == nil || f.space == nil || f.space.Space == nil {
		return 0, false
	}
	gx := (x - f.space.OriginX) * f.space.Scale
	gz := (z - f.space.OriginZ) * f.space.Scale
	if gx < 0 || gz < 0 {
		return 0, false
	}

	probe := resolv.NewObject(gx, gz, 1, 1, tags.ResolvProbe)
	f.space.Add(probe)
	defer f.space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvObstacle)
	if collision == nil {
		return 0, false
	}

	// Check reports everything sharing a cell; keep only footprints that
	// actually contain the point.
	top, found := 0.0, false
	for _, o := range collision.Objects {
		if gx < o.X || gx >= o.X+o.W || gz < o.Y || gz >= o.Y+o.H {
			continue
		}
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		h := components.Obstacle.Get(e).Top
		if !found || h > top {
			top, found = h, true
		}
	}
	return top, found
}
