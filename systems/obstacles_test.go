package systems

import (
	"testing"

	"github.com/automoto/marionette/components"
	"github.com/automoto/marionette/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestObstacleFieldSurfaceHeight(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, -6, -6, 12, 12, 16, 16)
	factory.CreateObstacle(e, -4, 0, 1, 2, 0.5)
	factory.CreateObstacle(e, 1, -2, 2, 1, 0.2)
	// Overlaps the dock; the higher top wins.
	factory.CreateObstacle(e, 2.5, -2, 0.5, 0.5, 0.6)

	field := NewObstacleField(components.Space.Get(spaceEntry))
	tests := []struct {
		name  string
		x, z  float64
		want  float64
		found bool
	}{
		{"rock", -3.5, 1, 0.5, true},
		{"rock far edge excluded", -3, 1, 0, false},
		{"dock", 1.5, -1.5, 0.2, true},
		{"stacked", 2.7, -1.8, 0.6, true},
		{"open ground", 0, 0, 0, false},
		{"outside the space", -10, 0, 0, false},
	}
	for _, tc := range tests {
		got, ok := field.SurfaceHeight(tc.x, tc.z)
		if ok != tc.found || got != tc.want {
			t.Errorf("%s: SurfaceHeight(%v, %v) = %v, %v; want %v, %v", tc.name, tc.x, tc.z, got, ok, tc.want, tc.found)
		}
	}

	before := len(components.Space.Get(spaceEntry).Objects())
	field.SurfaceHeight(0, 0)
	if after := len(components.Space.Get(spaceEntry).Objects()); after != before {
		t.Errorf("query left %d objects in the space, had %d", after, before)
	}
}

func TestEnvironmentPrefersObstacles(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, -6, -6, 12, 12, 16, 16)
	factory.CreateObstacle(e, 1, 2, 2, 2, 0.25)

	env := Environment{
		Obstacles: NewObstacleField(components.Space.Get(spaceEntry)),
		Terrain:   pondTerrain,
	}
	if got := env.GroundHeight(2, 3); got != 0.25 {
		t.Errorf("on the obstacle: %v, want 0.25", got)
	}
	if got := env.GroundHeight(0, 5); got != pondTerrain(0, 5) {
		t.Errorf("off the obstacle: %v, want terrain %v", got, pondTerrain(0, 5))
	}
}
