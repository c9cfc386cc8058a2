package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TerrainFunc returns the ground height at a world XZ point.
type TerrainFunc func(x, z float64) float64

// ObstacleQuery reports the highest solid surface covering a world XZ point.
type ObstacleQuery interface {
	SurfaceHeight(x, z float64) (float64, bool)
}

// Environment is what the animator may ask of the world.
type Environment struct {
	Obstacles ObstacleQuery
	Terrain   TerrainFunc
}

// GroundHeight returns the obstacle surface under x,z, falling back to the
// terrain. With neither available the ground is far enough below that
// nothing collides.
func (env Environment) GroundHeight(x, z float64) float64 {
	if env.Obstacles != nil {
		if h, ok := env.Obstacles.SurfaceHeight(x, z); ok {
			return h
		}
	}
	if env.Terrain != nil {
		return env.Terrain(x, z)
	}
	return -1e9
}

// Frame is the per-frame input to Animate.
type Frame struct {
	DT     float64
	Moving bool
	Intent components.Intent
	Env    Environment
}

type animContext struct {
	actor    *components.ActorData
	rig      *components.RigData
	cloth    *components.ClothData
	pendulum *components.PendulumData
	death    *components.DeathData
	frame    Frame
	pose     Pose
}

func newAnimContext(e *donburi.Entry, f Frame) *animContext {
	return &animContext{
		actor:    components.Actor.Get(e),
		rig:      components.Rig.Get(e),
		cloth:    components.Cloth.Get(e),
		pendulum: components.Pendulum.Get(e),
		death:    components.Death.Get(e),
		frame:    f,
	}
}

// Animate runs one frame of the animator for a single actor, mutating its rig
// in place.
func Animate(e *donburi.Entry, f Frame) {
	if f.DT > cfg.C.MaxFrameTime {
		f.DT = cfg.C.MaxFrameTime
	}
	c := newAnimContext(e, f)
	c.run()
}

// UpdateAnimation animates every actor using its Drive component and the
// obstacle space, if one exists.
func UpdateAnimation(ecs *ecs.ECS) {
	env := Environment{Terrain: pondTerrain}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		env.Obstacles = NewObstacleField(components.Space.Get(spaceEntry))
	}
	dt := frameTime(ecs)

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		drive := components.Drive.Get(e)
		Animate(e, Frame{
			DT:     dt,
			Moving: drive.Moving,
			Intent: drive.Intent,
			Env:    env,
		})
	})
}

// pondTerrain is flat ground that drops into a basin in front of the actor,
// deep enough for the cast prop to reach the water.
func pondTerrain(x, z float64) float64 {
	if z > cfg.Preview.PondEdge {
		return -cfg.Preview.PondDepth
	}
	return 0
}

// frameTime is the fixed tick scaled by the preview time scale.
func frameTime(ecs *ecs.ECS) float64 {
	dt := 1.0 / float64(cfg.Preview.TPS)
	if entry, ok := components.PreviewSettings.First(ecs.World); ok {
		s := components.PreviewSettings.Get(entry)
		if s.TimeScaleIndex >= 0 && s.TimeScaleIndex < len(cfg.PreviewSettings.TimeScales) {
			dt *= cfg.PreviewSettings.TimeScales[s.TimeScaleIndex]
		}
	}
	return dt
}
