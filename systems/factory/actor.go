package factory

import (
	"math/rand"

	"github.com/automoto/marionette/archetypes"
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns a humanoid at position with its rig, skirt cloth and a
// prop dangling from the right hand. All per-actor simulation state is built
// here; nothing is initialised lazily later.
func CreateActor(ecs *ecs.ECS, position mgl64.Vec3, seed int64) *donburi.Entry {
	actor := archetypes.Actor.Spawn(ecs)

	rig := NewHumanoidRig()
	components.Rig.Set(actor, rig)
	components.Cloth.SetValue(actor, NewCloth(rig.Skirt))

	components.Actor.SetValue(actor, components.ActorData{
		Position: position,
		HeldItem: cfg.ItemFishingRod,
		Face: components.FaceState{
			GazeTimer: cfg.Gaze.GazeMinInterval,
		},
		Rand: rand.New(rand.NewSource(seed)),
	})

	// Hang the prop below the rod tip.
	t := cfg.Pendulum.RodTip
	tip := rig.World(rig.RightHand, position, 0).Mul4x1(mgl64.Vec4{t[0], t[1], t[2], 1}).Vec3()
	components.Pendulum.SetValue(actor, components.PendulumData{
		Position: tip.Sub(mgl64.Vec3{0, cfg.Pendulum.StringLength, 0}),
		Length:   cfg.Pendulum.StringLength,
		Line: components.LineSegment{
			Position: mgl64.Vec3{t[0], t[1] - cfg.Pendulum.StringLength/2, t[2]},
			Rotation: mgl64.QuatBetweenVectors(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}),
			Length:   cfg.Pendulum.StringLength,
		},
	})

	return actor
}
