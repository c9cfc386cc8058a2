package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const boneWidth = 2

// DrawEnvironment draws the ground, the water line and obstacle tops.
func DrawEnvironment(e *ecs.ECS, screen *ebiten.Image) {
	p := cfg.Preview
	screen.Fill(p.Background)

	camera := previewCamera(e)
	toScreen := func(v mgl64.Vec3) (float32, float32) {
		return project(camera, v, float64(p.Width), p.PixelsPerM, p.GroundY)
	}

	wx, wy := toScreen(mgl64.Vec3{0, cfg.Pendulum.WaterLevel, p.PondEdge})
	vector.DrawFilledRect(screen, wx, wy, float32(p.Width)-wx, float32(p.Height)-wy, p.WaterColor, false)
	_, gy := toScreen(mgl64.Vec3{})
	vector.StrokeLine(screen, 0, gy, wx, gy, 1, p.Obstacles, false)

	s, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(s)
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		o := components.Obstacle.Get(entry)
		x0 := space.OriginX + o.X/space.Scale
		z0 := space.OriginZ + o.Y/space.Scale
		x1 := x0 + o.W/space.Scale
		z1 := z0 + o.H/space.Scale
		corners := []mgl64.Vec3{{x0, o.Top, z0}, {x1, o.Top, z0}, {x1, o.Top, z1}, {x0, o.Top, z1}}
		for i := range corners {
			ax, ay := toScreen(corners[i])
			bx, by := toScreen(corners[(i+1)%len(corners)])
			vector.StrokeLine(screen, ax, ay, bx, by, 1, p.Obstacles, false)
		}
	})
}

// DrawActors draws each rig as bones, the skirt vertices and the held prop.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	p := cfg.Preview
	camera := previewCamera(e)
	toScreen := func(v mgl64.Vec3) (float32, float32) {
		return project(camera, v, float64(p.Width), p.PixelsPerM, p.GroundY)
	}
	showSkirt := true
	if entry, ok := tags.Preview.First(e.World); ok {
		showSkirt = components.PreviewSettings.Get(entry).ShowSkirt
	}

	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		a := components.Actor.Get(entry)
		rig := components.Rig.Get(entry)

		for id := components.JointID(0); id < components.JointCount; id++ {
			j := rig.Joint(id)
			if j == nil || j.Parent == nil {
				continue
			}
			ax, ay := toScreen(rig.World(j.Parent, a.Position, a.Yaw).Col(3).Vec3())
			bx, by := toScreen(rig.World(j, a.Position, a.Yaw).Col(3).Vec3())
			vector.StrokeLine(screen, ax, ay, bx, by, boneWidth, p.BoneColor, true)
		}

		if showSkirt && rig.Skirt != nil {
			hips := rig.World(rig.Hips, a.Position, a.Yaw)
			for _, v := range rig.Skirt.Vertices {
				x, y := toScreen(hips.Mul4x1(v.Vec4(1)).Vec3())
				vector.DrawFilledCircle(screen, x, y, 1.5, p.SkirtColor, true)
			}
		}

		if a.HeldItem != cfg.ItemFishingRod {
			return
		}
		pend := components.Pendulum.Get(entry)
		hand := rig.World(rig.RightHand, a.Position, a.Yaw)
		hx, hy := toScreen(hand.Col(3).Vec3())
		tx, ty := toScreen(rodTip(a, rig))
		vector.StrokeLine(screen, hx, hy, tx, ty, boneWidth, p.BoneColor, true)

		// The line is stored in hand space; draw it from there.
		half := pend.Line.Rotation.Rotate(mgl64.Vec3{0, pend.Line.Length / 2, 0})
		from := hand.Mul4x1(pend.Line.Position.Sub(half).Vec4(1)).Vec3()
		to := hand.Mul4x1(pend.Line.Position.Add(half).Vec4(1)).Vec3()
		fx, fy := toScreen(from)
		lx, ly := toScreen(to)
		vector.StrokeLine(screen, fx, fy, lx, ly, 1, p.LineColor, true)

		px, py := toScreen(pend.Position)
		vector.DrawFilledCircle(screen, px, py, 4, p.PropColor, true)
	})
}

func previewCamera(e *ecs.ECS) *components.CameraData {
	if entry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(entry)
	}
	return &components.CameraData{}
}
