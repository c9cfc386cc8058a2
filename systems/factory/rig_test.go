package factory

import (
	"math"
	"testing"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestNewCloth(t *testing.T) {
	mesh := NewSkirtMesh()
	if want := len(skirtRings) * skirtSegments; len(mesh.Vertices) != want {
		t.Fatalf("skirt has %d vertices, want %d", len(mesh.Vertices), want)
	}
	cloth := NewCloth(mesh)

	if len(cloth.Rest) != len(mesh.Vertices) || len(cloth.Velocity) != len(mesh.Vertices) {
		t.Fatalf("rest/velocity sized %d/%d for %d vertices", len(cloth.Rest), len(cloth.Velocity), len(mesh.Vertices))
	}
	// The top ring is pinned; the two lower rings swing.
	if len(cloth.Lower) != 2*skirtSegments {
		t.Errorf("%d simulated vertices, want %d", len(cloth.Lower), 2*skirtSegments)
	}
	for _, i := range cloth.Lower {
		if i < skirtSegments {
			t.Errorf("top ring vertex %d is simulated", i)
		}
	}

	mesh.Vertices[0] = mgl64.Vec3{9, 9, 9}
	if cloth.Rest[0] == mesh.Vertices[0] {
		t.Error("rest pose aliases the mesh")
	}
}

func TestNewClothEmpty(t *testing.T) {
	cloth := NewCloth(&components.Mesh{})
	if len(cloth.Rest) != 0 || len(cloth.Lower) != 0 {
		t.Errorf("empty mesh gave %+v", cloth)
	}
}

func TestHumanoidRigJoints(t *testing.T) {
	rig := NewHumanoidRig()
	for id := components.JointID(0); id < components.JointCount; id++ {
		if rig.Joint(id) == nil {
			t.Errorf("joint %d missing", id)
		}
	}
	// Bind pose: the hips sit at their offset and the left hand is on +X.
	hand := rig.World(rig.LeftHand, mgl64.Vec3{}, 0).Col(3)
	if hand.X() <= 0 {
		t.Errorf("left hand at x=%v, want +X", hand.X())
	}
}

func TestCreateActorHangsProp(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := CreateActor(e, mgl64.Vec3{1, 0, 2}, 1)

	a := components.Actor.Get(entry)
	if a.Rand == nil {
		t.Fatal("actor has no random source")
	}
	pend := components.Pendulum.Get(entry)
	rig := components.Rig.Get(entry)
	tp := cfg.Pendulum.RodTip
	tip := rig.World(rig.RightHand, a.Position, a.Yaw).Mul4x1(mgl64.Vec4{tp[0], tp[1], tp[2], 1}).Vec3()
	if d := pend.Position.Sub(tip).Len(); math.Abs(d-pend.Length) > 1e-9 {
		t.Errorf("prop %vm from the tip, want %v", d, pend.Length)
	}
	if pend.Active {
		t.Error("new prop is active")
	}
}
