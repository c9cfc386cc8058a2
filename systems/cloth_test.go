package systems

import (
	"testing"

	"github.com/automoto/marionette/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

// Colliders far from the skirt, so only the spring acts.
var farColliders = [2]capsule{
	{a: v3(100, 0, 0), b: v3(100, -1, 0), radius: 0.1},
	{a: v3(-100, 0, 0), b: v3(-100, -1, 0), radius: 0.1},
}

func TestClothReturnsToRest(t *testing.T) {
	skirt := factory.NewSkirtMesh()
	cloth := factory.NewCloth(skirt)
	if len(cloth.Lower) == 0 {
		t.Fatal("no simulated vertices")
	}
	for _, i := range cloth.Lower {
		skirt.Vertices[i] = skirt.Vertices[i].Add(mgl64.Vec3{0.05, -0.02, 0.04})
	}

	for i := 0; i < 600; i++ {
		stepCloth(skirt, &cloth, farColliders, testDT)
	}

	for _, i := range cloth.Lower {
		if !vecNear(skirt.Vertices[i], cloth.Rest[i], 1e-6) {
			t.Errorf("vertex %d at %v, rest %v", i, skirt.Vertices[i], cloth.Rest[i])
		}
	}
}

func TestClothUpperRingIsRigid(t *testing.T) {
	skirt := factory.NewSkirtMesh()
	cloth := factory.NewCloth(skirt)
	moved := skirt.Vertices[0].Add(mgl64.Vec3{0.1, 0, 0})
	skirt.Vertices[0] = moved

	for i := 0; i < 60; i++ {
		stepCloth(skirt, &cloth, farColliders, testDT)
	}
	if skirt.Vertices[0] != moved {
		t.Errorf("upper vertex moved to %v", skirt.Vertices[0])
	}
}

func TestPushOut(t *testing.T) {
	col := capsule{a: v3(0, 0, 0), b: v3(0, -1, 0), radius: 0.1}
	tests := []struct {
		name string
		p    mgl64.Vec3
		want mgl64.Vec3
	}{
		{"inside", v3(0.04, -0.5, 0), v3(0.06, 0, 0)},
		{"outside", v3(0.2, -0.5, 0), v3(0, 0, 0)},
		{"on the axis", v3(0, -0.5, 0), v3(0, 0, 0)},
		{"past the end cap", v3(0, -1.05, 0), v3(0, -0.05, 0)},
	}
	for _, tc := range tests {
		if got := pushOut(tc.p, col); !vecNear(got, tc.want, 1e-12) {
			t.Errorf("%s: pushOut = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClothPushedOutOfThigh(t *testing.T) {
	skirt := factory.NewSkirtMesh()
	cloth := factory.NewCloth(skirt)
	i := cloth.Lower[0]
	rest := cloth.Rest[i]
	// A thigh swung through the vertex's rest position.
	col := capsule{a: rest.Add(v3(-0.05, 0.2, 0)), b: rest.Add(v3(-0.05, -0.2, 0)), radius: 0.1}

	for f := 0; f < 120; f++ {
		stepCloth(skirt, &cloth, [2]capsule{col, farColliders[1]}, testDT)
	}
	if skirt.Vertices[i].X() <= rest.X() {
		t.Errorf("vertex not pushed away from the thigh: %v, rest %v", skirt.Vertices[i], rest)
	}
}
