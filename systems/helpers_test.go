package systems

import (
	"math"
	"testing"

	"github.com/automoto/marionette/components"
	"github.com/automoto/marionette/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

func newTestActor(t *testing.T, seed int64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	return e, factory.CreateActor(e, mgl64.Vec3{}, seed)
}

// stepActor advances the timers then animates one frame, the same order the
// preview systems run in.
func stepActor(entry *donburi.Entry, env Environment) {
	a := components.Actor.Get(entry)
	AdvanceTimers(a, false, testDT)
	Animate(entry, Frame{DT: testDT, Env: env})
}

func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps && math.Abs(a[1]-b[1]) <= eps && math.Abs(a[2]-b[2]) <= eps
}
