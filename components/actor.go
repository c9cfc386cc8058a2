package components

import (
	"math/rand"

	"github.com/automoto/marionette/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Status holds the action flags set and cleared by the gameplay layer. The
// animator only reads them, except that a completed reel clears the fishing
// flags.
type Status struct {
	IsDead            bool
	IsDragged         bool
	IsPickingUp       bool
	IsSkinning        bool
	IsTalking         bool
	IsFireballCasting bool
	IsFishing         bool
	IsChargingFishing bool
	IsReeling         bool
	IsSummoning       bool
	IsWaving          bool
	IsLeftHandWaving  bool
	IsInteracting     bool
	IsLedgeGrabbing   bool
}

// Combat is the combat sub-record.
type Combat struct {
	IsPunch     bool
	IsAxeSwing  bool
	IsFiringBow bool
}

// Timers are per-action elapsed seconds. Each resets to zero when its action
// starts and advances while the action's flag is set.
type Timers struct {
	Punch    float64
	Swing    float64
	Bow      float64
	Cast     float64
	Summon   float64
	Fishing  float64
	Pickup   float64
	Skinning float64
	Ledge    float64
	Wave     float64
	LeftWave float64
	Interact float64
	Death    float64
	Jump     float64
}

// DeathVariation is sampled once when a death begins and stays fixed until
// the actor is revived.
type DeathVariation struct {
	FallDir    float64 // +1 backward, -1 forward
	Twist      float64 // radians of hips yaw while falling
	StumbleDir float64 // -1 left, +1 right
	SideBias   float64 // -1..1, which arm leads the fall
}

// FaceState is the gaze and blink sub-state.
type FaceState struct {
	BlinkTimer     float64
	Blinking       bool
	EyeLook        mgl64.Vec2 // current yaw, pitch
	EyeTarget      mgl64.Vec2
	GazeTimer      float64 // seconds until a new gaze target is picked
	HeadLookWeight float64 // 0..1 blend toward LookTarget
	LookTarget     mgl64.Vec3
}

// DragState describes an external drag acting on the actor.
type DragState struct {
	Velocity     mgl64.Vec3 // world space, m/s
	RecoverTimer float64    // seconds left of the post-release recovery
}

type ActorData struct {
	Position mgl64.Vec3
	Yaw      float64
	HeldItem config.ItemID

	Status Status
	Combat Combat
	Timers Timers
	Face   FaceState
	Drag   DragState

	DeathVariation DeathVariation
	FishingCharge  float64

	// Clock is the animator-owned elapsed time used by cyclic motions.
	Clock float64
	// StridePhase accumulates the walk cycle so speed changes stay continuous.
	StridePhase float64

	Rand *rand.Rand
}

var Actor = donburi.NewComponentType[ActorData]()

// Intent is the per-frame locomotion snapshot supplied by the controller.
type Intent struct {
	Jumping      bool
	Sprinting    bool
	CombatStance bool
}

// DriveData carries the per-frame inputs for actors animated by the ECS
// system rather than by a direct Animate call.
type DriveData struct {
	Moving bool
	Intent Intent
}

var Drive = donburi.NewComponentType[DriveData]()
