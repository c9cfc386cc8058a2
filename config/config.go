package config

import "image/color"

// PoseConfig contains the damped interpolation tuning shared by every layer
type PoseConfig struct {
	BaseRate float64 // blend rate (1/s) used when a timeline does not override it

	// Phase-specific multipliers applied on top of BaseRate
	SlowMul   float64 // windups, holds
	MediumMul float64 // recoveries
	FastMul   float64 // strikes, flicks
}

// LocomotionConfig contains the idle/move/jump base layer tuning
type LocomotionConfig struct {
	BreathSpeed  float64 // rad/s of the idle breathing oscillation
	BreathAmount float64 // radians of torso pitch while breathing
	IdleSway     float64 // radians of hips yaw sway

	WalkCycleSpeed   float64 // rad/s of the stride phase
	SprintCycleSpeed float64
	StrideAngle      float64 // radians of thigh swing
	SprintStride     float64
	KneeBend         float64 // radians of shin flex at mid-swing
	ArmSwing         float64 // radians of arm counter-swing
	ForearmBend      float64
	BobHeight        float64 // meters of hips bob per step
	FootRoll         float64 // radians of heel-to-toe roll correction
	SprintLean       float64 // radians of forward torso lean

	JumpTuck     float64 // radians of thigh lift while airborne
	JumpKnee     float64
	JumpArmRaise float64
}

// MeleeConfig contains the three-strike combo tuning
type MeleeConfig struct {
	StrikeDuration float64 // seconds per chained strike
	Strikes        int
	WindupEnd      float64 // fraction of a strike
	StrikeEnd      float64 // fraction of a strike (first two strikes)
	FinalStrikeEnd float64 // fraction of the last strike
	TorsoTwist     float64 // radians, only in a stationary combat stance
	FingerCurl     float64 // radians at full fist tightness
	ThumbCurl      float64
	WindupTight    float64 // fist tightness reached by the end of the windup
}

// TimelineConfig contains the phase thresholds (seconds) of the simpler
// action timelines. A timeline with N thresholds has N+1 phases.
type TimelineConfig struct {
	Slash    []float64
	Overhead []float64
	Summon   []float64
	Cast     []float64
	Bow      []float64
	Pickup   []float64
	Skinning []float64
	Ledge    []float64
	Wave     []float64
	Interact []float64

	CastSwirlSpeed  float64 // rad/s of the gather swirl
	CastSwirlRadius float64 // radians
	WindupJitter    float64 // radians of overhead windup jitter
	JitterSpeed     float64
	SawSpeed        float64 // rad/s of the skinning saw stroke
	SawAmount       float64
	WaveSpeed       float64 // rad/s of the hand wave
	WaveAmount      float64
	HangSway        float64 // radians of ledge hang sway
}

// FishingConfig contains the rod timeline tuning
type FishingConfig struct {
	ChargeRate    float64 // charge per second while charging
	MaxCharge     float64
	WindupEnd     float64 // seconds, cast windup
	FlickEnd      float64 // seconds, cast flick; the prop is launched at WindupEnd
	CastSpeed     float64 // m/s at zero charge
	CastBonus     float64 // extra m/s at full charge
	CastLift      float64 // m/s upward
	ReelWindSpeed float64 // rad/s of the off-hand winding motion
	ReelWindSize  float64 // radians
}

// PendulumConfig contains the dangling/cast prop simulation tuning
type PendulumConfig struct {
	RodTip         [3]float64 // rod tip in hand-local space, meters
	StringLength   float64    // dangle length, meters
	Gravity        float64    // m/s^2
	AirDrag        float64    // 1/s
	WaterLevel     float64    // world height, meters
	Buoyancy       float64    // 1/s^2 per meter submerged
	WaterDrag      float64    // 1/s
	Restitution    float64    // vertical speed kept on bounce
	GroundFriction float64    // horizontal speed kept on contact
	RestSpeed      float64    // m/s; slower contacts stop dead
	ReelForce      float64    // m/s^2, independent of distance
	ReelDamping    float64    // 1/s, only while reeling
	CaptureRadius  float64    // meters
}

// ClothConfig contains the skirt mass-spring tuning
type ClothConfig struct {
	Stiffness      float64 // 1/s^2
	Damping        float64 // 1/s
	ColliderRadius float64 // meters
	PushStrength   float64 // 1/s^2 per meter of penetration
	ThighLength    float64 // meters of the thigh capsule segment
}

// GazeConfig contains the face layer tuning
type GazeConfig struct {
	BlinkInterval   float64 // seconds between blinks
	BlinkDuration   float64 // seconds
	LidClosed       float64 // radians of a fully closed upper lid
	LowerLidClosed  float64
	GazeMinInterval float64 // seconds
	GazeMaxInterval float64
	RecenterChance  float64 // 0..1
	EyeMaxYaw       float64 // radians
	EyeMaxPitch     float64
	EyeSmoothing    float64 // 1/s
	HeadMaxYaw      float64 // radians
	HeadMaxPitch    float64
	NeckShare       float64 // share of the head-look given to the neck
	TalkOpen        float64 // radians of jaw opening in the talking pose
	TalkFlapSpeed   float64 // rad/s
	FaceRate        float64 // blend rate for the face joints
	LidRate         float64
	HeavyRecovery   float64 // ragdoll recovery alpha above which eyes stay shut
}

// DeathConfig contains the collapse tuning
type DeathConfig struct {
	BuckleDuration float64 // seconds
	FallDuration   float64 // seconds
	BuckleDrop     float64 // meters of hips drop during the buckle
	GroundDrop     float64 // meters of hips drop once on the ground
	FallPitch      float64 // radians of hips pitch when flat
	BounceHeight   float64 // meters
	BounceAngle    float64 // radians
	BounceDecay    float64 // 1/s
	BounceFreq     float64 // rad/s
	MaxTwist       float64 // radians
	StumbleAngle   float64 // radians
}

// RagdollConfig contains the drag response tuning
type RagdollConfig struct {
	RecoveryWindow float64 // seconds over which the response fades after release
	HipTilt        float64 // radians per m/s of local drag
	MaxTilt        float64 // radians
	HipSag         float64 // meters
	LimbSwing      float64 // radians per m/s of local drag
	GravityDroop   float64 // radians of limb droop along the local down vector
	NoiseAmount    float64 // radians per m/s of drag speed
	NoiseSpeed     float64 // rad/s
	Rate           float64 // blend rate
}

// PreviewConfig contains the preview window configuration
type PreviewConfig struct {
	Width      int
	Height     int
	TPS        int
	PixelsPerM float64
	GroundY    float64 // screen height of world y=0
	Background color.RGBA
	BoneColor  color.RGBA
	SkirtColor color.RGBA
	LineColor  color.RGBA
	PropColor  color.RGBA
	WaterColor color.RGBA
	Obstacles  color.RGBA
	LevelPath  string

	OrbitYaw      float64 // radians the camera sweeps to either side
	OrbitDuration float64 // seconds per quarter sweep
	ActionLength  float64 // seconds before a toggled one-shot action clears itself
	DragSpeed     float64 // m/s of the preview drag

	PondEdge  float64 // world z where the pond basin starts
	PondDepth float64 // basin floor height below y=0
}

// Config holds general configuration
type Config struct {
	MaxFrameTime float64 // seconds; dt is clamped to this before stepping
}

// Global configuration instances
var C *Config
var Pose PoseConfig
var Locomotion LocomotionConfig
var Melee MeleeConfig
var Timelines TimelineConfig
var Fishing FishingConfig
var Pendulum PendulumConfig
var Cloth ClothConfig
var Gaze GazeConfig
var Death DeathConfig
var Ragdoll RagdollConfig
var Preview PreviewConfig

func init() {
	C = &Config{
		MaxFrameTime: 0.1,
	}

	Pose = PoseConfig{
		BaseRate:  10.0,
		SlowMul:   0.5,
		MediumMul: 1.0,
		FastMul:   2.5,
	}

	Locomotion = LocomotionConfig{
		BreathSpeed:  2.0,
		BreathAmount: 0.03,
		IdleSway:     0.02,

		WalkCycleSpeed:   8.0,
		SprintCycleSpeed: 12.0,
		StrideAngle:      0.5,
		SprintStride:     0.8,
		KneeBend:         0.6,
		ArmSwing:         0.45,
		ForearmBend:      0.3,
		BobHeight:        0.03,
		FootRoll:         0.25,
		SprintLean:       0.2,

		JumpTuck:     0.9,
		JumpKnee:     1.2,
		JumpArmRaise: 1.1,
	}

	// 0.6s per strike: windup 0-20%, strike 20-70% (80% on the last), recovery after
	Melee = MeleeConfig{
		StrikeDuration: 0.6,
		Strikes:        3,
		WindupEnd:      0.2,
		StrikeEnd:      0.7,
		FinalStrikeEnd: 0.8,
		TorsoTwist:     0.35,
		FingerCurl:     1.4,
		ThumbCurl:      0.8,
		WindupTight:    0.6,
	}

	Timelines = TimelineConfig{
		Slash:    []float64{0.25, 0.45},
		Overhead: []float64{0.35, 0.55},
		Summon:   []float64{0.4, 0.6},
		Cast:     []float64{0.3, 0.5},
		Bow:      []float64{0.5, 1.2},
		Pickup:   []float64{0.35, 0.6, 0.9},
		Skinning: []float64{0.4},
		Ledge:    []float64{0.3, 0.7, 1.0},
		Wave:     []float64{0.3},
		Interact: []float64{0.25, 0.5},

		CastSwirlSpeed:  14.0,
		CastSwirlRadius: 0.25,
		WindupJitter:    0.04,
		JitterSpeed:     40.0,
		SawSpeed:        10.0,
		SawAmount:       0.35,
		WaveSpeed:       12.0,
		WaveAmount:      0.4,
		HangSway:        0.08,
	}

	Fishing = FishingConfig{
		ChargeRate:    0.8,
		MaxCharge:     1.0,
		WindupEnd:     0.3,
		FlickEnd:      0.5,
		CastSpeed:     6.0,
		CastBonus:     8.0,
		CastLift:      3.0,
		ReelWindSpeed: 9.0,
		ReelWindSize:  0.35,
	}

	Pendulum = PendulumConfig{
		RodTip:         [3]float64{0, -0.05, 1.3},
		StringLength:   0.6,
		Gravity:        9.81,
		AirDrag:        0.8,
		WaterLevel:     -0.3,
		Buoyancy:       60.0,
		WaterDrag:      3.0,
		Restitution:    0.3,
		GroundFriction: 0.6,
		RestSpeed:      0.05,
		ReelForce:      30.0,
		ReelDamping:    4.0,
		CaptureRadius:  0.5,
	}

	Cloth = ClothConfig{
		Stiffness:      80.0,
		Damping:        6.0,
		ColliderRadius: 0.1,
		PushStrength:   900.0,
		ThighLength:    0.42,
	}

	Gaze = GazeConfig{
		BlinkInterval:   3.5,
		BlinkDuration:   0.15,
		LidClosed:       0.6,
		LowerLidClosed:  0.15,
		GazeMinInterval: 0.5,
		GazeMaxInterval: 4.0,
		RecenterChance:  0.6,
		EyeMaxYaw:       0.35,
		EyeMaxPitch:     0.2,
		EyeSmoothing:    6.0,
		HeadMaxYaw:      1.0,
		HeadMaxPitch:    0.5,
		NeckShare:       0.35,
		TalkOpen:        0.25,
		TalkFlapSpeed:   14.0,
		FaceRate:        8.0,
		LidRate:         60.0,
		HeavyRecovery:   0.5,
	}

	Death = DeathConfig{
		BuckleDuration: 0.35,
		FallDuration:   0.6,
		BuckleDrop:     0.25,
		GroundDrop:     0.85,
		FallPitch:      1.45,
		BounceHeight:   0.06,
		BounceAngle:    0.08,
		BounceDecay:    6.0,
		BounceFreq:     18.0,
		MaxTwist:       0.5,
		StumbleAngle:   0.3,
	}

	Ragdoll = RagdollConfig{
		RecoveryWindow: 1.2,
		HipTilt:        0.12,
		MaxTilt:        1.2,
		HipSag:         0.15,
		LimbSwing:      0.18,
		GravityDroop:   0.4,
		NoiseAmount:    0.03,
		NoiseSpeed:     9.0,
		Rate:           12.0,
	}

	Preview = PreviewConfig{
		Width:      640,
		Height:     360,
		TPS:        60,
		PixelsPerM: 110,
		GroundY:    300,
		Background: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		BoneColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		SkirtColor: color.RGBA{R: 255, G: 140, B: 0, A: 255},
		LineColor:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
		PropColor:  color.RGBA{R: 255, G: 60, B: 60, A: 255},
		WaterColor: color.RGBA{R: 60, G: 100, B: 160, A: 160},
		Obstacles:  color.RGBA{R: 100, G: 100, B: 100, A: 255},
		LevelPath:  "levels/pond.tmx",

		OrbitYaw:      0.6,
		OrbitDuration: 4.0,
		ActionLength:  2.0,
		DragSpeed:     2.5,

		PondEdge:  1.0,
		PondDepth: 0.6,
	}
}
