package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActionTimers advances each action timer while its flag is set and
// zeroes it once the flag clears, so every action starts from t=0.
func UpdateActionTimers(ecs *ecs.ECS) {
	dt := frameTime(ecs)
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		jumping := false
		if e.HasComponent(components.Drive) {
			jumping = components.Drive.Get(e).Intent.Jumping
		}
		AdvanceTimers(components.Actor.Get(e), jumping, dt)
	})
}

// AdvanceTimers steps the action timers and the drag recovery countdown of
// one actor.
func AdvanceTimers(a *components.ActorData, jumping bool, dt float64) {
	s, cb, t := &a.Status, &a.Combat, &a.Timers

	tick(&t.Punch, cb.IsPunch, dt)
	tick(&t.Swing, cb.IsAxeSwing, dt)
	tick(&t.Bow, cb.IsFiringBow, dt)
	tick(&t.Cast, s.IsFireballCasting, dt)
	tick(&t.Summon, s.IsSummoning, dt)
	// The cast timeline starts when the charge is released.
	tick(&t.Fishing, s.IsFishing && !s.IsChargingFishing, dt)
	tick(&t.Pickup, s.IsPickingUp, dt)
	tick(&t.Skinning, s.IsSkinning, dt)
	tick(&t.Ledge, s.IsLedgeGrabbing, dt)
	tick(&t.Wave, s.IsWaving, dt)
	tick(&t.LeftWave, s.IsLeftHandWaving, dt)
	tick(&t.Interact, s.IsInteracting, dt)
	tick(&t.Death, s.IsDead, dt)
	tick(&t.Jump, jumping, dt)

	if s.IsDragged {
		a.Drag.RecoverTimer = cfg.Ragdoll.RecoveryWindow
		return
	}
	a.Drag.RecoverTimer -= dt
	if a.Drag.RecoverTimer < 0 {
		a.Drag.RecoverTimer = 0
	}
}

func tick(timer *float64, active bool, dt float64) {
	if !active {
		*timer = 0
		return
	}
	*timer += dt
}
