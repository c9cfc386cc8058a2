package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls turns preview input into actor flags and settings changes.
// It stands in for the gameplay layer that owns the flags in a real game.
func UpdateControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var settings *components.PreviewSettingsData
	if entry, ok := tags.Preview.First(ecs.World); ok {
		settings = components.PreviewSettings.Get(entry)
		applySettingsActions(input, settings)
	}

	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		a := components.Actor.Get(e)
		applyActorActions(input, a, components.Drive.Get(e))
		if settings != nil {
			a.Face.HeadLookWeight = settings.HeadLook
			a.Face.LookTarget = a.Position.Add(mgl64.Vec3{1.5, 1.6, 2.5})
		}
	})
}

func applySettingsActions(input *components.InputData, s *components.PreviewSettingsData) {
	if GetAction(input, cfg.ActionTimeScale).JustPressed {
		s.TimeScaleIndex = (s.TimeScaleIndex + 1) % len(cfg.PreviewSettings.TimeScales)
		s.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleSkirt).JustPressed {
		s.ShowSkirt = !s.ShowSkirt
		s.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		s.Debug = !s.Debug
		s.Dirty = true
	}
	if GetAction(input, cfg.ActionHeadLook).JustPressed {
		s.HeadLook += cfg.PreviewSettings.HeadLookStep
		if s.HeadLook > 1+1e-9 {
			s.HeadLook = 0
		}
		s.Dirty = true
	}
}

// applyActorActions maps the held and toggled actions onto one actor.
func applyActorActions(input *components.InputData, a *components.ActorData, drive *components.DriveData) {
	pressed := func(id cfg.ActionID) bool { return GetAction(input, id).Pressed }
	toggled := func(id cfg.ActionID) bool { return GetAction(input, id).JustPressed }

	drive.Moving = pressed(cfg.ActionMove)
	drive.Intent.Sprinting = pressed(cfg.ActionSprint)
	drive.Intent.Jumping = pressed(cfg.ActionJump)
	if toggled(cfg.ActionCombatStance) {
		drive.Intent.CombatStance = !drive.Intent.CombatStance
	}

	s, cb := &a.Status, &a.Combat
	flip := func(id cfg.ActionID, flag *bool) {
		if toggled(id) {
			*flag = !*flag
		}
	}
	flip(cfg.ActionPunch, &cb.IsPunch)
	flip(cfg.ActionSwing, &cb.IsAxeSwing)
	flip(cfg.ActionBow, &cb.IsFiringBow)
	flip(cfg.ActionCast, &s.IsFireballCasting)
	flip(cfg.ActionSummon, &s.IsSummoning)
	flip(cfg.ActionPickup, &s.IsPickingUp)
	flip(cfg.ActionSkin, &s.IsSkinning)
	flip(cfg.ActionLedge, &s.IsLedgeGrabbing)
	flip(cfg.ActionWave, &s.IsWaving)
	flip(cfg.ActionLeftWave, &s.IsLeftHandWaving)
	flip(cfg.ActionInteract, &s.IsInteracting)
	flip(cfg.ActionTalk, &s.IsTalking)
	flip(cfg.ActionDie, &s.IsDead)

	// Fishing steps through charge, cast and stop on successive presses.
	if toggled(cfg.ActionFish) {
		switch {
		case !s.IsFishing:
			s.IsFishing, s.IsChargingFishing = true, true
		case s.IsChargingFishing:
			s.IsChargingFishing = false
		default:
			s.IsFishing, s.IsReeling = false, false
		}
	}
	s.IsReeling = s.IsFishing && !s.IsChargingFishing && pressed(cfg.ActionReel)

	s.IsDragged = pressed(cfg.ActionDrag)
	if s.IsDragged {
		a.Drag.Velocity = mgl64.Vec3{cfg.Preview.DragSpeed, 0, 0}
	}

	if toggled(cfg.ActionCycleItem) {
		a.HeldItem = a.HeldItem%cfg.ItemBow + 1
	}

	expireOneShots(a)
}

// expireOneShots clears toggled actions that have played out, as the
// gameplay layer would once an attack or gesture completes.
func expireOneShots(a *components.ActorData) {
	limit := cfg.Preview.ActionLength
	t, s, cb := &a.Timers, &a.Status, &a.Combat
	for _, o := range []struct {
		flag  *bool
		timer float64
	}{
		{&cb.IsPunch, t.Punch},
		{&cb.IsAxeSwing, t.Swing},
		{&cb.IsFiringBow, t.Bow},
		{&s.IsFireballCasting, t.Cast},
		{&s.IsSummoning, t.Summon},
		{&s.IsPickingUp, t.Pickup},
		{&s.IsLedgeGrabbing, t.Ledge},
		{&s.IsInteracting, t.Interact},
	} {
		if *o.flag && o.timer >= limit {
			*o.flag = false
		}
	}
}
