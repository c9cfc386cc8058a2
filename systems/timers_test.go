package systems

import (
	"math"
	"testing"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
)

func TestAdvanceTimers(t *testing.T) {
	a := &components.ActorData{}
	a.Combat.IsPunch = true
	a.Status.IsFishing = true
	a.Status.IsChargingFishing = true

	for i := 0; i < 10; i++ {
		AdvanceTimers(a, true, 0.1)
	}
	if math.Abs(a.Timers.Punch-1) > 1e-9 || math.Abs(a.Timers.Jump-1) > 1e-9 {
		t.Errorf("punch=%v jump=%v, want 1", a.Timers.Punch, a.Timers.Jump)
	}
	if a.Timers.Fishing != 0 {
		t.Errorf("fishing timer = %v while charging, want 0", a.Timers.Fishing)
	}

	// Releasing the charge starts the cast timeline from zero.
	a.Status.IsChargingFishing = false
	a.Combat.IsPunch = false
	AdvanceTimers(a, false, 0.1)
	if math.Abs(a.Timers.Fishing-0.1) > 1e-9 {
		t.Errorf("fishing timer = %v after release, want 0.1", a.Timers.Fishing)
	}
	if a.Timers.Punch != 0 || a.Timers.Jump != 0 {
		t.Errorf("cleared flags kept time: punch=%v jump=%v", a.Timers.Punch, a.Timers.Jump)
	}
}

func TestDragRecoveryCountdown(t *testing.T) {
	a := &components.ActorData{}
	a.Status.IsDragged = true
	AdvanceTimers(a, false, 0.1)
	if a.Drag.RecoverTimer != cfg.Ragdoll.RecoveryWindow {
		t.Fatalf("recover timer = %v while dragged", a.Drag.RecoverTimer)
	}
	if ragdollAlpha(a) != 1 {
		t.Errorf("alpha = %v while dragged, want 1", ragdollAlpha(a))
	}

	a.Status.IsDragged = false
	AdvanceTimers(a, false, cfg.Ragdoll.RecoveryWindow/2)
	if got := ragdollAlpha(a); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("alpha halfway through recovery = %v", got)
	}
	AdvanceTimers(a, false, cfg.Ragdoll.RecoveryWindow)
	if a.Drag.RecoverTimer != 0 || isRagdolling(a) {
		t.Errorf("still recovering: timer=%v", a.Drag.RecoverTimer)
	}
}
