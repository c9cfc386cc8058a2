package systems

import (
	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
)

// layer is one entry of the override stack. Layers are checked top-down and
// the first active one owns the body for the frame.
type layer struct {
	id      cfg.LayerID
	active  func(a *components.ActorData) bool
	animate func(c *animContext)
	// post runs after the pose has been applied, for simulations that read
	// the updated rig.
	post func(c *animContext)
	// face runs the gaze layer after this layer.
	face bool
	// blend layers keep the arms for themselves and do not end the scan; the
	// next matching layer still drives the rest of the body.
	blend bool
}

var layers []layer

func init() {
	layers = []layer{
		{id: cfg.LayerRagdoll, active: isRagdolling, animate: animateRagdoll, face: true},
		{id: cfg.LayerDeath, active: func(a *components.ActorData) bool { return a.Status.IsDead }, animate: animateDeath},
		{id: cfg.LayerLedge, active: func(a *components.ActorData) bool { return a.Status.IsLedgeGrabbing }, animate: animateLedge, face: true},
		{id: cfg.LayerCast, active: func(a *components.ActorData) bool { return a.Status.IsFireballCasting }, animate: animateCast, face: true},
		{id: cfg.LayerBow, active: func(a *components.ActorData) bool { return a.Combat.IsFiringBow }, animate: animateBow, blend: true},
		{id: cfg.LayerPickup, active: func(a *components.ActorData) bool { return a.Status.IsPickingUp }, animate: animatePickup, face: true},
		{id: cfg.LayerSkinning, active: func(a *components.ActorData) bool { return a.Status.IsSkinning }, animate: animateSkinning, face: true},
		{id: cfg.LayerSummon, active: func(a *components.ActorData) bool { return a.Status.IsSummoning }, animate: animateSummon, face: true},
		{id: cfg.LayerFishing, active: func(a *components.ActorData) bool { return a.Status.IsFishing }, animate: animateFishing, post: stepFishingProp, face: true},
		{id: cfg.LayerWave, active: func(a *components.ActorData) bool { return a.Status.IsWaving }, animate: animateWave, face: true},
		{id: cfg.LayerLeftWave, active: func(a *components.ActorData) bool { return a.Status.IsLeftHandWaving }, animate: animateLeftWave, face: true},
		{id: cfg.LayerLocomotion, active: func(a *components.ActorData) bool { return true }, animate: animateLocomotion, face: true},
	}
}

// Selection is the outcome of the priority resolver for one frame.
type Selection struct {
	Body    cfg.LayerID   // the one full-body layer
	Blend   cfg.LayerID   // an arms-only layer running beneath locomotion, or LayerNone
	Overlay cfg.OverlayID // upper-body timeline layered over locomotion
}

// SelectLayers applies the fixed precedence to the actor's flags.
// Contradictory flags are not an error; the higher layer simply wins.
func SelectLayers(a *components.ActorData) Selection {
	sel := Selection{Body: cfg.LayerLocomotion}
	for i := range layers {
		l := &layers[i]
		if !l.active(a) {
			continue
		}
		if l.blend {
			sel.Blend = l.id
			continue
		}
		sel.Body = l.id
		break
	}
	if sel.Body == cfg.LayerLocomotion {
		sel.Overlay = selectOverlay(a)
	}
	return sel
}

func selectOverlay(a *components.ActorData) cfg.OverlayID {
	switch {
	case a.Combat.IsPunch:
		return cfg.OverlayMelee
	case a.Combat.IsAxeSwing:
		return cfg.OverlaySwing
	case a.Status.IsInteracting:
		return cfg.OverlayInteract
	}
	return cfg.OverlayNone
}

func findLayer(id cfg.LayerID) *layer {
	for i := range layers {
		if layers[i].id == id {
			return &layers[i]
		}
	}
	return nil
}

// run executes one frame: the full-body layer, the pose pass, the prop
// simulation, then face on top. Cloth only runs beneath locomotion.
func (c *animContext) run() {
	a := c.actor
	a.Clock += c.frame.DT

	if !a.Status.IsDead && c.death.Started {
		clearDeath(c)
	}
	if !a.Status.IsFishing {
		a.FishingCharge = 0
	}

	sel := SelectLayers(a)
	if sel.Blend != cfg.LayerNone {
		blend := findLayer(sel.Blend)
		blend.animate(c)
		c.pose.Reserve(leftArmJoints...)
		c.pose.Reserve(rightArmJoints...)
	}

	body := findLayer(sel.Body)
	body.animate(c)

	switch sel.Overlay {
	case cfg.OverlayMelee:
		animateMelee(c)
	case cfg.OverlaySwing:
		animateSwing(c)
	case cfg.OverlayInteract:
		animateInteract(c)
	}

	c.pose.Apply(c.rig, c.frame.DT)

	if body.post != nil {
		body.post(c)
	} else {
		restProp(c)
	}

	if body.face {
		animateFace(c)
	}
	if sel.Body == cfg.LayerLocomotion {
		animateCloth(c)
	}
}
