package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer the preview uses.
const Default ecs.LayerID = iota

// LayerID identifies the full-body layer picked by the priority resolver.
type LayerID int

const (
	LayerNone LayerID = iota
	LayerRagdoll
	LayerDeath
	LayerLedge
	LayerCast
	LayerBow
	LayerPickup
	LayerSkinning
	LayerSummon
	LayerFishing
	LayerWave
	LayerLeftWave
	LayerLocomotion
)

// OverlayID identifies an upper-body timeline layered over locomotion.
type OverlayID int

const (
	OverlayNone OverlayID = iota
	OverlayMelee
	OverlaySwing
	OverlayInteract
)

// LayerNames is used by the preview HUD and test failure messages.
var LayerNames = map[LayerID]string{
	LayerNone:       "none",
	LayerRagdoll:    "ragdoll",
	LayerDeath:      "death",
	LayerLedge:      "ledge",
	LayerCast:       "cast",
	LayerBow:        "bow",
	LayerPickup:     "pickup",
	LayerSkinning:   "skinning",
	LayerSummon:     "summon",
	LayerFishing:    "fishing",
	LayerWave:       "wave",
	LayerLeftWave:   "left-wave",
	LayerLocomotion: "locomotion",
}

func (l LayerID) String() string {
	if name, ok := LayerNames[l]; ok {
		return name
	}
	return "unknown"
}

var overlayNames = map[OverlayID]string{
	OverlayNone:     "none",
	OverlayMelee:    "melee",
	OverlaySwing:    "swing",
	OverlayInteract: "interact",
}

func (o OverlayID) String() string {
	if name, ok := overlayNames[o]; ok {
		return name
	}
	return "unknown"
}
