package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks an actor whose collapse has begun. The tweens are built
// once from the sampled DeathVariation and sampled by elapsed time, so a
// collapse can be resumed from any frame.
type DeathData struct {
	Started bool
	Drop    *gween.Tween // hips height during the fall
	Pitch   *gween.Tween // hips pitch during the fall
}

var Death = donburi.NewComponentType[DeathData]()
