package tags

import "github.com/yohamta/donburi"

var (
	Actor    = donburi.NewTag().SetName("Actor")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Preview  = donburi.NewTag().SetName("Preview")
)

// Resolv tags for obstacle queries
const (
	ResolvObstacle = "obstacle"
	ResolvProbe    = "probe"
)
