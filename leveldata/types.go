// Package leveldata parses obstacle layouts from TMX files. It has no
// dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Layout is an obstacle layout in world meters on the XZ plane. Tiled's Y
// axis maps onto world Z, and one tile is one meter.
type Layout struct {
	Width, Depth     float64
	OriginX, OriginZ float64 // world position of the map's top-left corner
	Obstacles        []Obstacle
}

// Obstacle is a box footprint with a walkable top.
type Obstacle struct {
	Name       string
	X, Z, W, D float64
	Top        float64
}
