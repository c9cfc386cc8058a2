package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// ObstacleGroup is the TMX object group holding obstacle rectangles. Each
// object's float property "top" is its surface height in meters.
const ObstacleGroup = "Obstacles"

// LoadObstacles parses a TMX file into a layout centred on the world
// origin. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadObstacles(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	layout := &Layout{
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}
	layout.OriginX = -layout.Width / 2
	layout.OriginZ = -layout.Depth / 2

	for _, og := range levelMap.ObjectGroups {
		if og.Name != ObstacleGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				continue
			}
			layout.Obstacles = append(layout.Obstacles, Obstacle{
				Name: o.Name,
				X:    layout.OriginX + o.X/tileW,
				Z:    layout.OriginZ + o.Y/tileH,
				W:    o.Width / tileW,
				D:    o.Height / tileH,
				Top:  o.Properties.GetFloat("top"),
			})
		}
	}

	// Sort for consistent spawn order
	sort.Slice(layout.Obstacles, func(i, j int) bool {
		if layout.Obstacles[i].X != layout.Obstacles[j].X {
			return layout.Obstacles[i].X < layout.Obstacles[j].X
		}
		return layout.Obstacles[i].Z < layout.Obstacles[j].Z
	})

	return layout, nil
}
