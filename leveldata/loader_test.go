package leveldata

import (
	"math"
	"testing"
	"testing/fstest"
)

const testLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="2" name="Obstacles">
  <object id="2" name="dock" x="96" y="32" width="32" height="16">
   <properties>
    <property name="top" type="float" value="0.2"/>
   </properties>
  </object>
  <object id="1" name="rock" x="16" y="64" width="16" height="32">
   <properties>
    <property name="top" type="float" value="0.5"/>
   </properties>
  </object>
  <object id="3" name="marker" x="0" y="0"/>
 </objectgroup>
 <objectgroup id="1" name="Decoration">
  <object id="4" name="tree" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>
`

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLoadObstacles(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testLevel)},
	}

	layout, err := LoadObstacles(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadObstacles: %v", err)
	}
	if layout.Width != 10 || layout.Depth != 8 {
		t.Fatalf("size = %vx%v, want 10x8", layout.Width, layout.Depth)
	}
	if layout.OriginX != -5 || layout.OriginZ != -4 {
		t.Fatalf("origin = %v,%v, want -5,-4", layout.OriginX, layout.OriginZ)
	}
	if len(layout.Obstacles) != 2 {
		t.Fatalf("got %d obstacles, want 2 (point objects and other groups skipped)", len(layout.Obstacles))
	}

	rock := layout.Obstacles[0]
	if rock.Name != "rock" {
		t.Fatalf("first obstacle = %q, want rock (sorted by X)", rock.Name)
	}
	if !approx(rock.X, -4) || !approx(rock.Z, 0) || !approx(rock.W, 1) || !approx(rock.D, 2) || !approx(rock.Top, 0.5) {
		t.Errorf("rock = %+v", rock)
	}

	dock := layout.Obstacles[1]
	if !approx(dock.X, 1) || !approx(dock.Z, -2) || !approx(dock.W, 2) || !approx(dock.D, 1) || !approx(dock.Top, 0.2) {
		t.Errorf("dock = %+v", dock)
	}
}

func TestLoadObstaclesMissingFile(t *testing.T) {
	if _, err := LoadObstacles(fstest.MapFS{}, "levels/missing.tmx"); err == nil {
		t.Fatal("expected an error for a missing level")
	}
}
