package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	minimapScale  = 4 // screen pixels per grid unit
	minimapMargin = 10
)

// DrawDebug draws a top-down map of the obstacle space with the actor and
// its prop, plus the actor's timers, when debug is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := tags.Preview.First(e.World)
	if !ok || !components.PreviewSettings.Get(settingsEntry).Debug {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width := screen.Bounds().Dx()
	mapW := float64(space.Width() * space.CellWidth * minimapScale)
	mapH := float64(space.Height() * space.CellHeight * minimapScale)
	originX := float64(width) - mapW - minimapMargin
	originY := float64(minimapMargin)

	vector.DrawFilledRect(screen, float32(originX), float32(originY), float32(mapW), float32(mapH),
		color.RGBA{0, 0, 0, 160}, false)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(tags.ResolvObstacle) {
			c = cfg.Preview.Obstacles
		}
		x := float32(originX + obj.X*minimapScale)
		y := float32(originY + obj.Y*minimapScale)
		w := float32(obj.W * minimapScale)
		h := float32(obj.H * minimapScale)
		vector.FillRect(screen, x, y, w, 1, c, false)
		vector.FillRect(screen, x, y+h-1, w, 1, c, false)
		vector.FillRect(screen, x, y, 1, h, c, false)
		vector.FillRect(screen, x+w-1, y, 1, h, c, false)
	}

	toMap := func(wx, wz float64) (float32, float32) {
		return float32(originX + (wx-space.OriginX)*space.Scale*minimapScale),
			float32(originY + (wz-space.OriginZ)*space.Scale*minimapScale)
	}

	actorEntry, ok := tags.Actor.First(e.World)
	if !ok {
		return
	}
	a := components.Actor.Get(actorEntry)
	ax, ay := toMap(a.Position.X(), a.Position.Z())
	vector.DrawFilledCircle(screen, ax, ay, 3, cfg.Preview.BoneColor, false)
	pend := components.Pendulum.Get(actorEntry)
	px, py := toMap(pend.Position.X(), pend.Position.Z())
	vector.DrawFilledCircle(screen, px, py, 2, cfg.Preview.PropColor, false)

	t := a.Timers
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"clock %.2f  death %.2f  fish %.2f  charge %.2f\nprop %.2f %.2f %.2f  active %v  recover %.2f",
		a.Clock, t.Death, t.Fishing, a.FishingCharge,
		pend.Position.X(), pend.Position.Y(), pend.Position.Z(), pend.Active, a.Drag.RecoverTimer,
	), minimapMargin, cfg.Preview.Height/2)
}
