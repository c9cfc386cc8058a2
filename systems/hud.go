package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/marionette/components"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/fonts"
	"github.com/automoto/marionette/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
	hudPanelWidth = 210
)

var (
	hudText  = color.RGBA{230, 230, 230, 255}
	hudDim   = color.RGBA{150, 150, 150, 255}
	hudPanel = color.RGBA{0, 0, 0, 140}
)

const hudHelp = "D move  shift sprint  space jump  C stance  Z punch  X swing  B bow  F cast  V summon  G fish  R reel\n" +
	"E pickup  K skin  L ledge  1/2 wave  I interact  T talk  Q drag  Del die  Tab item  . speed  O skirt  H look  F3 debug"

// DrawHUD shows which layers the resolver picked for the first actor, the
// active flags and the preview settings.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	entry, ok := tags.Actor.First(e.World)
	if !ok {
		return
	}
	a := components.Actor.Get(entry)
	sel := SelectLayers(a)

	lines := []string{
		fmt.Sprintf("body: %s", sel.Body),
		fmt.Sprintf("blend: %s  overlay: %s", sel.Blend, sel.Overlay),
		fmt.Sprintf("item: %s", a.HeldItem),
	}
	if flags := activeFlags(a); flags != "" {
		lines = append(lines, flags)
	}
	if s, ok := tags.Preview.First(e.World); ok {
		settings := components.PreviewSettings.Get(s)
		lines = append(lines, fmt.Sprintf("speed x%.2g  head look %.0f%%",
			cfg.PreviewSettings.TimeScales[settings.TimeScaleIndex], settings.HeadLook*100))
	}

	vector.DrawFilledRect(screen, hudMargin-4, hudMargin-4,
		hudPanelWidth, float32(len(lines)*hudLineHeight+8), hudPanel, false)
	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, hudText)
	}

	small := fonts.HUDSmall.Get()
	text.Draw(screen, hudHelp, small, hudMargin, cfg.Preview.Height-hudMargin-hudLineHeight, hudDim)
}

func activeFlags(a *components.ActorData) string {
	s, cb := a.Status, a.Combat
	named := []struct {
		on   bool
		name string
	}{
		{s.IsDead, "dead"},
		{s.IsDragged, "dragged"},
		{s.IsLedgeGrabbing, "ledge"},
		{s.IsFireballCasting, "cast"},
		{cb.IsFiringBow, "bow"},
		{s.IsPickingUp, "pickup"},
		{s.IsSkinning, "skin"},
		{s.IsSummoning, "summon"},
		{s.IsFishing, "fish"},
		{s.IsChargingFishing, "charge"},
		{s.IsReeling, "reel"},
		{s.IsWaving, "wave"},
		{s.IsLeftHandWaving, "left wave"},
		{s.IsInteracting, "interact"},
		{s.IsTalking, "talk"},
		{cb.IsPunch, "punch"},
		{cb.IsAxeSwing, "swing"},
	}
	var on []string
	for _, f := range named {
		if f.on {
			on = append(on, f.name)
		}
	}
	return strings.Join(on, " ")
}
