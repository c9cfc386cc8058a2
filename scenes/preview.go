package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/marionette/assets"
	cfg "github.com/automoto/marionette/config"
	"github.com/automoto/marionette/leveldata"
	"github.com/automoto/marionette/systems"
	"github.com/automoto/marionette/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridScale = 16 // resolv units per meter
	gridCell  = 16
	actorSeed = 1
)

// PreviewScene shows a single actor driven from the keyboard.
type PreviewScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewPreviewScene() *PreviewScene {
	return &PreviewScene{}
}

func (ps *PreviewScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PreviewScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PreviewScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateActionTimers)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePersistence)

	ecs.AddRenderer(cfg.Default, systems.DrawEnvironment)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	layout, err := leveldata.LoadObstacles(assets.FS(), cfg.Preview.LevelPath)
	if err != nil {
		log.Printf("Warning: Could not load obstacles: %v", err)
		layout = &leveldata.Layout{Width: 12, Depth: 12, OriginX: -6, OriginZ: -6}
	}

	factory.CreateSpace(ps.ecs, layout.OriginX, layout.OriginZ, layout.Width, layout.Depth, gridScale, gridCell)
	for _, o := range layout.Obstacles {
		factory.CreateObstacle(ps.ecs, o.X, o.Z, o.W, o.D, o.Top)
	}

	factory.CreateActor(ps.ecs, mgl64.Vec3{}, actorSeed)
	factory.CreateCamera(ps.ecs)
	factory.CreateInput(ps.ecs)

	settings := systems.DefaultSettings()
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: Ignoring saved settings: %v", err)
	}
	systems.ApplySavedSettings(&settings, saved)
	factory.CreatePreviewSettings(ps.ecs, settings)
}
