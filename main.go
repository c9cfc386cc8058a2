package main

import (
	"log"

	"github.com/automoto/marionette/config"
	"github.com/automoto/marionette/fonts"
	"github.com/automoto/marionette/scenes"
	"github.com/automoto/marionette/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD fonts: %v", err)
	}
	return &Game{scene: scenes.NewPreviewScene()}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Preview.Width, config.Preview.Height
}

func main() {
	ebiten.SetWindowSize(config.Preview.Width*2, config.Preview.Height*2)
	ebiten.SetWindowTitle("marionette")
	ebiten.SetTPS(config.Preview.TPS)

	// Initialize persistence before the scene loads saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
