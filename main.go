package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/skyduel/assets"
	"github.com/automoto/skyduel/components"
	"github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/fonts"
	"github.com/automoto/skyduel/scenes"
	"github.com/automoto/skyduel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(arena components.ArenaData) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDogfightScene(g, arena)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadArena reads the arena map, falling back to the built-in layout.
func loadArena(path string) components.ArenaData {
	var (
		arena config.ArenaConfig
		err   error
	)
	if path == "" {
		arena, err = assets.LoadArena(config.Arena.MapPath, nil)
	} else {
		arena, err = assets.LoadArena(filepath.Base(path), os.DirFS(filepath.Dir(path)))
	}
	if err != nil {
		log.Printf("Warning: Could not load arena, using defaults: %v", err)
		return components.DefaultArena()
	}
	return components.NewArena(arena)
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay constants")
	arenaPath := flag.String("arena", "", "Tiled map with the arena layout (defaults to the built-in arena)")
	debug := flag.Bool("debug", false, "Start with the hitbox overlay on")
	flag.Parse()

	config.Debug.Hitboxes = *debug

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not apply tuning: %v", err)
		} else {
			tuning.Apply()
			systems.SetSFXVolume(config.Audio.DefaultSFXVol)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence for the save slot
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(loadArena(*arenaPath))); err != nil {
		log.Fatal(err)
	}
}
