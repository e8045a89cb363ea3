package scenes

import (
	"github.com/automoto/skyduel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type SceneChanger = systems.SceneChanger
