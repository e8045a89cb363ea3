package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData stores the state of the game over screen
type GameOverData struct {
	Outcome string
	Fade    *gween.Tween
	Alpha   float32
	Quit    bool
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
