package systems

import (
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches scenes and ends the application.
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// NewUpdateGameOver creates the game over system. Once the overlay has faded
// in, Enter, Space or Escape quits.
func NewUpdateGameOver(sceneChanger SceneChanger) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		if gameOver.Fade != nil {
			alpha, done := gameOver.Fade.Update(1 / float32(cfg.C.TPS))
			gameOver.Alpha = alpha
			if done {
				gameOver.Fade = nil
			}
			return
		}

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionQuit).JustPressed {
			gameOver.Quit = true
			sceneChanger.Quit()
		}
	}
}

// DrawGameOver darkens the screen behind the game over panel
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(float32(overlay.A) * gameOver.Alpha)

	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		overlay,
		false,
	)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			Fade: gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.Linear),
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
