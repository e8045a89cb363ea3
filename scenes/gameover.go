package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/systems"
	"github.com/automoto/skyduel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the outcome over the frozen match
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	outcome      string
	backdrop     Scene
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene. backdrop, if set, is drawn
// underneath without being updated.
func NewGameOverScene(sc SceneChanger, outcome string, backdrop Scene) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, outcome: outcome, backdrop: backdrop}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	if gs.gameOverUI != nil {
		gs.gameOverUI.Update()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.backdrop != nil {
		gs.backdrop.Draw(screen)
	}
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	if gs.gameOverUI != nil {
		gs.gameOverUI.UI.Draw(screen)
	}
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.GetOrCreateGameOver(gs.ecs).Outcome = gs.outcome

	gameOverUI, err := ui.NewGameOverUI(gs.outcome, gs.sceneChanger.Quit)
	if err != nil {
		log.Printf("Warning: Could not build game over panel: %v", err)
		return
	}
	gs.gameOverUI = gameOverUI
}
