package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/skyduel/assets"
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/systems"
	"github.com/automoto/skyduel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DogfightScene runs a two-player match until one plane is out of lives.
type DogfightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	arena        components.ArenaData
	once         sync.Once
}

// NewDogfightScene creates a match on the given arena layout
func NewDogfightScene(sc SceneChanger, arena components.ArenaData) *DogfightScene {
	return &DogfightScene{sceneChanger: sc, arena: arena}
}

func (ds *DogfightScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if systems.QuitRequested(ds.ecs) {
		ds.sceneChanger.Quit()
		return
	}

	if session := systems.GetSession(ds.ecs); session != nil && session.Over {
		ds.sceneChanger.ChangeScene(NewGameOverScene(ds.sceneChanger, session.Outcome, ds))
	}
}

func (ds *DogfightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DogfightScene) configure() {
	// Build sprites and sounds up front so the first frames don't stall
	systems.PreloadAllSFX()
	assets.PreloadImages()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, plays what the previous frame queued)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayerInput)
	ecs.AddSystem(systems.UpdateWindowTitle)

	// Game systems skip while minimised or once the match is decided
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateLives))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateSessionControls))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateControls))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdatePlayers))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateExplosions))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateBackground))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateEnemySpawns))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateBullets))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdatePlayerCollisions))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdatePrune))
	ecs.AddSystem(systems.WithActiveSession(systems.UpdateOffField))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ds.ecs = ecs

	factory.SetupDogfight(ds.ecs, ds.arena)
	systems.GetOrCreateAudio(ds.ecs)
}
