package factory

import (
	"github.com/automoto/skyduel/archetypes"
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, arena components.ArenaData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Active:       true,
		Explosions:   components.NewTicker(cfg.Explosion.TickFrames),
		ShowHitboxes: cfg.Debug.Hitboxes,
		LastFPS:      -1,
	})
	components.Arena.SetValue(session, arena)
	return session
}

func CreateBackground(ecs *ecs.ECS) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)

	layers := make([]components.BackgroundLayer, 0, len(cfg.Background.Layers))
	for _, l := range cfg.Background.Layers {
		layers = append(layers, components.BackgroundLayer{
			Image: l.Image,
			Speed: l.Speed,
		})
	}

	step := components.NewTicker(cfg.Background.StepFrames)
	step.Start(cfg.Background.StepFrames)
	components.Background.SetValue(bg, components.BackgroundData{
		Layers: layers,
		Step:   step,
	})
	return bg
}

// SetupDogfight builds a fresh match: collision space, session, background
// and both planes at their spawn points.
func SetupDogfight(ecs *ecs.ECS, arena components.ArenaData) {
	CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Collision.CellSize, cfg.Collision.CellSize)
	CreateSession(ecs, arena)
	CreateBackground(ecs)

	for i, spawn := range arena.PlayerSpawns {
		CreatePlayer(ecs, i, spawn)
	}
}
