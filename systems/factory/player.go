package factory

import (
	"log"

	"github.com/automoto/skyduel/archetypes"
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, index int, spawn cfg.SpawnConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	facing, err := components.ParseFacing(spawn.Facing)
	if err != nil {
		log.Printf("Warning: player %d spawn: %v", index+1, err)
	}

	pos := components.Vector{X: spawn.X, Y: spawn.Y}
	data := components.NewPlayerData(index, pos, facing)
	components.Player.SetValue(player, data)

	components.Sprite.SetValue(player, components.SpriteData{
		Position: pos,
		Image:    data.FacingImage(),
		Width:    float64(cfg.Player.FrameWidth),
		Height:   float64(cfg.Player.FrameHeight),
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex: index,
	})

	attachHitbox(ecs, player, tags.ResolvPlayer)

	return player
}
