package factory

import (
	"github.com/automoto/skyduel/archetypes"
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, spawn cfg.EnemySpawnConfig) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	cooldown := spawn.ShootCooldown
	if cooldown <= 0 {
		cooldown = cfg.Enemy.ShootCooldown
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Shoot: components.NewCooldown(cooldown, cfg.Enemy.ReadyThreshold),
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Position: components.Vector{X: spawn.X, Y: spawn.Y},
		Velocity: components.Vector{X: cfg.Enemy.DriftX},
		Image:    cfg.Enemy.Image,
		Width:    float64(cfg.Enemy.FrameWidth),
		Height:   float64(cfg.Enemy.FrameHeight),
	})

	attachHitbox(ecs, enemy, tags.ResolvEnemy)

	return enemy
}
