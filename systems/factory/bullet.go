package factory

import (
	"github.com/automoto/skyduel/archetypes"
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBullet spawns a bullet at pos into the collection matching its policy.
func CreateBullet(ecs *ecs.ECS, policy components.BulletPolicy, pos components.Vector) *donburi.Entry {
	var bullet *donburi.Entry
	switch policy {
	case components.BulletPlayerOne:
		bullet = archetypes.PlayerOneBullet.Spawn(ecs)
	case components.BulletPlayerTwo:
		bullet = archetypes.PlayerTwoBullet.Spawn(ecs)
	default:
		bullet = archetypes.EnemyBullet.Spawn(ecs)
	}

	components.Bullet.SetValue(bullet, components.BulletData{Policy: policy})
	components.Sprite.SetValue(bullet, components.SpriteData{
		Position: pos,
		Velocity: policy.Velocity(),
		Image:    policy.Image(),
		Width:    float64(cfg.Bullet.FrameWidth),
		Height:   float64(cfg.Bullet.FrameHeight),
	})

	attachHitbox(ecs, bullet, tags.ResolvBullet)

	return bullet
}
