package systems

import (
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/systems/factory"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemySpawns replaces a thinned-out wave with a fresh one.
func UpdateEnemySpawns(e *ecs.ECS) {
	var survivors []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		survivors = append(survivors, entry)
	})
	if len(survivors) >= cfg.Enemy.WaveSize {
		return
	}

	for _, entry := range survivors {
		destroyEntity(e, entry)
	}
	for _, spawn := range GetArena(e).EnemySpawns {
		factory.CreateEnemy(e, spawn)
	}
}

// UpdateEnemies drifts each enemy, lets it fire when its cooldown allows and
// rams any plane it touches.
func UpdateEnemies(e *ecs.ECS) {
	players := Players(e)
	recovery := GetArena(e).Recovery

	var shots []components.Vector
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		sprite := components.Sprite.Get(entry)

		enemy.Shoot.Tick()
		sprite.Update()
		SyncHitbox(entry)

		if enemy.Shoot.Ready() {
			shots = append(shots, sprite.Position)
			enemy.Shoot.Trigger(cfg.Enemy.ShootReset)
		}

		near := nearPlayers(entry)
		for _, p := range players {
			if !hits(entry, p, near) {
				continue
			}
			ExplodePlayer(e, p, cfg.Explosion.TickFrames)
			components.Sprite.Get(p).Position = recovery
			SyncHitbox(p)
		}
	})

	for _, pos := range shots {
		factory.CreateBullet(e, components.BulletEnemy, pos)
		PlaySFX(e, cfg.SoundEnemyShoot)
	}
}
