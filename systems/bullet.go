package systems

import (
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bulletTargets lists, per collection, the player indices a bullet can hit in
// the order they are tested. A bullet stops at its first hit.
var bulletTargets = []struct {
	each    func(donburi.World, func(*donburi.Entry))
	targets []int
}{
	{tags.PlayerOneBullet.Each, []int{1}},
	{tags.PlayerTwoBullet.Each, []int{0}},
	{tags.EnemyBullet.Each, []int{1, 0}},
}

// UpdateBullets advances every bullet and marks the ones that hit a plane.
func UpdateBullets(e *ecs.ECS) {
	players := Players(e)

	for _, bt := range bulletTargets {
		bt.each(e.World, func(entry *donburi.Entry) {
			bullet := components.Bullet.Get(entry)
			if bullet.Spent {
				return
			}

			components.Sprite.Get(entry).Update()
			SyncHitbox(entry)

			near := nearPlayers(entry)
			for _, idx := range bt.targets {
				if !hits(entry, players[idx], near) {
					continue
				}
				ExplodePlayer(e, players[idx], cfg.Explosion.BulletTickFrames)
				bullet.Spent = true
				return
			}
		})
	}
}
