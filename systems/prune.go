package systems

import (
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePrune removes enemies past the exit line, enemy bullets past the
// bottom line and every spent bullet.
func UpdatePrune(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Sprite.Get(entry).Position.X > cfg.Enemy.ExitX {
			toRemove = append(toRemove, entry)
		}
	})
	tags.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		if components.Sprite.Get(entry).Position.Y > cfg.Bullet.EnemyExitY {
			toRemove = append(toRemove, entry)
		}
	})
	components.Bullet.Each(e.World, func(entry *donburi.Entry) {
		if components.Bullet.Get(entry).Spent {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		destroyEntity(e, entry)
	}
}

// UpdateOffField removes player bullets that flew clear of the window.
func UpdateOffField(e *ecs.ECS) {
	minX := -cfg.Bullet.OffFieldMargin
	maxX := float64(cfg.C.Width) + cfg.Bullet.OffFieldMargin

	var toRemove []*donburi.Entry
	collect := func(entry *donburi.Entry) {
		x := components.Sprite.Get(entry).Position.X
		if x < minX || x > maxX {
			toRemove = append(toRemove, entry)
		}
	}
	tags.PlayerOneBullet.Each(e.World, collect)
	tags.PlayerTwoBullet.Each(e.World, collect)

	for _, entry := range toRemove {
		destroyEntity(e, entry)
	}
}

// destroyEntity takes the entity's hitbox out of the space and removes it from
// the world. Entries already removed are ignored.
func destroyEntity(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(e.World); ok && entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj != nil && obj.Object != nil && obj.Space != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}
