package systems

import (
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collides reports whether the hitboxes of two entities overlap. The test is
// symmetric.
func Collides(a, b *donburi.Entry) bool {
	if a == nil || b == nil || !a.Valid() || !b.Valid() {
		return false
	}
	if !a.HasComponent(components.Object) || !b.HasComponent(components.Object) {
		return false
	}
	return components.Object.Get(a).Overlaps(*components.Object.Get(b))
}

// nearPlayers returns the planes whose hitboxes share a collision cell with
// entry's hitbox.
func nearPlayers(entry *donburi.Entry) map[donburi.Entity]bool {
	near := map[donburi.Entity]bool{}
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Object) {
		return near
	}
	for _, obj := range components.Object.Get(entry).Touching(tags.ResolvPlayer) {
		if p, ok := obj.Data.(*donburi.Entry); ok && p != nil && p.Valid() {
			near[p.Entity()] = true
		}
	}
	return near
}

// hits reports whether entry strikes target: the collision space narrows the
// candidates to near, then the exact box test decides.
func hits(entry, target *donburi.Entry, near map[donburi.Entity]bool) bool {
	if target == nil || !target.Valid() || !near[target.Entity()] {
		return false
	}
	return Collides(entry, target)
}

// SyncHitbox moves the entity's hitbox to follow its sprite.
func SyncHitbox(entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	components.Object.Get(entry).Follow(components.Sprite.Get(entry))
}

// UpdatePlayerCollisions handles a mid-air collision between the two planes:
// both explode and return to their spawn points.
func UpdatePlayerCollisions(e *ecs.ECS) {
	players := Players(e)
	if !hits(players[0], players[1], nearPlayers(players[0])) {
		return
	}

	for _, p := range players {
		ExplodePlayer(e, p, cfg.Explosion.TickFrames)
		sprite := components.Sprite.Get(p)
		sprite.Position = components.Player.Get(p).Spawn
		SyncHitbox(p)
	}
}
