package systems

import (
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/systems/factory"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers moves both planes, runs their engine sound state machine and
// cools their weapons down.
func UpdatePlayers(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		sprite := components.Sprite.Get(entry)

		sprite.Update()
		if cue := player.UpdateEngine(sprite.Velocity.Magnitude(), dt); cue != cfg.SoundNone {
			PlaySFX(e, cue)
		}

		player.Fire.Tick()
		player.Fire2.Tick()

		SyncHitbox(entry)
	})
}

// Shoot fires the given weapon slot if its cooldown allows. Slot 1 feeds the
// player one collection and slot 2 the player two collection.
func Shoot(e *ecs.ECS, entry *donburi.Entry, slot int) bool {
	player := components.Player.Get(entry)
	cd := player.Cooldown(slot)
	if !cd.Ready() {
		return false
	}

	policy := components.BulletPlayerOne
	if slot == 2 {
		policy = components.BulletPlayerTwo
	}
	factory.CreateBullet(e, policy, components.Sprite.Get(entry).Position)
	cd.Trigger(cfg.Player.FireCooldown)
	PlaySFX(e, cfg.SoundShoot)
	return true
}

// ExplodePlayer blows the plane up and (re)starts the explosion ticker with
// the given interval in frames.
func ExplodePlayer(e *ecs.ECS, entry *donburi.Entry, interval int) {
	if entry == nil {
		return
	}
	player := components.Player.Get(entry)
	player.Explode(components.Sprite.Get(entry), components.Lives.Get(entry))

	if session := GetSession(e); session != nil {
		session.Explosions.Start(interval)
	}
	PlaySFX(e, cfg.SoundExplosion)
}

// UpdateExplosions advances every exploding plane on each explosion tick and
// stops the ticker once none are left.
func UpdateExplosions(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || !session.Explosions.Update() {
		return
	}

	exploding := false
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if !player.Exploding {
			return
		}
		if player.AdvanceExplosion(components.Sprite.Get(entry)) {
			exploding = true
		}
	})

	if !exploding {
		session.Explosions.Stop()
	}
}
