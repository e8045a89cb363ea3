package archetypes

import (
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Sprite,
		components.Object,
		components.Lives,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Sprite,
		components.Object,
	)
	PlayerOneBullet = newArchetype(
		tags.PlayerOneBullet,
		components.Bullet,
		components.Sprite,
		components.Object,
	)
	PlayerTwoBullet = newArchetype(
		tags.PlayerTwoBullet,
		components.Bullet,
		components.Sprite,
		components.Object,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Bullet,
		components.Sprite,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Arena,
	)
	Background = newArchetype(
		components.Background,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
