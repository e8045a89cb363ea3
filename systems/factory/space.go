package factory

import (
	"github.com/automoto/skyduel/archetypes"
	"github.com/automoto/skyduel/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachHitbox gives the entry a collision box matching its sprite and
// registers it with the space, if one exists.
func attachHitbox(ecs *ecs.ECS, entry *donburi.Entry, tag string) {
	sprite := components.Sprite.Get(entry)
	obj := components.NewHitbox(sprite, tag)
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
