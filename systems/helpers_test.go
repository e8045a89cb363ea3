package systems

import (
	"testing"

	"github.com/automoto/skyduel/components"
	"github.com/automoto/skyduel/systems/factory"
	"github.com/automoto/skyduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestMatch builds a match on the default arena without touching any
// graphics or audio device.
func newTestMatch(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.SetupDogfight(e, components.DefaultArena())
	GetOrCreateAudio(e)
	return e
}

func testPlayers(t *testing.T, e *ecs.ECS) [2]*donburi.Entry {
	t.Helper()
	players := Players(e)
	for i, p := range players {
		if p == nil {
			t.Fatalf("player %d missing", i+1)
		}
	}
	return players
}

// placeAt moves an entity and its hitbox.
func placeAt(entry *donburi.Entry, x, y float64) {
	components.Sprite.Get(entry).Position = components.Vector{X: x, Y: y}
	SyncHitbox(entry)
}

func countTagged(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func enemies(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}
