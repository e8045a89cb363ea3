package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision box of a sprite: half the sprite's width and
// height, centred on its position.
type ObjectData struct {
	*resolv.Object
}

// NewHitbox builds the collision box for s.
func NewHitbox(s *SpriteData, tags ...string) *resolv.Object {
	w, h := s.Width/2, s.Height/2
	return resolv.NewObject(s.Position.X-w/2, s.Position.Y-h/2, w, h, tags...)
}

// Follow re-centres the box on the sprite and refreshes its space cells.
func (o ObjectData) Follow(s *SpriteData) {
	if o.Object == nil {
		return
	}
	o.W, o.H = s.Width/2, s.Height/2
	o.X = s.Position.X - o.W/2
	o.Y = s.Position.Y - o.H/2
	o.Update()
}

// Overlaps reports whether two boxes intersect. Touching edges count.
func (o ObjectData) Overlaps(other ObjectData) bool {
	if o.Object == nil || other.Object == nil {
		return false
	}
	return o.X <= other.X+other.W && other.X <= o.X+o.W &&
		o.Y <= other.Y+other.H && other.Y <= o.Y+o.H
}

// Touching returns the objects carrying any of tags that share a space cell
// with the box. The query box is grown by a pixel so boxes meeting edge to
// edge on a cell boundary are still found.
func (o ObjectData) Touching(tags ...string) []*resolv.Object {
	if o.Object == nil || o.Space == nil {
		return nil
	}

	x, y, w, h := o.X, o.Y, o.W, o.H
	o.X, o.Y, o.W, o.H = x-1, y-1, w+2, h+2
	check := o.Check(0, 0, tags...)
	o.X, o.Y, o.W, o.H = x, y, w, h

	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags...)
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broad-phase collision space shared by every hitbox.
var Space = donburi.NewComponentType[resolv.Space]()
