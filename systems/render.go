package systems

import (
	"github.com/automoto/skyduel/assets"
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawSprites renders planes, enemies and bullets centred on their
// positions. An exploding plane shows its explosion frame instead.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Exploding {
			drawAnimated(screen, &player.Explosion)
			return
		}
		drawSprite(screen, components.Sprite.Get(e))
	})

	drawTagged := func(e *donburi.Entry) {
		drawSprite(screen, components.Sprite.Get(e))
	}
	tags.Enemy.Each(ecs.World, drawTagged)
	tags.PlayerOneBullet.Each(ecs.World, drawTagged)
	tags.PlayerTwoBullet.Each(ecs.World, drawTagged)
	tags.EnemyBullet.Each(ecs.World, drawTagged)
}

func drawSprite(screen *ebiten.Image, sprite *components.SpriteData) {
	if sprite.Hidden || sprite.Image == "" {
		return
	}
	img := assets.GetImage(sprite.Image)

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(
		sprite.Position.X-float64(img.Bounds().Dx())/2,
		sprite.Position.Y-float64(img.Bounds().Dy())/2,
	)
	screen.DrawImage(img, drawOp)
}

func drawAnimated(screen *ebiten.Image, anim *components.AnimatedSpriteData) {
	sheet := assets.GetImage(anim.Image)
	frame := sheet.SubImage(anim.FrameRect()).(*ebiten.Image)

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(
		anim.Position.X-float64(anim.FrameWidth)/2,
		anim.Position.Y-float64(anim.FrameHeight)/2,
	)
	screen.DrawImage(frame, drawOp)
}

// DrawHitboxes outlines every collision box when the overlay is on. Boxes
// sharing a space cell with another box are filled.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session == nil || !session.ShowHitboxes {
		return
	}

	c := cfg.Debug.HitboxColor
	fill := c
	fill.A = 60

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.Object == nil {
			return
		}
		if o.Check(0, 0) != nil {
			vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), fill, false)
		}
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, c, false)
	})
}
