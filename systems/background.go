package systems

import (
	"github.com/automoto/skyduel/assets"
	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var backgroundOp = &ebiten.DrawImageOptions{}

// UpdateBackground scrolls every layer one step each time the step ticker fires.
func UpdateBackground(e *ecs.ECS) {
	width := float64(cfg.C.Width)
	components.Background.Each(e.World, func(entry *donburi.Entry) {
		bg := components.Background.Get(entry)
		if !bg.Step.Update() {
			return
		}
		for i := range bg.Layers {
			bg.Layers[i].Scroll(width)
		}
	})
}

// DrawBackground draws each layer twice, side by side, so the wrap is seamless.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(cfg.C.Width)
	components.Background.Each(e.World, func(entry *donburi.Entry) {
		bg := components.Background.Get(entry)
		for _, layer := range bg.Layers {
			img := assets.GetImage(layer.Image)
			for _, x := range []float64{layer.Offset, layer.Offset + width} {
				backgroundOp.GeoM.Reset()
				backgroundOp.GeoM.Translate(x, 0)
				screen.DrawImage(img, backgroundOp)
			}
		}
	})
}
