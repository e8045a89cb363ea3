package systems

import (
	"fmt"

	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders each player's lives: player 1 top-right, player 2 top-left,
// matching the side each one starts on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	margin := int(cfg.HUD.Margin)
	ascent := face.Metrics().Ascent.Ceil()

	for i, p := range Players(ecs) {
		if p == nil {
			continue
		}
		lives := components.Lives.Get(p)
		label := fmt.Sprintf("%s  Lives: %d", cfg.Player.Names[i], lives.Lives)

		x := margin
		if i == 0 {
			x = screen.Bounds().Dx() - margin - font.MeasureString(face, label).Ceil()
		}
		text.Draw(screen, label, face, x, margin+ascent, cfg.HUD.TextColor)
	}
}
