package systems

import (
	"fmt"

	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WindowTitle formats the window title. Player 2's lives are shown first,
// matching the planes' starting sides.
func WindowTitle(fps, livesP1, livesP2 int) string {
	return fmt.Sprintf("%s : %d FPS  Lives: %d - %d", cfg.C.Title, fps, livesP2, livesP1)
}

// UpdateWindowTitle refreshes the title when the frame rate or a lives count
// changes.
func UpdateWindowTitle(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}

	var lives [2]int
	for i, p := range Players(e) {
		if p != nil {
			lives[i] = components.Lives.Get(p).Lives
		}
	}

	fps := int(ebiten.ActualFPS() + 0.5)
	if fps == session.LastFPS && lives == session.LastLives {
		return
	}
	session.LastFPS = fps
	session.LastLives = lives
	ebiten.SetWindowTitle(WindowTitle(fps, lives[0], lives[1]))
}
