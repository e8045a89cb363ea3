package systems

import (
	"log"

	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/automoto/skyduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession advances the frame clock and pauses the match while the
// window is minimised.
func UpdateSession(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}
	session.Active = !ebiten.IsWindowMinimized()
	if session.Active {
		session.Frame++
	}
}

// WithActiveSession wraps a system to skip execution while the session is
// inactive or already decided.
func WithActiveSession(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		session := GetSession(e)
		if session == nil || !session.Active || session.Over {
			return
		}
		system(e)
	}
}

// UpdateLives ends the match as soon as a plane is out of lives. Player 1 is
// checked first.
func UpdateLives(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || session.Over {
		return
	}

	players := Players(e)
	for i, p := range players {
		if p == nil || !components.Lives.Get(p).Out() {
			continue
		}
		winner := 1 - i
		session.Over = true
		session.Winner = winner
		session.Outcome = cfg.Player.Names[winner] + " wins"
		log.Printf("Game over: %s", session.Outcome)
		return
	}
}

// GetSession returns the session singleton, or nil outside a match.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetArena returns the arena layout of the running match.
func GetArena(e *ecs.ECS) *components.ArenaData {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		arena := components.DefaultArena()
		return &arena
	}
	return components.Arena.Get(entry)
}

// Players returns both planes indexed by player number.
func Players(e *ecs.ECS) [2]*donburi.Entry {
	var players [2]*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		idx := components.Player.Get(entry).Index
		if idx >= 0 && idx < len(players) {
			players[idx] = entry
		}
	})
	return players
}
