package components

import (
	cfg "github.com/automoto/skyduel/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for the
// session-wide actions (save, load, quit, debug).
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-player input state, polled from that player's
// key bindings.
type PlayerInputData struct {
	PlayerIndex   int
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
