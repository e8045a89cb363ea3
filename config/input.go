package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBackward
	ActionFire
	ActionRotateLeft
	ActionRotateRight
	ActionSelfDestruct
	ActionSave
	ActionLoad
	ActionQuit
	ActionToggleHitboxes
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Players holds the per-plane bindings, indexed by player.
	Players [2]map[ActionID]InputBinding
	// Global holds session-wide bindings (save, load, quit).
	Global map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Players: [2]map[ActionID]InputBinding{
			{
				ActionMoveLeft:     {Keys: []ebiten.Key{ebiten.KeyLeft}},
				ActionMoveRight:    {Keys: []ebiten.Key{ebiten.KeyRight}},
				ActionMoveForward:  {Keys: []ebiten.Key{ebiten.KeyUp}},
				ActionMoveBackward: {Keys: []ebiten.Key{ebiten.KeyDown}},
				ActionFire:         {Keys: []ebiten.Key{ebiten.KeySpace}},
				ActionRotateLeft:   {Keys: []ebiten.Key{ebiten.KeyN}},
				ActionRotateRight:  {Keys: []ebiten.Key{ebiten.KeyM}},
				ActionSelfDestruct: {Keys: []ebiten.Key{ebiten.KeyEnter}},
			},
			{
				ActionMoveLeft:     {Keys: []ebiten.Key{ebiten.KeyA}},
				ActionMoveRight:    {Keys: []ebiten.Key{ebiten.KeyD}},
				ActionMoveForward:  {Keys: []ebiten.Key{ebiten.KeyW}},
				ActionMoveBackward: {Keys: []ebiten.Key{ebiten.KeyS}},
				ActionFire:         {Keys: []ebiten.Key{ebiten.KeyH}},
				ActionRotateLeft:   {Keys: []ebiten.Key{ebiten.KeyR}},
				ActionRotateRight:  {Keys: []ebiten.Key{ebiten.KeyT}},
				ActionSelfDestruct: {Keys: []ebiten.Key{ebiten.KeyQ}},
			},
		},
		Global: map[ActionID]InputBinding{
			ActionSave:           {Keys: []ebiten.Key{ebiten.KeyZ}},
			ActionLoad:           {Keys: []ebiten.Key{ebiten.KeyX}},
			ActionQuit:           {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionToggleHitboxes: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionMenuSelect:     {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
		},
	}
}
