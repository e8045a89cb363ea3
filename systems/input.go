package systems

import (
	"log"

	"github.com/automoto/skyduel/components"
	cfg "github.com/automoto/skyduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the session-wide bindings into the Input component.
// Must run BEFORE UpdateControls in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Global {
		input.Current[actionID] = anyKeyPressed(binding.Keys)
	}
}

// UpdatePlayerInput polls each plane's own key bindings.
func UpdatePlayerInput(ecs *ecs.ECS) {
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.PreviousInput = input.CurrentInput
		input.CurrentInput = [cfg.ActionCount]bool{}

		if input.PlayerIndex < 0 || input.PlayerIndex >= len(cfg.Input.Players) {
			return
		}
		for actionID, binding := range cfg.Input.Players[input.PlayerIndex] {
			input.CurrentInput[actionID] = anyKeyPressed(binding.Keys)
		}
	})
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.CurrentInput[id]
	prev := input.PreviousInput[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Direction builds the movement bitmask from the held movement actions.
func Direction(input *components.PlayerInputData) components.Direction {
	var dir components.Direction
	if input.CurrentInput[cfg.ActionMoveLeft] {
		dir |= components.DirLeft
	}
	if input.CurrentInput[cfg.ActionMoveRight] {
		dir |= components.DirRight
	}
	if input.CurrentInput[cfg.ActionMoveForward] {
		dir |= components.DirForward
	}
	if input.CurrentInput[cfg.ActionMoveBackward] {
		dir |= components.DirBackward
	}
	return dir
}

// UpdateControls turns each plane's input into actions: fire, rotate,
// self-destruct and movement. Exploding planes still steer.
func UpdateControls(e *ecs.ECS) {
	field := GetArena(e).Field

	for _, entry := range Players(e) {
		if entry == nil {
			continue
		}
		input := components.PlayerInput.Get(entry)
		player := components.Player.Get(entry)
		sprite := components.Sprite.Get(entry)

		if GetPlayerAction(input, cfg.ActionFire).Pressed {
			Shoot(e, entry, cfg.Player.FireSlots[player.Index])
		}
		if GetPlayerAction(input, cfg.ActionRotateLeft).JustPressed {
			player.RotateLeft(sprite)
		}
		if GetPlayerAction(input, cfg.ActionRotateRight).JustPressed {
			player.RotateRight(sprite)
		}
		if GetPlayerAction(input, cfg.ActionSelfDestruct).JustPressed {
			ExplodePlayer(e, entry, cfg.Explosion.TickFrames)
		}

		player.Move(sprite, Direction(input), field)
	}
}

// UpdateSessionControls handles save, load and the hitbox overlay toggle.
func UpdateSessionControls(e *ecs.ECS) {
	input := getOrCreateInput(e)
	session := GetSession(e)

	if GetAction(input, cfg.ActionSave).JustPressed {
		if err := SaveGame(e, saveStore); err != nil {
			log.Printf("Warning: Could not save game: %v", err)
		}
	}
	if GetAction(input, cfg.ActionLoad).JustPressed {
		if err := LoadGame(e, saveStore); err != nil {
			log.Printf("Warning: Could not load game: %v", err)
		}
	}
	if GetAction(input, cfg.ActionToggleHitboxes).JustPressed && session != nil {
		session.ShowHitboxes = !session.ShowHitboxes
	}
}

// QuitRequested reports whether the quit key was pressed this frame.
func QuitRequested(e *ecs.ECS) bool {
	return GetAction(getOrCreateInput(e), cfg.ActionQuit).JustPressed
}
