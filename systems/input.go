package systems

import (
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the Input component.
// Must run BEFORE UpdatePlayerInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollInput(input, ebiten.IsKeyPressed)
}

func pollInput(input *components.InputData, isPressed func(ebiten.Key) bool) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if isPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// UpdatePlayerInput moves the player one cell for every direction key released this frame.
func UpdatePlayerInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		if GetAction(input, id).JustReleased {
			HandleInput(ecs, cfg.DirectionFor(id))
		}
	}
}

// HandleInput forwards a direction to the player. DirNone is ignored.
func HandleInput(ecs *ecs.ECS, dir cfg.Direction) {
	if dir == cfg.DirNone {
		return
	}
	MovePlayer(ecs, dir)
}

// QuitRequested reports whether the quit key was released this frame
func QuitRequested(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionQuit).JustReleased
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
