package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveUp
	ActionMoveRight
	ActionMoveDown
	ActionRestart
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Directions maps movement actions to grid steps. Actions missing here never move the player.
	Directions map[ActionID]Direction
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
			ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
			ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
			ActionRestart:   {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR}},
			ActionQuit:      {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
		Directions: map[ActionID]Direction{
			ActionMoveLeft:  DirLeft,
			ActionMoveUp:    DirUp,
			ActionMoveRight: DirRight,
			ActionMoveDown:  DirDown,
		},
	}
}

// DirectionFor returns the grid step bound to an action, or DirNone
func DirectionFor(id ActionID) Direction {
	if dir, ok := Input.Directions[id]; ok {
		return dir
	}
	return DirNone
}
