package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData holds the player's grid cell. Pixel position is derived from it,
// so the player can never sit between cells.
type PlayerData struct {
	Col int
	Row int
}

var Player = donburi.NewComponentType[PlayerData]()
