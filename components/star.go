package components

import "github.com/yohamta/donburi"

// StarData is a collectible. Collected stars stay in the world until the next
// reset but are skipped by collision checks and rendering.
type StarData struct {
	Collected bool
}

var Star = donburi.NewComponentType[StarData]()
