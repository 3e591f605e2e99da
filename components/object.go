package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's broad phase box in the collision space
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// PositionData is the entity's drawn position. For enemies and stars the
// collision box is centred on it.
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()

var Space = donburi.NewComponentType[resolv.Space]()
