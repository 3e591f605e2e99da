package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData names the loaded image an entity is drawn with
type SpriteData struct {
	Path string
}

var Sprite = donburi.NewComponentType[SpriteData]()
