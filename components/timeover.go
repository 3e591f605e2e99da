package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TimeOverData drives the overlay shown once the countdown expires
type TimeOverData struct {
	Fade  *gween.Tween
	Alpha float32 // 0..1 share of the configured overlay alpha
}

var TimeOver = donburi.NewComponentType[TimeOverData]()
