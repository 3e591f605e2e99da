package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData tracks wall-clock time between frames
type ClockData struct {
	Last   time.Time
	Delta  float64 // seconds since the previous frame
	Frames int
}

var Clock = donburi.NewComponentType[ClockData]()
