package systems

import (
	"time"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out in tests
var now = time.Now

// UpdateClock measures the wall-clock time since the previous frame.
// Must run BEFORE any system that reads DeltaTime.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	t := now()
	clock.Delta = clampDelta(t.Sub(clock.Last).Seconds())
	clock.Last = t
	clock.Frames++
}

func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > cfg.Round.MaxFrameDelta {
		return cfg.Round.MaxFrameDelta
	}
	return dt
}

// DeltaTime returns the seconds elapsed between the last two frames
func DeltaTime(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

// getOrCreateClock returns the singleton Clock component, creating if needed
func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{Last: now()})
	}
	return components.Clock.Get(entry)
}
