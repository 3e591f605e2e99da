package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/starhop/archetypes"
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound creates the round singleton in the loading state.
// A nil rng is seeded from the clock.
func CreateRound(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		State:     cfg.RoundStateLoading,
		Countdown: cfg.Round.TimeLimit,
		Rand:      rng,
	})
	return round
}

func CreateClock(ecs *ecs.ECS, now time.Time) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Last: now})
	return clock
}

func CreateTimeOver(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.TimeOver.Spawn(ecs)
}
