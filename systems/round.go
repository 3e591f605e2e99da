package systems

import (
	"math/rand/v2"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// SetupRound creates the collision space, the singletons and the player.
// The round stays in the loading state until StartRound. A nil rng is seeded from the clock.
func SetupRound(ecs *ecs.ECS, rng *rand.Rand) *components.RoundData {
	cell := cfg.Round.SpaceCellSize
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cell, cell)
	factory.CreateClock(ecs, now())
	factory.CreateTimeOver(ecs)
	entry := factory.CreateRound(ecs, rng)
	factory.CreatePlayer(ecs)
	return components.Round.Get(entry)
}

// StartRound enters the running state with a full countdown and a fresh board.
// Counters are kept.
func StartRound(ecs *ecs.ECS) {
	round := GetRound(ecs)
	if round == nil {
		return
	}

	round.State = cfg.RoundStateRunning
	round.Countdown = cfg.Round.TimeLimit
	round.Elapsed = 0
	round.SpawnInterval = float64(round.RandomBetween(cfg.Enemy.MinSpawnMs, cfg.Enemy.MaxSpawnMs)) / 1000
	round.SpawnElapsed = 0

	ResetPlayer(ecs)
	hideTimeOver(ecs)

	// Time spent loading or on the overlay must not count as a frame
	clock := getOrCreateClock(ecs)
	clock.Last = now()
	clock.Delta = 0

	log.Info("round started", "time_limit", round.Countdown, "spawn_interval", round.SpawnInterval)
}

// ResetRound zeroes the counters and resets the board
func ResetRound(ecs *ecs.ECS) {
	round := GetRound(ecs)
	if round == nil {
		return
	}
	round.Score = components.Score{}
	round.Elapsed = 0
	round.SpawnElapsed = 0
	ResetPlayer(ecs)
}

// UpdateRound runs the countdown
func UpdateRound(ecs *ecs.ECS) {
	AdvanceCountdown(ecs, DeltaTime(ecs))
}

// AdvanceCountdown adds dt to the elapsed time and takes one second off the
// countdown for every whole second accumulated. Reaching zero ends the round.
func AdvanceCountdown(ecs *ecs.ECS, dt float64) {
	round := GetRound(ecs)
	if round == nil || !round.IsRunning() {
		return
	}

	round.Elapsed += dt
	for round.Elapsed >= 1 && round.Countdown > 0 {
		round.Elapsed--
		round.Countdown--
	}

	if round.Countdown <= 0 {
		expireRound(ecs, round)
	}
}

// expireRound moves a running round to TimeOver. Callers guarantee the round is running,
// so this happens once per round.
func expireRound(ecs *ecs.ECS, round *components.RoundData) {
	round.Final = round.Score
	ResetRound(ecs)
	round.Countdown = 0
	round.State = cfg.RoundStateTimeOver
	showTimeOver(ecs)

	log.Info("time over",
		"wins", round.Final.Wins,
		"losses", round.Final.Losses,
		"stars", round.Final.Stars,
	)
}

// RestartRound leaves TimeOver and starts a new round. It reports whether a restart happened.
func RestartRound(ecs *ecs.ECS) bool {
	round := GetRound(ecs)
	if round == nil || round.State != cfg.RoundStateTimeOver {
		return false
	}
	StartRound(ecs)
	return true
}

// GetRound returns the round singleton, or nil before SetupRound
func GetRound(ecs *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}

// IsRunning reports whether gameplay systems should advance
func IsRunning(ecs *ecs.ECS) bool {
	round := GetRound(ecs)
	return round != nil && round.IsRunning()
}

// IsTimeOver reports whether the round ended and waits for a restart
func IsTimeOver(ecs *ecs.ECS) bool {
	round := GetRound(ecs)
	return round != nil && round.State == cfg.RoundStateTimeOver
}

// WithRunningCheck wraps a system to skip execution unless the round is running
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}
