package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/starhop/config"
	"github.com/yohamta/donburi"
)

// Score holds the three round counters
type Score struct {
	Wins   int
	Losses int
	Stars  int
}

// RoundData stores the round state, counters and countdown.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	State     cfg.RoundStateID
	Score     Score
	Countdown int     // whole seconds left
	Elapsed   float64 // seconds accumulated toward the next countdown tick
	Final     Score   // counters captured when time ran out

	// Enemy spawner
	SpawnInterval float64 // seconds between spawns, picked once per round
	SpawnElapsed  float64

	Rand *rand.Rand
}

var Round = donburi.NewComponentType[RoundData]()

// AddWin increments the win counter
func (r *RoundData) AddWin() {
	r.Score.Wins++
}

// AddLoss increments the loss counter
func (r *RoundData) AddLoss() {
	r.Score.Losses++
}

// AddStar increments the collected star counter
func (r *RoundData) AddStar() {
	r.Score.Stars++
}

// RandomBetween returns an integer in [min, max)
func (r *RoundData) RandomBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Rand.IntN(max-min)
}

// IsRunning reports whether gameplay systems should advance
func (r *RoundData) IsRunning() bool {
	return r.State == cfg.RoundStateRunning
}
