package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns a world with a running round and a seeded random source
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	restoreConfig(t)

	e := ecs.NewECS(donburi.NewWorld())
	SetupRound(e, rand.New(rand.NewPCG(1, 2)))
	StartRound(e)
	require.True(t, IsRunning(e))
	return e
}

func restoreConfig(t *testing.T) {
	t.Helper()
	round, player, star, clockNow := cfg.Round, cfg.Player, cfg.Star, now
	t.Cleanup(func() {
		cfg.Round, cfg.Player, cfg.Star, now = round, player, star, clockNow
	})
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return entry
}

func playerXY(t *testing.T, e *ecs.ECS) (float64, float64) {
	t.Helper()
	x, y, ok := PlayerPosition(e)
	require.True(t, ok)
	return x, y
}

func moveTimes(e *ecs.ECS, dir cfg.Direction, n int) {
	for i := 0; i < n; i++ {
		MovePlayer(e, dir)
	}
}

// setDelta makes the next DeltaTime call return dt
func setDelta(t *testing.T, e *ecs.ECS, dt float64) {
	t.Helper()
	entry, ok := components.Clock.First(e.World)
	require.True(t, ok)
	components.Clock.Get(entry).Delta = dt
}

// fixedClock returns a now function that reads the times in order
func fixedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}
