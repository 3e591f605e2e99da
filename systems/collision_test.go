package systems

import (
	"testing"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHit(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		ex, ey float64
		want   bool
	}{
		{name: "same point", px: 100, py: 100, ex: 100, ey: 100, want: true},
		{name: "just inside on x", px: 149.9, py: 100, ex: 100, ey: 100, want: true},
		{name: "exactly fuzz on x", px: 150, py: 100, ex: 100, ey: 100, want: false},
		{name: "exactly fuzz on negative x", px: 50, py: 100, ex: 100, ey: 100, want: false},
		{name: "exactly fuzz on y", px: 100, py: 150, ex: 100, ey: 100, want: false},
		{name: "inside on both axes", px: 140, py: 60, ex: 100, ey: 100, want: true},
		{name: "outside on y only", px: 100, py: 40, ex: 100, ey: 100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hit(tt.px, tt.py, tt.ex, tt.ey, 50))
		})
	}
}

func TestCheckCollisions_EnemyHit(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)
	MovePlayer(e, cfg.DirUp) // (202, 292)

	factory.CreateEnemy(e, 190, 300, 120)
	factory.CreateEnemy(e, 0, 60, 120)

	out := CheckCollisions(e)

	assert.True(t, out.Lost)
	assert.False(t, out.Won)
	round := GetRound(e)
	assert.Equal(t, components.Score{Losses: 1}, round.Score)

	x, y := playerXY(t, e)
	assert.Equal(t, 202.0, x)
	assert.Equal(t, 375.0, y)
	assert.Equal(t, 0, CountEnemies(e), "every enemy is cleared")

	total, active := CountStars(e)
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, active)
}

func TestCheckCollisions_EnemyExactlyAtFuzz(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)

	// Player at (202, 375)
	factory.CreateEnemy(e, 252, 375, 120)
	factory.CreateEnemy(e, 202, 325, 120)

	out := CheckCollisions(e)

	assert.False(t, out.Lost)
	assert.Equal(t, 0, GetRound(e).Score.Losses)
	assert.Equal(t, 2, CountEnemies(e))
}

func TestCheckCollisions_EnemyWithinFuzz(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)
	factory.CreateEnemy(e, 251.5, 375, 120)

	out := CheckCollisions(e)

	assert.True(t, out.Lost)
}

func TestCheckCollisions_StarCollectedOnce(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)
	star := factory.CreateStar(e, 210, 360)

	out := CheckCollisions(e)
	assert.Equal(t, 1, out.Stars)
	assert.True(t, components.Star.Get(star).Collected)
	assert.Equal(t, 1, GetRound(e).Score.Stars)

	// Player has not moved; the star must not count again
	out = CheckCollisions(e)
	assert.Equal(t, 0, out.Stars)
	assert.Equal(t, 1, GetRound(e).Score.Stars)

	total, active := CountStars(e)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, active)
}

func TestCheckCollisions_TwoStarsSamePass(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)
	factory.CreateStar(e, 202, 375)
	factory.CreateStar(e, 180, 390)
	factory.CreateStar(e, 404, 75)

	out := CheckCollisions(e)

	assert.Equal(t, 2, out.Stars)
	assert.Equal(t, 2, GetRound(e).Score.Stars)
}

func TestCheckCollisions_Win(t *testing.T) {
	tests := []struct {
		name         string
		winAtOrAbove bool
	}{
		{name: "exact water row"},
		{name: "at or above variant", winAtOrAbove: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			cfg.Player.WinAtOrAbove = tt.winAtOrAbove
			clearStars(e)
			moveTimes(e, cfg.DirUp, 5)

			_, y := playerXY(t, e)
			require.Equal(t, -40.0, y)

			out := CheckCollisions(e)

			assert.True(t, out.Won)
			assert.Equal(t, components.Score{Wins: 1}, GetRound(e).Score)
			x, y := playerXY(t, e)
			assert.Equal(t, 202.0, x)
			assert.Equal(t, 375.0, y)

			total, active := CountStars(e)
			assert.Equal(t, 3, total)
			assert.Equal(t, 3, active)
		})
	}
}

func TestCheckCollisions_NoWinBelowWater(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)
	moveTimes(e, cfg.DirUp, 4) // y = 43

	out := CheckCollisions(e)

	assert.False(t, out.Won)
	assert.Equal(t, 0, GetRound(e).Score.Wins)
}

func TestCheckCollisions_StarAndWinSamePass(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)
	moveTimes(e, cfg.DirUp, 5) // (202, -40)
	factory.CreateStar(e, 202, -30)

	out := CheckCollisions(e)

	assert.Equal(t, 1, out.Stars)
	assert.True(t, out.Won)
	assert.Equal(t, components.Score{Wins: 1, Stars: 1}, GetRound(e).Score)
}

func TestCheckCollisions_EnemyBeforeStars(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)

	// Enemy and star on the start cell: the loss resets the board before stars are checked
	factory.CreateEnemy(e, 202, 375, 120)
	factory.CreateStar(e, 202, 375)

	out := CheckCollisions(e)

	assert.True(t, out.Lost)
	assert.Equal(t, 0, out.Stars)
	assert.Equal(t, components.Score{Losses: 1}, GetRound(e).Score)
}

func TestUpdateCollisions_SkippedUnlessRunning(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)
	factory.CreateEnemy(e, 202, 375, 120)
	GetRound(e).State = cfg.RoundStateTimeOver

	WithRunningCheck(UpdateCollisions)(e)

	assert.Equal(t, 0, GetRound(e).Score.Losses)
	assert.Equal(t, 1, CountEnemies(e))
}
