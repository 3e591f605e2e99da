package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovePlayer_StartsOnStartCell(t *testing.T) {
	e := newTestECS(t)

	x, y := playerXY(t, e)
	assert.Equal(t, 202.0, x)
	assert.Equal(t, 375.0, y)
}

func TestMovePlayer_UpThreeTimes(t *testing.T) {
	e := newTestECS(t)

	moveTimes(e, cfg.DirUp, 3)

	x, y := playerXY(t, e)
	assert.Equal(t, 202.0, x)
	assert.Equal(t, 126.0, y)
}

func TestMovePlayer_UpStopsAtWater(t *testing.T) {
	e := newTestECS(t)

	moveTimes(e, cfg.DirUp, 4)
	_, y := playerXY(t, e)
	assert.Equal(t, 43.0, y)

	MovePlayer(e, cfg.DirUp)
	_, y = playerXY(t, e)
	assert.Equal(t, -40.0, y)

	moveTimes(e, cfg.DirUp, 3)
	_, y = playerXY(t, e)
	assert.Equal(t, -40.0, y, "never above the water row")
}

func TestMovePlayer_BlockedAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		dir   cfg.Direction
		times int
		wantX float64
		wantY float64
	}{
		{name: "left edge", dir: cfg.DirLeft, times: 5, wantX: 0, wantY: 375},
		{name: "right edge", dir: cfg.DirRight, times: 5, wantX: 404, wantY: 375},
		{name: "bottom edge", dir: cfg.DirDown, times: 2, wantX: 202, wantY: 375},
		{name: "no direction", dir: cfg.DirNone, times: 3, wantX: 202, wantY: 375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			moveTimes(e, tt.dir, tt.times)

			x, y := playerXY(t, e)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestMovePlayer_AnySequenceStaysOnGrid(t *testing.T) {
	e := newTestECS(t)
	rng := rand.New(rand.NewPCG(7, 11))
	dirs := []cfg.Direction{cfg.DirNone, cfg.DirLeft, cfg.DirUp, cfg.DirRight, cfg.DirDown}

	validY := map[float64]bool{}
	for row := 0; row < cfg.Board.Rows; row++ {
		validY[cfg.PlayerY(row)] = true
	}

	for i := 0; i < 1000; i++ {
		MovePlayer(e, dirs[rng.IntN(len(dirs))])

		p := components.Player.Get(playerEntry(t, e))
		require.GreaterOrEqual(t, p.Col, 0)
		require.Less(t, p.Col, cfg.Board.Columns)
		require.GreaterOrEqual(t, p.Row, 0)
		require.Less(t, p.Row, cfg.Board.Rows)

		x, y := playerXY(t, e)
		require.Equal(t, cfg.PlayerX(p.Col), x)
		require.True(t, validY[y], "y %v is not a grid row", y)
	}
}

func TestMovePlayer_KeepsCollisionPointInStep(t *testing.T) {
	e := newTestECS(t)
	MovePlayer(e, cfg.DirLeft)
	MovePlayer(e, cfg.DirUp)

	obj := components.Object.Get(playerEntry(t, e))
	sx, sy := factory.SpacePoint(101, 292)
	assert.Equal(t, sx, obj.X)
	assert.Equal(t, sy, obj.Y)
}

func TestResetPlayer_FreshBoard(t *testing.T) {
	e := newTestECS(t)
	round := GetRound(e)

	for i := 0; i < 4; i++ {
		factory.SpawnEnemy(e, round)
	}
	moveTimes(e, cfg.DirUp, 2)
	moveTimes(e, cfg.DirRight, 2)

	ResetPlayer(e)

	x, y := playerXY(t, e)
	assert.Equal(t, 202.0, x)
	assert.Equal(t, 375.0, y)
	assert.Equal(t, 0, CountEnemies(e))

	total, active := CountStars(e)
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, active)
}

func TestSpawnStars_OnStarLanes(t *testing.T) {
	e := newTestECS(t)
	clearStars(e)

	stars := factory.SpawnStars(e, GetRound(e))
	require.Len(t, stars, cfg.Star.Count)

	for _, s := range stars {
		pos := components.Position.Get(s)
		assert.Contains(t, []float64{0, 101, 202, 303, 404}, pos.X)
		assert.Contains(t, []float64{75, 158, 241}, pos.Y)
		assert.False(t, components.Star.Get(s).Collected)
	}
}

func TestSpawnStars_HonoursStarColumns(t *testing.T) {
	e := newTestECS(t)
	cfg.Star.Columns = 1
	clearStars(e)

	for i := 0; i < 10; i++ {
		for _, s := range factory.SpawnStars(e, GetRound(e)) {
			assert.Equal(t, 0.0, components.Position.Get(s).X)
		}
	}
}
