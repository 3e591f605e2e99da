package systems

import (
	"testing"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveEnemies_ScalesWithDelta(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		dt    float64
		wantX float64
	}{
		{name: "half second", speed: 120, dt: 0.5, wantX: 60},
		{name: "one frame", speed: 60, dt: 1.0 / 60, wantX: 1},
		{name: "no time", speed: 199, dt: 0, wantX: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			enemy := factory.CreateEnemy(e, 0, 60, tt.speed)

			MoveEnemies(e, tt.dt)

			pos := components.Position.Get(enemy)
			assert.InDelta(t, tt.wantX, pos.X, 1e-9)
			assert.Equal(t, 60.0, pos.Y)

			// Broad phase box follows the enemy
			obj := components.Object.Get(enemy)
			bx, by := factory.BoxOrigin(pos.X, pos.Y, cfg.Round.Fuzz)
			assert.InDelta(t, bx, obj.X, 1e-9)
			assert.Equal(t, by, obj.Y)
		})
	}
}

func TestMoveEnemies_DespawnsPastRightEdge(t *testing.T) {
	e := newTestECS(t)
	leaving := factory.CreateEnemy(e, 500, 60, 100)
	staying := factory.CreateEnemy(e, 100, 143, 100)
	leavingObj := components.Object.Get(leaving).Object

	MoveEnemies(e, 0.1)

	assert.Equal(t, 1, CountEnemies(e))
	assert.False(t, leaving.Valid())
	assert.True(t, staying.Valid())
	assert.Nil(t, leavingObj.Space, "object left the collision space")
}

func TestUpdateSpawner_ReleasesOnInterval(t *testing.T) {
	e := newTestECS(t)
	round := GetRound(e)
	round.SpawnInterval = 0.8

	setDelta(t, e, 0.5)
	UpdateSpawner(e)
	assert.Equal(t, 0, CountEnemies(e))

	UpdateSpawner(e)
	require.Equal(t, 1, CountEnemies(e))
	assert.InDelta(t, 0.2, round.SpawnElapsed, 1e-9)
}

func TestSpawnEnemy_RandomLaneAndSpeed(t *testing.T) {
	e := newTestECS(t)
	round := GetRound(e)

	for i := 0; i < 200; i++ {
		enemy := factory.SpawnEnemy(e, round)
		pos := components.Position.Get(enemy)
		speed := components.Enemy.Get(enemy).Speed

		assert.Equal(t, 0.0, pos.X)
		assert.Contains(t, []float64{60, 143, 226}, pos.Y)
		assert.GreaterOrEqual(t, speed, 50.0)
		assert.Less(t, speed, 200.0)
		assert.Equal(t, speed, float64(int(speed)), "speeds are whole numbers")
	}
}

func TestStartRound_PicksSpawnInterval(t *testing.T) {
	e := newTestECS(t)
	round := GetRound(e)

	assert.GreaterOrEqual(t, round.SpawnInterval, 0.75)
	assert.Less(t, round.SpawnInterval, 1.0)
}
