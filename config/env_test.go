package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	round, star, player, debug, assets := Round, Star, Player, Debug, Assets
	t.Cleanup(func() {
		Round, Star, Player, Debug, Assets = round, star, player, debug, assets
	})
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
		check   func(t *testing.T)
	}{
		{
			name: "no overrides keeps defaults",
			env:  map[string]string{},
			check: func(t *testing.T) {
				assert.Equal(t, 30, Round.TimeLimit)
				assert.Equal(t, 50.0, Round.Fuzz)
			},
		},
		{
			name: "overrides applied",
			env: map[string]string{
				"STARHOP_TIME_LIMIT":      "90",
				"STARHOP_FUZZ":            "40.5",
				"STARHOP_STAR_COLUMNS":    "4",
				"STARHOP_WIN_AT_OR_ABOVE": "true",
				"STARHOP_DEBUG":           "1",
				"STARHOP_ASSETS_DIR":      "/tmp/sprites",
				"STARHOP_LOG_LEVEL":       "debug",
			},
			check: func(t *testing.T) {
				assert.Equal(t, 90, Round.TimeLimit)
				assert.Equal(t, 40.5, Round.Fuzz)
				assert.Equal(t, 4, Star.Columns)
				assert.True(t, Player.WinAtOrAbove)
				assert.True(t, Debug.ShowHitboxes)
				assert.Equal(t, "/tmp/sprites", Assets.Dir)
				assert.Equal(t, "debug", Debug.LogLevel)
			},
		},
		{
			name:    "zero time limit rejected",
			env:     map[string]string{"STARHOP_TIME_LIMIT": "0"},
			wantErr: ErrInvalidTimeLimit,
		},
		{
			name:    "star columns beyond board rejected",
			env:     map[string]string{"STARHOP_STAR_COLUMNS": "6"},
			wantErr: ErrInvalidStarColumns,
		},
		{
			name:    "negative fuzz rejected",
			env:     map[string]string{"STARHOP_FUZZ": "-1"},
			wantErr: ErrInvalidFuzz,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreDefaults(t)

			err := ApplyEnv(lookupFrom(tt.env))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t)
		})
	}
}

func TestApplyEnv_ParseErrors(t *testing.T) {
	for _, key := range []string{"STARHOP_TIME_LIMIT", "STARHOP_FUZZ", "STARHOP_STAR_COLUMNS", "STARHOP_WIN_AT_OR_ABOVE", "STARHOP_DEBUG"} {
		t.Run(key, func(t *testing.T) {
			restoreDefaults(t)
			err := ApplyEnv(lookupFrom(map[string]string{key: "not-a-value"}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.env")
	require.NoError(t, os.WriteFile(path, []byte("STARHOP_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STARHOP_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "loaded", os.Getenv("STARHOP_TEST_DOTENV"))
}

func TestGridPositions(t *testing.T) {
	assert.Equal(t, 202.0, PlayerX(Player.StartCol))
	assert.Equal(t, 375.0, PlayerY(Player.StartRow))
	assert.Equal(t, 126.0, PlayerY(2))
	assert.Equal(t, -40.0, WinY())
}

func TestDirectionFor(t *testing.T) {
	assert.Equal(t, DirUp, DirectionFor(ActionMoveUp))
	assert.Equal(t, DirLeft, DirectionFor(ActionMoveLeft))
	assert.Equal(t, DirNone, DirectionFor(ActionRestart))
	assert.Equal(t, DirNone, DirectionFor(ActionID(99)))
}
