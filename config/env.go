package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "STARHOP_"

var (
	ErrInvalidTimeLimit   = errors.New("time limit must be positive")
	ErrInvalidStarColumns = errors.New("star columns out of board range")
	ErrInvalidFuzz        = errors.New("fuzz radius must be positive")
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides configuration from STARHOP_* variables.
// lookup is usually os.LookupEnv.
func ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(envPrefix + "TIME_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTIME_LIMIT: %w", envPrefix, err)
		}
		Round.TimeLimit = n
	}
	if v, ok := lookup(envPrefix + "FUZZ"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sFUZZ: %w", envPrefix, err)
		}
		Round.Fuzz = f
	}
	if v, ok := lookup(envPrefix + "STAR_COLUMNS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sSTAR_COLUMNS: %w", envPrefix, err)
		}
		Star.Columns = n
	}
	if v, ok := lookup(envPrefix + "WIN_AT_OR_ABOVE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sWIN_AT_OR_ABOVE: %w", envPrefix, err)
		}
		Player.WinAtOrAbove = b
	}
	if v, ok := lookup(envPrefix + "DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", envPrefix, err)
		}
		Debug.ShowHitboxes = b
	}
	if v, ok := lookup(envPrefix + "ASSETS_DIR"); ok {
		Assets.Dir = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		Debug.LogLevel = v
	}

	return Validate()
}

// Validate checks the values that would otherwise break the round
func Validate() error {
	if Round.TimeLimit <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTimeLimit, Round.TimeLimit)
	}
	if Star.Columns < 1 || Star.Columns > Board.Columns {
		return fmt.Errorf("%w: %d", ErrInvalidStarColumns, Star.Columns)
	}
	if Round.Fuzz <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFuzz, Round.Fuzz)
	}
	return nil
}
