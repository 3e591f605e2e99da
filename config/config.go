package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the crossing scene
const Default ecs.LayerID = 0

// BoardConfig describes the playing field grid
type BoardConfig struct {
	Columns    int
	Rows       int
	CellWidth  float64 // Column width in pixels
	CellHeight float64 // Row height for board tiles, enemies and stars
	MapPath    string  // Tiled map holding the row layout
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Sprite   string
	StartCol int
	StartRow int
	// StartY is the pixel y of the start row. Rows above it are CellHeight apart.
	StartY float64

	// Win row. Reaching it scores a win.
	WinRow int
	// WinAtOrAbove also accepts any position above the win row.
	WinAtOrAbove bool
}

// EnemyConfig contains enemy spawn and movement configuration
type EnemyConfig struct {
	Sprite     string
	SpawnX     float64
	BaseY      float64 // y of the first enemy lane
	Lanes      int     // Number of lanes enemies can spawn in
	MinSpeed   int     // pixels per second, inclusive
	MaxSpeed   int     // pixels per second, exclusive
	DespawnX   float64 // Enemies past this x are removed
	MinSpawnMs int     // Spawn interval lower bound, inclusive
	MaxSpawnMs int     // Spawn interval upper bound, exclusive
}

// StarConfig contains collectible star configuration
type StarConfig struct {
	Sprite  string
	Count   int
	Columns int     // Stars spawn in columns [0, Columns)
	BaseY   float64 // y of the first star lane
	Lanes   int
}

// RoundConfig contains countdown and collision configuration
type RoundConfig struct {
	TimeLimit     int     // seconds
	Fuzz          float64 // Half-width of the proximity box used for hit tests
	MaxFrameDelta float64 // Upper bound for a single frame delta in seconds
	SpaceCellSize int     // resolv broad phase cell size
	// SpaceMargin shifts collision objects into the space so rows above
	// or left of the canvas (the water row sits at y = -40) still get cells.
	SpaceMargin float64
}

// HUDConfig contains heads-up display configuration
type HUDConfig struct {
	StripHeight  float64 // Height of the score strip at the top
	BottomStripY float64 // Top of the timer strip at the bottom
	ScoreY       int     // Text baselines
	TimerY       int
	TextColor    color.RGBA
	StripColor   color.RGBA
	FontSize     float64
	TitleSize    float64
}

// TimeOverConfig contains the time over overlay configuration
type TimeOverConfig struct {
	OverlayColor  color.RGBA // Peak overlay color, alpha is tweened up to this
	TitleColor    color.RGBA
	TextColor     color.RGBA
	Title         string
	TitleY        int
	ScoreY        int
	FadeDuration  float32 // seconds
	RestartHint   string
	ButtonText    string
	ButtonOffsetY int
}

// AssetsConfig controls where sprites come from
type AssetsConfig struct {
	Dir          string // Directory holding images; empty uses placeholders only
	Placeholders bool   // Paint a placeholder when an image is missing
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	LogLevel     string
}

// Global configuration instances
var C *Config
var Board BoardConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Star StarConfig
var Round RoundConfig
var HUD HUDConfig
var TimeOver TimeOverConfig
var Assets AssetsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	WhiteVeil  = color.RGBA{R: 255, G: 255, B: 255, A: 128}
	HitboxRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	HitboxGold = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

// Sprite paths
const (
	SpriteWater  = "images/water-block.png"
	SpriteStone  = "images/stone-block.png"
	SpriteGrass  = "images/grass-block.png"
	SpriteBug    = "images/enemy-bug.png"
	SpritePlayer = "images/char-boy.png"
	SpriteStar   = "images/Star.png"
)

// Sprites lists every image the game loads before the first frame
var Sprites = []string{
	SpriteStone,
	SpriteWater,
	SpriteGrass,
	SpriteBug,
	SpritePlayer,
	SpriteStar,
}

func init() {
	C = &Config{
		Width:  505,
		Height: 636,
		Title:  "Star Hop",
	}

	Board = BoardConfig{
		Columns:    5,
		Rows:       6,
		CellWidth:  101,
		CellHeight: 83,
		MapPath:    "maps/board.tmx",
	}

	// Start cell is (202, 375); the water row sits at y = -40
	Player = PlayerConfig{
		Sprite:   SpritePlayer,
		StartCol: 2,
		StartRow: 5,
		StartY:   5 * 75,
		WinRow:   0,
	}

	Enemy = EnemyConfig{
		Sprite:     SpriteBug,
		SpawnX:     0,
		BaseY:      60,
		Lanes:      3,
		MinSpeed:   50,
		MaxSpeed:   200,
		DespawnX:   505,
		MinSpawnMs: 750,
		MaxSpawnMs: 1000,
	}

	Star = StarConfig{
		Sprite:  SpriteStar,
		Count:   3,
		Columns: 5,
		BaseY:   75,
		Lanes:   3,
	}

	Round = RoundConfig{
		TimeLimit:     30,
		Fuzz:          50,
		MaxFrameDelta: 1.0,
		SpaceCellSize: 32,
		SpaceMargin:   160,
	}

	HUD = HUDConfig{
		StripHeight:  80,
		BottomStripY: 600,
		ScoreY:       50,
		TimerY:       626,
		TextColor:    Red,
		StripColor:   White,
		FontSize:     28,
		TitleSize:    56,
	}

	TimeOver = TimeOverConfig{
		OverlayColor:  WhiteVeil,
		TitleColor:    Black,
		TextColor:     Black,
		Title:         "TIME OVER",
		TitleY:        318,
		ScoreY:        370,
		FadeDuration:  0.4,
		RestartHint:   "ENTER to restart",
		ButtonText:    "Restart",
		ButtonOffsetY: 80,
	}

	Assets = AssetsConfig{
		Dir:          "",
		Placeholders: true,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: false,
		LogLevel:     "info",
	}
}

// PlayerX returns the pixel x of a grid column
func PlayerX(col int) float64 {
	return float64(col) * Board.CellWidth
}

// PlayerY returns the pixel y of a grid row
func PlayerY(row int) float64 {
	return Player.StartY - float64(Player.StartRow-row)*Board.CellHeight
}

// WinY returns the pixel y of the win row
func WinY() float64 {
	return PlayerY(Player.WinRow)
}
