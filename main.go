package main

import (
	"flag"
	"image"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/automoto/starhop/assets"
	"github.com/automoto/starhop/config"
	"github.com/automoto/starhop/fonts"
	"github.com/automoto/starhop/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(rng *rand.Rand) (*Game, error) {
	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g, rng)

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(scenes.Quitter); ok && q.ShouldQuit() {
		log.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	envFile := flag.String("env", ".env", "Environment file to load before STARHOP_* variables")
	assetsDir := flag.String("assets", "", "Directory holding the images (empty = placeholders only)")
	timeLimit := flag.Int("time-limit", 0, "Round length in seconds (0 = keep configured value)")
	starColumns := flag.Int("star-columns", 0, "Stars spawn in columns [0, n) (0 = keep configured value)")
	winAtOrAbove := flag.Bool("win-at-or-above", false, "Count any position at or above the water row as a win")
	debug := flag.Bool("debug", false, "Show collision boxes and frame timing")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	seed := flag.Uint64("seed", 0, "Random seed for enemies and stars (0 = from the clock)")
	flag.Parse()

	log.SetReportTimestamp(true)
	log.SetPrefix("starhop")

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatal("failed to load env file", "err", err)
	}
	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	// Flags win over the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			config.Assets.Dir = *assetsDir
		case "time-limit":
			config.Round.TimeLimit = *timeLimit
		case "star-columns":
			config.Star.Columns = *starColumns
		case "win-at-or-above":
			config.Player.WinAtOrAbove = *winAtOrAbove
		case "debug":
			config.Debug.ShowHitboxes = *debug
		case "log-level":
			config.Debug.LogLevel = *logLevel
		}
	})
	if err := config.Validate(); err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	level, err := log.ParseLevel(strings.ToLower(config.Debug.LogLevel))
	if err != nil {
		log.Fatal("invalid log level", "level", config.Debug.LogLevel, "err", err)
	}
	log.SetLevel(level)

	if config.Assets.Dir != "" {
		assets.Configure(os.DirFS(config.Assets.Dir), config.Assets.Placeholders)
	} else {
		assets.Configure(nil, config.Assets.Placeholders)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed>>1))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game, err := NewGame(rng)
	if err != nil {
		log.Fatal("failed to start", "err", err)
	}

	log.Info("starting", "time_limit", config.Round.TimeLimit, "assets", config.Assets.Dir, "debug", config.Debug.ShowHitboxes)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
