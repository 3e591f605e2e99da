package scenes

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"sync"

	"github.com/automoto/starhop/assets"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadingScene requests every image once and hands over to the crossing
// scene when the loader reports ready
type LoadingScene struct {
	sceneChanger SceneChanger
	rng          *rand.Rand
	once         sync.Once
	err          error
}

// NewLoadingScene creates the first scene. A nil rng is seeded from the clock.
func NewLoadingScene(sc SceneChanger, rng *rand.Rand) *LoadingScene {
	return &LoadingScene{sceneChanger: sc, rng: rng}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.configure)

	if ls.err != nil {
		return
	}
	if err := assets.Err(); err != nil {
		ls.err = err
		log.Error("failed to load images", "err", err)
		return
	}

	// Runs the OnReady callbacks once decoding finishes
	assets.Poll()
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ls.err != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Failed to load images:\n%v", ls.err))
		return
	}
	ebitenutil.DebugPrint(screen, "Loading...")
}

func (ls *LoadingScene) configure() {
	paths := spritePaths()
	log.Debug("loading images", "count", len(paths))

	assets.OnReady(func() {
		ls.sceneChanger.ChangeScene(NewCrossingScene(ls.sceneChanger, ls.rng))
	})
	assets.Load(paths...)
}

// spritePaths lists the entity sprites followed by any extra board sprites
func spritePaths() []string {
	seen := map[string]bool{}
	var paths []string
	for _, p := range append(append([]string{}, cfg.Sprites...), systems.Board().Sprites()...) {
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}
