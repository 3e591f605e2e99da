package scenes

import (
	"image/color"
	"math/rand/v2"
	"sync"

	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems"
	"github.com/automoto/starhop/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CrossingScene runs the game itself
type CrossingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rng          *rand.Rand
	timeOverUI   *ui.TimeOverUI
	once         sync.Once

	restartClicked bool
}

func NewCrossingScene(sc SceneChanger, rng *rand.Rand) *CrossingScene {
	return &CrossingScene{sceneChanger: sc, rng: rng}
}

func (cs *CrossingScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if !systems.IsTimeOver(cs.ecs) || cs.timeOverUI == nil {
		return
	}
	cs.timeOverUI.Update()
	if cs.restartClicked {
		cs.restartClicked = false
		systems.RestartRound(cs.ecs)
	}
}

func (cs *CrossingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if systems.IsTimeOver(cs.ecs) && cs.timeOverUI != nil {
		cs.timeOverUI.Draw(screen)
	}
}

// ShouldQuit reports whether the quit key was released this frame
func (cs *CrossingScene) ShouldQuit() bool {
	if cs.ecs == nil {
		return false
	}
	return systems.QuitRequested(cs.ecs)
}

func (cs *CrossingScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Must run first, every other system reads the frame delta
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)

	// Gameplay only advances while the round is running
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdatePlayerInput))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateRound))

	ecs.AddSystem(systems.UpdateTimeOver)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBoard)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawTimeOver)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	systems.SetupRound(cs.ecs, cs.rng)
	systems.StartRound(cs.ecs)

	timeOverUI, err := ui.NewTimeOverUI(func() { cs.restartClicked = true })
	if err != nil {
		// Enter still restarts without the button
		log.Error("restart button unavailable", "err", err)
		return
	}
	cs.timeOverUI = timeOverUI
}
