package scenes

import "github.com/hajimehoshi/ebiten/v2"

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is a single screen of the game
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Quitter is implemented by scenes that can ask the game to exit
type Quitter interface {
	ShouldQuit() bool
}
