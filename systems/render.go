package systems

import (
	"github.com/automoto/starhop/assets"
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	board  *assets.Board
)

// Board returns the board layout, loading the embedded map on first use
func Board() *assets.Board {
	if board == nil {
		board = assets.MustLoadBoard(cfg.Board.MapPath)
	}
	return board
}

// DrawBoard paints the background grid row by row
func DrawBoard(ecs *ecs.ECS, screen *ebiten.Image) {
	b := Board()
	for row, cells := range b.Cells {
		for col, sprite := range cells {
			img := assets.Get(sprite)
			if img == nil {
				continue
			}
			drawOp.GeoM.Reset()
			drawOp.GeoM.Translate(float64(col*b.CellWidth), float64(row*b.CellHeight))
			screen.DrawImage(img, drawOp)
		}
	}
}

// DrawEntities paints stars, then enemies, then the player
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		if components.Star.Get(e).Collected {
			return
		}
		drawSprite(screen, e)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, e)
	})
	if e, ok := tags.Player.First(ecs.World); ok {
		drawSprite(screen, e)
	}
}

func drawSprite(screen *ebiten.Image, e *donburi.Entry) {
	img := assets.Get(components.Sprite.Get(e).Path)
	if img == nil {
		return
	}
	pos := components.Position.Get(e)
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, drawOp)
}
