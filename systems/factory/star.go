package factory

import (
	"github.com/automoto/starhop/archetypes"
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateStar(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	star := archetypes.Star.Spawn(ecs)

	obj := newFuzzBox(x, y, cfg.Round.Fuzz, tags.ResolvStar)
	obj.Data = star
	components.Object.SetValue(star, components.ObjectData{Object: obj})
	components.Position.SetValue(star, components.PositionData{X: x, Y: y})
	components.Star.SetValue(star, components.StarData{})
	components.Sprite.SetValue(star, components.SpriteData{Path: cfg.Star.Sprite})

	addToSpace(ecs, obj)
	return star
}

// SpawnStars creates the configured number of stars on random cells of the star lanes
func SpawnStars(ecs *ecs.ECS, round *components.RoundData) []*donburi.Entry {
	stars := make([]*donburi.Entry, 0, cfg.Star.Count)
	for i := 0; i < cfg.Star.Count; i++ {
		col := round.RandomBetween(0, cfg.Star.Columns)
		lane := round.RandomBetween(0, cfg.Star.Lanes)
		x := float64(col) * cfg.Board.CellWidth
		y := cfg.Star.BaseY + float64(lane)*cfg.Board.CellHeight
		stars = append(stars, CreateStar(ecs, x, y))
	}
	return stars
}
