package factory

import (
	"github.com/automoto/starhop/archetypes"
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player on the start cell
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := cfg.PlayerX(cfg.Player.StartCol)
	y := cfg.PlayerY(cfg.Player.StartRow)

	// The player is a point for hit tests
	sx, sy := SpacePoint(x, y)
	obj := resolv.NewObject(sx, sy, 1, 1, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Col: cfg.Player.StartCol,
		Row: cfg.Player.StartRow,
	})
	components.Position.SetValue(player, components.PositionData{X: x, Y: y})
	components.Sprite.SetValue(player, components.SpriteData{Path: cfg.Player.Sprite})

	addToSpace(ecs, obj)
	return player
}
