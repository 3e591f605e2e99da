package factory

import (
	"github.com/automoto/starhop/archetypes"
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, x, y, speed float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newFuzzBox(x, y, cfg.Round.Fuzz, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Position.SetValue(enemy, components.PositionData{X: x, Y: y})
	components.Enemy.SetValue(enemy, components.EnemyData{Speed: speed})
	components.Sprite.SetValue(enemy, components.SpriteData{Path: cfg.Enemy.Sprite})

	addToSpace(ecs, obj)
	return enemy
}

// SpawnEnemy creates an enemy at the left edge in a random lane with a random speed
func SpawnEnemy(ecs *ecs.ECS, round *components.RoundData) *donburi.Entry {
	lane := round.RandomBetween(0, cfg.Enemy.Lanes)
	y := cfg.Enemy.BaseY + float64(lane)*cfg.Board.CellHeight
	speed := float64(round.RandomBetween(cfg.Enemy.MinSpeed, cfg.Enemy.MaxSpeed))
	return CreateEnemy(ecs, cfg.Enemy.SpawnX, y, speed)
}
