package archetypes

import (
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Position,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Position,
		components.Sprite,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
		components.Object,
		components.Position,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
	)
	Clock = newArchetype(
		components.Clock,
	)
	TimeOver = newArchetype(
		components.TimeOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
