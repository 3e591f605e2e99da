package systems

import (
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/systems/factory"
	"github.com/automoto/starhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances every enemy by the frame delta
func UpdateEnemies(ecs *ecs.ECS) {
	MoveEnemies(ecs, DeltaTime(ecs))
}

// MoveEnemies moves each enemy right by speed*dt and drops the ones that left the board
func MoveEnemies(ecs *ecs.ECS, dt float64) {
	var gone []*donburi.Entry

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		pos := components.Position.Get(e)
		pos.X += enemy.Speed * dt

		obj := components.Object.Get(e)
		obj.X, obj.Y = factory.BoxOrigin(pos.X, pos.Y, cfg.Round.Fuzz)
		obj.Update()

		if pos.X > cfg.Enemy.DespawnX {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		removeEntity(ecs, e)
	}
}

// CountEnemies returns the number of live enemies
func CountEnemies(ecs *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func clearEnemies(ecs *ecs.ECS) {
	var all []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		removeEntity(ecs, e)
	}
}

// removeEntity drops the entity and its collision object
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
