package systems

import (
	"github.com/automoto/starhop/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner releases a new enemy every spawn interval
func UpdateSpawner(ecs *ecs.ECS) {
	round := GetRound(ecs)
	if round == nil || round.SpawnInterval <= 0 {
		return
	}

	round.SpawnElapsed += DeltaTime(ecs)
	for round.SpawnElapsed >= round.SpawnInterval {
		round.SpawnElapsed -= round.SpawnInterval
		factory.SpawnEnemy(ecs, round)
	}
}
