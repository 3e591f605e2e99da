package systems

import (
	"github.com/automoto/starhop/components"
	"github.com/automoto/starhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collectStar marks the star collected and takes it out of the collision space
func collectStar(e *donburi.Entry) {
	star := components.Star.Get(e)
	if star.Collected {
		return
	}
	star.Collected = true

	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// CountStars returns the number of stars dealt and how many of them are still uncollected
func CountStars(ecs *ecs.ECS) (total, active int) {
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		total++
		if !components.Star.Get(e).Collected {
			active++
		}
	})
	return total, active
}

func clearStars(ecs *ecs.ECS) {
	var all []*donburi.Entry
	tags.Star.Each(ecs.World, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		removeEntity(ecs, e)
	}
}
