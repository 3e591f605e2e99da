package factory

import (
	"github.com/automoto/starhop/archetypes"
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space for a width x height canvas,
// grown by the space margin on every side
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	margin := int(cfg.Round.SpaceMargin)
	spaceData := resolv.NewSpace(width+2*margin, height+2*margin, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's collision space, if there is one
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(obj)
}

// newFuzzBox returns a square broad phase object centred on (x, y).
// Its cells cover every point strictly within fuzz of the centre.
func newFuzzBox(x, y, fuzz float64, tag string) *resolv.Object {
	size := 2*fuzz + 1
	bx, by := BoxOrigin(x, y, fuzz)
	return resolv.NewObject(bx, by, size, size, tag)
}

// BoxOrigin returns the space position of a fuzz box centred on the world point (x, y)
func BoxOrigin(x, y, fuzz float64) (float64, float64) {
	sx, sy := SpacePoint(x, y)
	return sx - fuzz, sy - fuzz
}

// SpacePoint converts a world position into collision space coordinates
func SpacePoint(x, y float64) (float64, float64) {
	return x + cfg.Round.SpaceMargin, y + cfg.Round.SpaceMargin
}
