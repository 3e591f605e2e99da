package systems

import (
	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Outcome reports what one collision pass scored
type Outcome struct {
	Lost  bool
	Stars int
	Won   bool
}

// Hit reports whether the point (px, py) lies strictly within fuzz of (ex, ey)
// on both axes. Sprite sizes play no part.
func Hit(px, py, ex, ey, fuzz float64) bool {
	return px > ex-fuzz && px < ex+fuzz && py > ey-fuzz && py < ey+fuzz
}

// UpdateCollisions scores enemy hits, star pickups and wins
func UpdateCollisions(ecs *ecs.ECS) {
	CheckCollisions(ecs)
}

// CheckCollisions runs one pass in the fixed order enemies, stars, win.
// Every trigger found applies.
func CheckCollisions(ecs *ecs.ECS) Outcome {
	var out Outcome
	round := GetRound(ecs)
	if round == nil {
		return out
	}
	if _, ok := tags.Player.First(ecs.World); !ok {
		return out
	}

	if hitEnemy(ecs) {
		round.AddLoss()
		out.Lost = true
		log.Debug("enemy hit", "losses", round.Score.Losses)
		// Reset clears every enemy, so one loss per pass at most
		ResetPlayer(ecs)
	}

	for _, star := range touchedStars(ecs) {
		collectStar(star)
		round.AddStar()
		out.Stars++
		log.Debug("star collected", "stars", round.Score.Stars)
	}

	if onWinRow(ecs) {
		round.AddWin()
		out.Won = true
		log.Debug("reached water", "wins", round.Score.Wins)
		ResetPlayer(ecs)
	}

	return out
}

func hitEnemy(ecs *ecs.ECS) bool {
	for _, e := range candidates(ecs, tags.ResolvEnemy) {
		if e.HasComponent(components.Enemy) && touching(ecs, e) {
			return true
		}
	}
	return false
}

func touchedStars(ecs *ecs.ECS) []*donburi.Entry {
	var touched []*donburi.Entry
	for _, e := range candidates(ecs, tags.ResolvStar) {
		if !e.HasComponent(components.Star) || components.Star.Get(e).Collected {
			continue
		}
		if touching(ecs, e) {
			touched = append(touched, e)
		}
	}
	return touched
}

// candidates returns the entities whose broad phase boxes share a cell with the player
func candidates(ecs *ecs.ECS, tag string) []*donburi.Entry {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	obj := components.Object.Get(playerEntry)
	if obj.Object == nil {
		return nil
	}

	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	entries := make([]*donburi.Entry, 0, len(check.Objects))
	for _, o := range check.Objects {
		if e := entryOf(o); e != nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// touching applies the exact hit test between the player and e
func touching(ecs *ecs.ECS, e *donburi.Entry) bool {
	px, py, ok := PlayerPosition(ecs)
	if !ok {
		return false
	}
	pos := components.Position.Get(e)
	return Hit(px, py, pos.X, pos.Y, cfg.Round.Fuzz)
}

func entryOf(o *resolv.Object) *donburi.Entry {
	e, ok := o.Data.(*donburi.Entry)
	if !ok || !e.Valid() {
		return nil
	}
	return e
}
