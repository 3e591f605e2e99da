package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the collision boxes and prints frame timing
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		m := float32(cfg.Round.SpaceMargin)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvEnemy) {
				c = cfg.HitboxRed
			} else if obj.HasTags(tags.ResolvStar) {
				c = cfg.HitboxGold
			}
			vector.StrokeRect(screen, float32(obj.X)-m, float32(obj.Y)-m, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	// Player point, drawn larger so it shows
	if x, y, ok := PlayerPosition(ecs); ok {
		vector.DrawFilledRect(screen, float32(x)-2, float32(y)-2, 4, 4, cfg.Yellow, false)
	}

	msg := ""
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(clockEntry)
		msg = fmt.Sprintf("frame %d dt %.3f\n", clock.Frames, clock.Delta)
	}
	if round := GetRound(ecs); round != nil {
		total, active := CountStars(ecs)
		msg += fmt.Sprintf("%s %ds enemies %d stars %d/%d", round.State, round.Countdown, CountEnemies(ecs), active, total)
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, int(cfg.HUD.StripHeight))
}
