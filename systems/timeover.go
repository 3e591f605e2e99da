package systems

import (
	"image/color"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimeOver fades the overlay in and restarts on the restart key
func UpdateTimeOver(ecs *ecs.ECS) {
	if !IsTimeOver(ecs) {
		return
	}

	AdvanceFade(ecs, DeltaTime(ecs))

	if GetAction(getOrCreateInput(ecs), cfg.ActionRestart).JustReleased {
		RestartRound(ecs)
	}
}

// AdvanceFade steps the overlay tween by dt seconds
func AdvanceFade(ecs *ecs.ECS, dt float64) {
	to := GetOrCreateTimeOver(ecs)
	if to.Fade == nil {
		return
	}
	alpha, finished := to.Fade.Update(float32(dt))
	to.Alpha = alpha
	if finished {
		to.Fade = nil
	}
}

// DrawTimeOver renders the overlay with the final counters
func DrawTimeOver(ecs *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(ecs)
	if round == nil || round.State != cfg.RoundStateTimeOver {
		return
	}
	to := GetOrCreateTimeOver(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	veil := cfg.TimeOver.OverlayColor
	vector.DrawFilledRect(screen,
		0, 0,
		float32(width), float32(height),
		color.NRGBA{R: veil.R, G: veil.G, B: veil.B, A: uint8(float32(veil.A) * to.Alpha)},
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.TimeOver.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), cfg.TimeOver.TitleY, cfg.TimeOver.TitleColor)

	scoreFont := fonts.Bold.Get()
	score := FormatScore(round.Final)
	text.Draw(screen, score, scoreFont, centerTextX(score, scoreFont, width), cfg.TimeOver.ScoreY, cfg.TimeOver.TextColor)

	hintFont := fonts.Small.Get()
	hint := cfg.TimeOver.RestartHint
	hintY := cfg.TimeOver.ScoreY + 2*cfg.TimeOver.ButtonOffsetY
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), hintY, cfg.TimeOver.TextColor)
}

// showTimeOver starts the overlay fade from transparent
func showTimeOver(ecs *ecs.ECS) {
	to := GetOrCreateTimeOver(ecs)
	to.Alpha = 0
	to.Fade = gween.New(0, 1, cfg.TimeOver.FadeDuration, ease.OutQuad)
}

func hideTimeOver(ecs *ecs.ECS) {
	to := GetOrCreateTimeOver(ecs)
	to.Alpha = 0
	to.Fade = nil
}

// GetOrCreateTimeOver returns the singleton TimeOver component, creating if needed
func GetOrCreateTimeOver(e *ecs.ECS) *components.TimeOverData {
	if _, ok := components.TimeOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.TimeOver))
	}

	ent, _ := components.TimeOver.First(e.World)
	return components.TimeOver.Get(ent)
}
