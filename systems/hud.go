package systems

import (
	"fmt"

	"github.com/automoto/starhop/components"
	cfg "github.com/automoto/starhop/config"
	"github.com/automoto/starhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the score strip at the top and the countdown at the bottom
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(ecs)
	if round == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Strips keep the text readable over the board
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(cfg.HUD.StripHeight), cfg.HUD.StripColor, false)
	vector.DrawFilledRect(screen,
		0, float32(cfg.HUD.BottomStripY),
		float32(width), float32(height-cfg.HUD.BottomStripY),
		cfg.HUD.StripColor, false)

	face := fonts.Bold.Get()

	score := FormatScore(round.Score)
	text.Draw(screen, score, face, centerTextX(score, face, width), cfg.HUD.ScoreY, cfg.HUD.TextColor)

	timeLeft := FormatTimeLeft(round.Countdown)
	text.Draw(screen, timeLeft, face, centerTextX(timeLeft, face, width), cfg.HUD.TimerY, cfg.HUD.TextColor)
}

// FormatScore renders the counters the way the HUD shows them
func FormatScore(s components.Score) string {
	return fmt.Sprintf("WON %d LOST %d STARS %d", s.Wins, s.Losses, s.Stars)
}

// FormatTimeLeft renders whole seconds as m:ss
func FormatTimeLeft(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("TIME LEFT %d:%02d", seconds/60, seconds%60)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
