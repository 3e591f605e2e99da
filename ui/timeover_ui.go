package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/starhop/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// TimeOverUI holds the restart control shown once the countdown runs out
type TimeOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart func()

	restartButton *widget.Button
	buttonFace    text.Face
}

// NewTimeOverUI builds the restart control. onRestart runs on the game goroutine
// when the button is clicked.
func NewTimeOverUI(onRestart func()) (*TimeOverUI, error) {
	tui := &TimeOverUI{OnRestart: onRestart}

	if err := tui.loadFonts(); err != nil {
		return nil, err
	}
	tui.buildUI()

	return tui, nil
}

func (tui *TimeOverUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return err
	}
	tui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize * 0.75,
	}
	return nil
}

func (tui *TimeOverUI) buildUI() {
	// Transparent root so the overlay underneath stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: cfg.TimeOver.ScoreY + cfg.TimeOver.ButtonOffsetY/2}
	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	tui.restartButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 48),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(cfg.TimeOver.ButtonText, &tui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tui.Restart()
		}),
	)
	content.AddChild(tui.restartButton)
	rootContainer.AddChild(content)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Restart fires the restart callback, as a click on the button does
func (tui *TimeOverUI) Restart() {
	if tui.OnRestart != nil {
		tui.OnRestart()
	}
}

func (tui *TimeOverUI) Update() {
	tui.UI.Update()
}

func (tui *TimeOverUI) Draw(screen *ebiten.Image) {
	tui.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{200, 40, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{230, 70, 70, 255})
	pressed := image.NewNineSliceColor(color.RGBA{150, 30, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{90, 90, 90, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
