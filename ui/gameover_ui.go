package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/skyduel/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the panel shown once a match is decided: the outcome and a
// Quit button.
type GameOverUI struct {
	UI *ebitenui.UI

	OnQuit func()

	outcomeLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewGameOverUI builds the panel for the given outcome message.
func NewGameOverUI(outcome string, onQuit func()) (*GameOverUI, error) {
	gui := &GameOverUI{OnQuit: onQuit}

	if err := gui.loadFonts(); err != nil {
		return nil, err
	}
	gui.buildUI(outcome)

	return gui, nil
}

func (gui *GameOverUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	gui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   48,
	}
	gui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	return nil
}

func (gui *GameOverUI) buildUI(outcome string) {
	// Transparent root so the frozen match shows through the overlay
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Title, &gui.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
	))

	gui.outcomeLabel = widget.NewLabel(
		widget.LabelOpts.Text(outcome, &gui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	panel.AddChild(gui.outcomeLabel)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 40),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Quit", &gui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if gui.OnQuit != nil {
				gui.OnQuit()
			}
		}),
	)
	panel.AddChild(quitButton)

	rootContainer.AddChild(panel)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetOutcome replaces the outcome message.
func (gui *GameOverUI) SetOutcome(outcome string) {
	gui.outcomeLabel.Label = outcome
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update runs the widget logic for one frame.
func (gui *GameOverUI) Update() {
	gui.UI.Update()
}
