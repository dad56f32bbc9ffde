package hud

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Style controls how the HUD panel looks.
type Style struct {
	TextColor  color.Color
	PanelColor color.Color
	PadTop     int
	PadLeft    int
	Spacing    int
}

// DefaultStyle is the sky-blue on stone look of the host counter.
func DefaultStyle() Style {
	return Style{
		TextColor:  colornames.Skyblue,
		PanelColor: color.NRGBA{R: 0xc0, G: 0xba, B: 0xb2, A: 0xc0},
		PadTop:     5,
		PadLeft:    5,
		Spacing:    24,
	}
}

// View shows a Counter in the top-left corner of the screen.
type View struct {
	counter  *Counter
	ui       *ebitenui.UI
	progress *widget.Text
	timer    *widget.Text
}

// NewView builds the HUD widgets for counter.
func NewView(counter *Counter, style Style) *View {
	if style.TextColor == nil {
		style.TextColor = colornames.Skyblue
	}
	if style.PanelColor == nil {
		style.PanelColor = color.Transparent
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	progress := widget.NewText(
		widget.TextOpts.Text(counter.ProgressText(), &face, style.TextColor),
	)
	timer := widget.NewText(
		widget.TextOpts.Text(counter.TimerText(), &face, style.TextColor),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(style.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.Spacing),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(progress)
	panel.AddChild(timer)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: style.PadTop, Left: style.PadLeft}),
		)),
	)
	root.AddChild(panel)

	return &View{
		counter:  counter,
		ui:       &ebitenui.UI{Container: root},
		progress: progress,
		timer:    timer,
	}
}

// Counter returns the counter this view displays.
func (v *View) Counter() *Counter { return v.counter }

// Refresh copies the counter text into the labels.
func (v *View) Refresh() {
	if v == nil || v.counter == nil {
		return
	}
	v.progress.Label = v.counter.ProgressText()
	v.timer.Label = v.counter.TimerText()
}

// Update refreshes the labels and lays the widgets out.
func (v *View) Update() {
	if v == nil {
		return
	}
	v.Refresh()
	v.ui.Update()
}

// Draw renders the HUD in screen space.
func (v *View) Draw(screen *ebiten.Image) {
	if v == nil || screen == nil {
		return
	}
	v.ui.Draw(screen)
}
