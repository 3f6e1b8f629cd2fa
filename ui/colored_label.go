package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gfxmanager/models"
)

var (
	badgeText    = color.White
	badgeUnknown = color.NRGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	badgeColors  = map[string]color.Color{
		models.GAPIDirectX12: color.NRGBA{R: 0x1b, G: 0x7f, B: 0x3b, A: 0xff},
		models.GAPIDirectX11: color.NRGBA{R: 0x1f, G: 0x6f, B: 0xb5, A: 0xff},
		models.GAPIDirectX10: color.NRGBA{R: 0x5a, G: 0x4f, B: 0xb0, A: 0xff},
		models.GAPIDirectX9:  color.NRGBA{R: 0xb5, G: 0x6a, B: 0x1f, A: 0xff},
		models.GAPIOpenGL:    color.NRGBA{R: 0xa8, G: 0x2a, B: 0x2a, A: 0xff},
	}
)

// ColoredLabel is a custom widget that displays text with a colored background
type ColoredLabel struct {
	widget.BaseWidget
	text      string
	bgColor   color.Color
	textColor color.Color
}

// NewColoredLabel creates a new colored label
func NewColoredLabel(text string, bgColor, textColor color.Color) *ColoredLabel {
	cl := &ColoredLabel{
		text:      text,
		bgColor:   bgColor,
		textColor: textColor,
	}
	cl.ExtendBaseWidget(cl)
	return cl
}

// NewGAPIBadge creates a label showing a graphics API in its color
func NewGAPIBadge(gapi string) *ColoredLabel {
	cl := NewColoredLabel("", badgeUnknown, badgeText)
	cl.SetGAPI(gapi)
	return cl
}

// BadgeColor returns the background used for a graphics API
func BadgeColor(gapi string) color.Color {
	if c, ok := badgeColors[gapi]; ok {
		return c
	}
	return badgeUnknown
}

// SetGAPI shows gapi with its color
func (cl *ColoredLabel) SetGAPI(gapi string) {
	cl.text = " " + gapi + " "
	cl.bgColor = BadgeColor(gapi)
	cl.textColor = badgeText
	cl.Refresh()
}

// SetText updates the label text
func (cl *ColoredLabel) SetText(text string) {
	cl.text = text
	cl.Refresh()
}

// CreateRenderer implements fyne.Widget
func (cl *ColoredLabel) CreateRenderer() fyne.WidgetRenderer {
	textObj := canvas.NewText(cl.text, cl.textColor)
	textObj.TextStyle = fyne.TextStyle{Bold: true}
	textObj.Alignment = fyne.TextAlignCenter

	bgRect := canvas.NewRectangle(cl.bgColor)
	bgRect.CornerRadius = 4

	return &coloredLabelRenderer{
		label:     cl,
		container: container.NewStack(bgRect, textObj),
		bgRect:    bgRect,
		textObj:   textObj,
	}
}

// coloredLabelRenderer implements fyne.WidgetRenderer
type coloredLabelRenderer struct {
	label     *ColoredLabel
	container *fyne.Container
	bgRect    *canvas.Rectangle
	textObj   *canvas.Text
}

func (r *coloredLabelRenderer) MinSize() fyne.Size {
	return r.container.MinSize()
}

func (r *coloredLabelRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *coloredLabelRenderer) Refresh() {
	r.textObj.Text = r.label.text
	r.textObj.Color = r.label.textColor
	r.bgRect.FillColor = r.label.bgColor
	r.textObj.Refresh()
	r.bgRect.Refresh()
}

func (r *coloredLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *coloredLabelRenderer) Destroy() {}
