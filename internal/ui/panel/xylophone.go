// Package panel renders the trigger buttons for both apps and implements the
// view interfaces the handlers draw through.
package panel

import (
	"image/color"

	"tapsound/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var keyColors = map[string]color.NRGBA{
	"red":    {R: 255, G: 59, B: 48, A: 255},
	"yellow": {R: 255, G: 204, B: 0, A: 255},
	"blue":   {R: 0, G: 122, B: 255, A: 255},
	"gray":   {R: 142, G: 142, B: 147, A: 255},
	"brown":  {R: 162, G: 132, B: 94, A: 255},
	"pink":   {R: 255, G: 45, B: 85, A: 255},
	"mint":   {R: 0, G: 199, B: 190, A: 255},
}

// noteKey is a colored, tappable bar showing one note label.
type noteKey struct {
	widget.BaseWidget
	label      string
	fill       color.NRGBA
	alpha      float64
	background *canvas.Rectangle
	text       *canvas.Text
	onTapped   func(string)
}

func newNoteKey(trigger model.Trigger, onTapped func(string)) *noteKey {
	fill, ok := keyColors[trigger.Color]
	if !ok {
		fill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	background := canvas.NewRectangle(fill)
	background.CornerRadius = 10
	text := canvas.NewText(trigger.Label, color.White)
	text.TextSize = 30
	text.Alignment = fyne.TextAlignCenter

	key := &noteKey{
		label:      trigger.Label,
		fill:       fill,
		alpha:      1,
		background: background,
		text:       text,
		onTapped:   onTapped,
	}
	key.ExtendBaseWidget(key)
	return key
}

func (key *noteKey) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(key.background, container.NewCenter(key.text)))
}

func (key *noteKey) MinSize() fyne.Size {
	return fyne.NewSize(120, 100)
}

func (key *noteKey) Tapped(*fyne.PointEvent) {
	if key.onTapped != nil {
		key.onTapped(key.label)
	}
}

func (key *noteKey) setAlpha(alpha float64) {
	key.alpha = alpha
	fill := key.fill
	fill.A = uint8(alpha * 255)
	key.background.FillColor = fill
	key.text.Color = color.NRGBA{R: 255, G: 255, B: 255, A: uint8(alpha * 255)}
	key.background.Refresh()
	key.text.Refresh()
}

// Xylophone shows one key per note trigger.
type Xylophone struct {
	content *fyne.Container
	keys    map[string]*noteKey
}

// NewXylophone creates the key panel. Each key calls onActivate with its label.
func NewXylophone(triggers []model.Trigger, onActivate func(label string)) *Xylophone {
	panel := &Xylophone{keys: make(map[string]*noteKey, len(triggers))}
	objects := make([]fyne.CanvasObject, 0, len(triggers))
	for _, trigger := range triggers {
		key := newNoteKey(trigger, onActivate)
		panel.keys[trigger.Label] = key
		objects = append(objects, key)
	}
	panel.content = container.New(&staggeredLayout{spacing: 10}, objects...)
	return panel
}

// Content returns the canvas object to place in a window.
func (panel *Xylophone) Content() fyne.CanvasObject {
	return panel.content
}

// SetOpacity fades a key. Unknown labels are ignored.
func (panel *Xylophone) SetOpacity(label string, alpha float64) {
	key, ok := panel.keys[label]
	if !ok {
		return
	}
	key.setAlpha(alpha)
}

// staggeredLayout stacks rows vertically, each row 3% narrower than the one
// above, centered horizontally.
type staggeredLayout struct {
	spacing float32
}

func (layout *staggeredLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	count := len(objects)
	if count == 0 {
		return
	}
	height := (size.Height - layout.spacing*float32(count-1)) / float32(count)
	if height < 0 {
		height = 0
	}
	for index, object := range objects {
		width := size.Width * rowWidthFraction(index)
		x := (size.Width - width) / 2
		y := float32(index) * (height + layout.spacing)
		object.Move(fyne.NewPos(x, y))
		object.Resize(fyne.NewSize(width, height))
	}
}

func (layout *staggeredLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for index, object := range objects {
		minSize := object.MinSize()
		if minSize.Width > width {
			width = minSize.Width
		}
		height += minSize.Height
		if index > 0 {
			height += layout.spacing
		}
	}
	return fyne.NewSize(width, height)
}

func rowWidthFraction(index int) float32 {
	fraction := 0.97 - 0.03*float32(index)
	if fraction < 0.1 {
		return 0.1
	}
	return fraction
}
