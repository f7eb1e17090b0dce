package panel

import (
	"tapsound/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Eggs shows the prompt, one button per hardness and a progress bar.
type Eggs struct {
	content  fyne.CanvasObject
	title    *widget.Label
	progress *widget.ProgressBar
	buttons  map[string]*widget.Button
}

// NewEggs creates the egg panel. images maps a trigger's Image name to a
// resource; missing images leave the button text-only.
func NewEggs(triggers []model.Trigger, prompt string, images func(name string) (fyne.Resource, error), onActivate func(label string)) *Eggs {
	title := widget.NewLabelWithStyle(prompt, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	panel := &Eggs{
		title:    title,
		progress: progress,
		buttons:  make(map[string]*widget.Button, len(triggers)),
	}

	row := make([]fyne.CanvasObject, 0, len(triggers))
	for _, trigger := range triggers {
		label := trigger.Label
		var icon fyne.Resource
		if images != nil && trigger.Image != "" {
			if resource, err := images(trigger.Image); err == nil {
				icon = resource
			}
		}
		button := widget.NewButtonWithIcon(label, icon, func() {
			if onActivate != nil {
				onActivate(label)
			}
		})
		button.IconPlacement = widget.ButtonIconTrailingText
		panel.buttons[label] = button
		row = append(row, button)
	}

	panel.content = container.NewGridWithRows(3,
		container.NewCenter(title),
		container.NewGridWithColumns(len(row), row...),
		container.NewVBox(layout.NewSpacer(), progress, layout.NewSpacer()),
	)
	return panel
}

// Content returns the canvas object to place in a window.
func (panel *Eggs) Content() fyne.CanvasObject {
	return panel.content
}

// SetProgress sets the bar to a value in [0, 1].
func (panel *Eggs) SetProgress(progress float64) {
	panel.progress.SetValue(progress)
}

// SetText replaces the headline.
func (panel *Eggs) SetText(text string) {
	panel.title.SetText(text)
}
