package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the egg timer preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	soft     *widget.Entry
	medium   *widget.Entry
	hard     *widget.Entry
	volume   *widget.Slider
	notify   *widget.Check
	soundDir *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Egg Timer Settings")

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		soft:     widget.NewEntry(),
		medium:   widget.NewEntry(),
		hard:     widget.NewEntry(),
		volume:   widget.NewSlider(0, 1),
		notify:   widget.NewCheck("Notify when done", nil),
		soundDir: widget.NewEntry(),
	}
	prefs.volume.Step = 0.05
	prefs.soundDir.SetPlaceHolder("built-in sounds")
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Boil times", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Soft"), prefs.soft, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Medium"), prefs.medium, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Hard"), prefs.hard, widget.NewLabel("sec")),
		prefs.notify,
		widget.NewLabel("Volume"),
		prefs.volume,
		widget.NewLabel("Sound folder"),
		prefs.soundDir,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 420))
	window.SetCloseIntercept(window.Hide)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.soft.SetText(formatSeconds(settings.SoftDuration))
	prefs.medium.SetText(formatSeconds(settings.MediumDuration))
	prefs.hard.SetText(formatSeconds(settings.HardDuration))
	prefs.volume.SetValue(settings.Volume)
	prefs.notify.SetChecked(settings.NotifyOnDone)
	prefs.soundDir.SetText(settings.SoundDir)
}

// Settings returns the values last saved or loaded.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if seconds, ok := parsePositiveInt(prefs.soft.Text); ok {
		settings.SoftDuration = time.Duration(seconds) * time.Second
	}
	if seconds, ok := parsePositiveInt(prefs.medium.Text); ok {
		settings.MediumDuration = time.Duration(seconds) * time.Second
	}
	if seconds, ok := parsePositiveInt(prefs.hard.Text); ok {
		settings.HardDuration = time.Duration(seconds) * time.Second
	}
	settings.Volume = prefs.volume.Value
	settings.NotifyOnDone = prefs.notify.Checked
	settings.SoundDir = prefs.soundDir.Text

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatSeconds(value time.Duration) string {
	return fmt.Sprintf("%d", int(value/time.Second))
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
