package preferences

import (
	"time"

	"tapsound/internal/core/model"
)

// Settings defines editable user preferences shared by both apps.
type Settings struct {
	SoftDuration   time.Duration
	MediumDuration time.Duration
	HardDuration   time.Duration
	DoneText       string
	NotifyOnDone   bool

	PressDelay time.Duration

	Volume   float64
	SoundDir string
}

// DefaultSettings returns the stock boil times, blink and volume.
func DefaultSettings() Settings {
	return Settings{
		SoftDuration:   3 * time.Second,
		MediumDuration: 420 * time.Second,
		HardDuration:   720 * time.Second,
		DoneText:       model.DefaultEggTimerConfig().DoneText,
		NotifyOnDone:   true,
		PressDelay:     200 * time.Millisecond,
		Volume:         1,
	}
}

// EggTimerConfig converts settings to EggTimerConfig.
func (settings Settings) EggTimerConfig() model.EggTimerConfig {
	config := model.DefaultEggTimerConfig()
	config.Durations = map[string]time.Duration{
		"Soft":   settings.SoftDuration,
		"Medium": settings.MediumDuration,
		"Hard":   settings.HardDuration,
	}
	if settings.DoneText != "" {
		config.DoneText = settings.DoneText
	}
	return config
}

// XylophoneConfig converts settings to XylophoneConfig.
func (settings Settings) XylophoneConfig() model.XylophoneConfig {
	config := model.DefaultXylophoneConfig()
	if settings.PressDelay > 0 {
		config.PressDelay = settings.PressDelay
	}
	return config
}
