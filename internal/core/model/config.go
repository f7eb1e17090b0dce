package model

import "time"

// SoundRequest names one sound asset to play. Fallback, when set, is a
// second format tried if no asset exists in Format.
type SoundRequest struct {
	Name     string
	Format   string
	Fallback string
}

// FileName returns the asset file name, e.g. "A.wav".
func (request SoundRequest) FileName() string {
	return request.Name + "." + request.Format
}

// XylophoneConfig contains runtime settings for the note keys.
type XylophoneConfig struct {
	Triggers     []Trigger
	PressDelay   time.Duration
	PressedAlpha float64
	SoundFormat  string
}

// EggTimerConfig contains runtime settings for the countdown.
type EggTimerConfig struct {
	Durations    map[string]time.Duration
	TickInterval time.Duration
	Alarm        SoundRequest
	Prompt       string
	DoneText     string
}

// DefaultXylophoneConfig returns the stock note keys and a 200ms blink.
func DefaultXylophoneConfig() XylophoneConfig {
	return XylophoneConfig{
		Triggers:     XylophoneTriggers(),
		PressDelay:   200 * time.Millisecond,
		PressedAlpha: 0.5,
		SoundFormat:  "wav",
	}
}

// DefaultEggTimerConfig returns the stock boil times and messages.
func DefaultEggTimerConfig() EggTimerConfig {
	durations := make(map[string]time.Duration)
	for _, trigger := range EggTriggers() {
		durations[trigger.Label] = trigger.Duration
	}
	return EggTimerConfig{
		Durations:    durations,
		TickInterval: time.Second,
		Alarm:        SoundRequest{Name: "alarm_sound", Format: "mp3", Fallback: "wav"},
		Prompt:       "How do you like your eggs?",
		DoneText:     "That's done! Let's go again?",
	}
}
