// Package xylophone turns key taps into note playback and a short blink.
package xylophone

import (
	"sync"
	"time"

	"tapsound/internal/core/model"
	"tapsound/internal/core/schedule"
)

// View receives key opacity changes.
type View interface {
	SetOpacity(label string, alpha float64)
}

// Player starts a sound.
type Player interface {
	Play(request model.SoundRequest)
}

type key struct {
	trigger model.Trigger
	alpha   float64
}

// Handler owns the per-key visual state.
type Handler struct {
	mu     sync.Mutex
	config model.XylophoneConfig
	clock  schedule.Clock
	player Player
	view   View
	keys   map[string]*key
}

// New creates a Handler for the configured keys.
func New(config model.XylophoneConfig, clock schedule.Clock, player Player, view View) *Handler {
	defaults := model.DefaultXylophoneConfig()
	if len(config.Triggers) == 0 {
		config.Triggers = defaults.Triggers
	}
	if config.PressDelay <= 0 {
		config.PressDelay = defaults.PressDelay
	}
	if config.PressedAlpha <= 0 || config.PressedAlpha >= 1 {
		config.PressedAlpha = defaults.PressedAlpha
	}
	if config.SoundFormat == "" {
		config.SoundFormat = defaults.SoundFormat
	}

	handler := &Handler{
		config: config,
		clock:  clock,
		player: player,
		view:   view,
		keys:   make(map[string]*key, len(config.Triggers)),
	}
	for _, trigger := range config.Triggers {
		handler.keys[trigger.Label] = &key{trigger: trigger, alpha: 1}
	}
	return handler
}

// SetView attaches the view after construction.
func (handler *Handler) SetView(view View) {
	handler.mu.Lock()
	handler.view = view
	handler.mu.Unlock()
}

// Triggers returns the keys in display order.
func (handler *Handler) Triggers() []model.Trigger {
	return append([]model.Trigger(nil), handler.config.Triggers...)
}

// PressDelay returns the blink length.
func (handler *Handler) PressDelay() time.Duration {
	return handler.config.PressDelay
}

// Activate blinks the key and plays its note. Unknown labels are ignored.
//
// The restoring toggle is never cancelled: tapping a key twice within the
// press delay schedules two restores and all four toggles run.
func (handler *Handler) Activate(label string) bool {
	handler.mu.Lock()
	pressed, ok := handler.keys[label]
	handler.mu.Unlock()
	if !ok {
		return false
	}

	handler.toggle(pressed)
	handler.clock.AfterFunc(handler.config.PressDelay, func() {
		handler.toggle(pressed)
	})
	if handler.player != nil {
		handler.player.Play(model.SoundRequest{Name: label, Format: handler.config.SoundFormat})
	}
	return true
}

// Opacity returns the current alpha of a key.
func (handler *Handler) Opacity(label string) (float64, bool) {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	pressed, ok := handler.keys[label]
	if !ok {
		return 0, false
	}
	return pressed.alpha, true
}

func (handler *Handler) toggle(pressed *key) {
	handler.mu.Lock()
	if pressed.alpha == 1 {
		pressed.alpha = handler.config.PressedAlpha
	} else {
		pressed.alpha = 1
	}
	alpha := pressed.alpha
	view := handler.view
	handler.mu.Unlock()

	if view != nil {
		view.SetOpacity(pressed.trigger.Label, alpha)
	}
}
