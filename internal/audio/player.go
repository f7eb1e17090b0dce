// Package audio plays named sound assets through a single replaceable voice.
// Play is fire-and-forget: failures are logged, never returned or raised.
package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"tapsound/internal/core/model"
)

var (
	// ErrResourceNotFound indicates no layer holds the requested asset.
	ErrResourceNotFound = errors.New("sound resource not found")
	// ErrUnsupportedFormat indicates the backend cannot decode the format.
	ErrUnsupportedFormat = errors.New("unsupported sound format")
	// ErrPlayback wraps a backend panic recovered during load or start.
	ErrPlayback = errors.New("sound playback failed")
)

// Voice is a loaded, playable sound.
type Voice interface {
	Play()
	Close() error
	SetVolume(volume float64)
}

// Backend decodes raw asset bytes into a Voice.
type Backend interface {
	Load(format string, data []byte) (Voice, error)
}

// Resolver finds the bytes of a named asset.
type Resolver interface {
	Resolve(name, format string) ([]byte, error)
}

// Player owns at most one voice. A new voice replaces the current one only
// after it loaded successfully.
type Player struct {
	mu          sync.Mutex
	resolver    Resolver
	backend     Backend
	current     Voice
	currentName string
	volume      float64
	verbose     bool
}

// NewPlayer creates a player at full volume.
func NewPlayer(resolver Resolver, backend Backend) *Player {
	return &Player{
		resolver: resolver,
		backend:  backend,
		volume:   1,
	}
}

// SetVerbose enables logging of successful playbacks.
func (player *Player) SetVerbose(verbose bool) {
	player.mu.Lock()
	player.verbose = verbose
	player.mu.Unlock()
}

// SetVolume sets the volume for the current and future voices.
func (player *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	player.mu.Lock()
	defer player.mu.Unlock()
	player.volume = volume
	if player.current != nil {
		player.current.SetVolume(volume)
	}
}

// Play starts the requested sound and logs any failure.
func (player *Player) Play(request model.SoundRequest) {
	if err := player.TryPlay(request); err != nil {
		log.Printf("play %s: %v", request.FileName(), err)
	}
}

// TryPlay starts the requested sound. On error the current voice keeps
// playing untouched.
func (player *Player) TryPlay(request model.SoundRequest) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %v", ErrPlayback, recovered)
		}
	}()

	format := request.Format
	data, err := player.resolver.Resolve(request.Name, format)
	if errors.Is(err, ErrResourceNotFound) && request.Fallback != "" {
		format = request.Fallback
		data, err = player.resolver.Resolve(request.Name, format)
	}
	if err != nil {
		return err
	}
	fileName := request.Name + "." + format

	voice, err := player.backend.Load(format, data)
	if err != nil {
		return fmt.Errorf("load %s: %w", fileName, err)
	}
	voice.SetVolume(player.Volume())

	previous, verbose := player.swap(voice, fileName)
	if previous != nil {
		if closeErr := previous.Close(); closeErr != nil {
			log.Printf("close previous voice: %v", closeErr)
		}
	}
	voice.Play()
	if verbose {
		log.Printf("playing %s", fileName)
	}
	return nil
}

func (player *Player) swap(voice Voice, fileName string) (previous Voice, verbose bool) {
	player.mu.Lock()
	defer player.mu.Unlock()
	previous = player.current
	player.current = voice
	player.currentName = fileName
	return previous, player.verbose
}

// Volume returns the volume applied to new voices.
func (player *Player) Volume() float64 {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.volume
}

// Current returns the file name of the voice last started, or "".
func (player *Player) Current() string {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.currentName
}

// Stop closes the current voice.
func (player *Player) Stop() {
	player.mu.Lock()
	current := player.current
	player.current = nil
	player.currentName = ""
	player.mu.Unlock()

	if current != nil {
		if err := current.Close(); err != nil {
			log.Printf("close voice: %v", err)
		}
	}
}

// Silent is a Backend whose voices make no sound.
type Silent struct{}

// Load accepts any data.
func (Silent) Load(string, []byte) (Voice, error) {
	return silentVoice{}, nil
}

type silentVoice struct{}

func (silentVoice) Play() {}

func (silentVoice) Close() error { return nil }

func (silentVoice) SetVolume(float64) {}
