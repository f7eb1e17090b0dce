// Package ebitensound decodes WAV and MP3 assets with ebiten's audio stack.
package ebitensound

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"tapsound/internal/audio"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DefaultSampleRate matches the embedded note assets.
const DefaultSampleRate = 44100

// Backend owns the process-wide ebiten audio context.
type Backend struct {
	context *ebaudio.Context
}

// New creates the audio context. Only one may exist per process.
func New(sampleRate int) *Backend {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Backend{context: ebaudio.NewContext(sampleRate)}
}

// Load decodes data and wraps it in a player resampled to the context rate.
func (backend *Backend) Load(format string, data []byte) (audio.Voice, error) {
	stream, err := backend.decode(format, data)
	if err != nil {
		return nil, err
	}
	player, err := backend.context.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return player, nil
}

func (backend *Backend) decode(format string, data []byte) (io.Reader, error) {
	sampleRate := backend.context.SampleRate()
	switch strings.ToLower(format) {
	case "wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav: %w", err)
		}
		return stream, nil
	case "mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode mp3: %w", err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, format)
	}
}
