// Package midiin plays xylophone keys from an attached MIDI keyboard.
package midiin

import (
	"errors"
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// ErrNoInputPort is returned when no MIDI input matches.
var ErrNoInputPort = errors.New("no midi input port")

// pitchClasses maps a note number modulo 12 to a natural key label.
var pitchClasses = map[uint8]string{
	0:  "C",
	2:  "D",
	4:  "E",
	5:  "F",
	7:  "G",
	9:  "A",
	11: "B",
}

// LabelForNote returns the key label for a MIDI note. Sharps and flats
// have no key.
func LabelForNote(note uint8) (string, bool) {
	label, ok := pitchClasses[note%12]
	return label, ok
}

// Keyboard forwards note-on messages as key labels.
type Keyboard struct {
	port     string
	onKey    func(label string)
	stopFunc func()
}

// Handle reacts to one incoming message.
func (keyboard *Keyboard) Handle(msg gomidi.Message, _ int32) {
	var channel, note, velocity uint8
	if !msg.GetNoteOn(&channel, &note, &velocity) || velocity == 0 {
		return
	}
	if label, ok := LabelForNote(note); ok && keyboard.onKey != nil {
		keyboard.onKey(label)
	}
}

// Port returns the name of the open input.
func (keyboard *Keyboard) Port() string {
	return keyboard.port
}

// Close stops listening.
func (keyboard *Keyboard) Close() error {
	if keyboard.stopFunc != nil {
		keyboard.stopFunc()
		keyboard.stopFunc = nil
	}
	return nil
}

// Open listens on the first input whose name contains portName, or on the
// first input when portName is empty. A MIDI driver must be registered by
// the caller.
func Open(portName string, onKey func(label string)) (*Keyboard, error) {
	inPort, err := findInPort(gomidi.GetInPorts(), portName)
	if err != nil {
		return nil, err
	}

	keyboard := &Keyboard{port: inPort.String(), onKey: onKey}
	stop, err := gomidi.ListenTo(inPort, keyboard.Handle)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", keyboard.port, err)
	}
	keyboard.stopFunc = stop
	return keyboard, nil
}

func findInPort(ports []drivers.In, portName string) (drivers.In, error) {
	want := strings.ToLower(strings.TrimSpace(portName))
	for _, port := range ports {
		if want == "" || strings.Contains(strings.ToLower(port.String()), want) {
			return port, nil
		}
	}
	if want == "" {
		return nil, ErrNoInputPort
	}
	return nil, fmt.Errorf("%w: %s", ErrNoInputPort, portName)
}

// Shutdown releases the MIDI driver.
func Shutdown() {
	gomidi.CloseDriver()
}
