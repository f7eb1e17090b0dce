package midiin

import (
	"testing"

	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestLabelForNote(t *testing.T) {
	cases := map[uint8]string{60: "C", 62: "D", 64: "E", 65: "F", 67: "G", 69: "A", 71: "B", 72: "C", 21: "A"}
	for note, want := range cases {
		label, ok := LabelForNote(note)
		require.True(t, ok, "note %d", note)
		require.Equal(t, want, label, "note %d", note)
	}

	for _, sharp := range []uint8{61, 63, 66, 68, 70} {
		_, ok := LabelForNote(sharp)
		require.False(t, ok, "note %d", sharp)
	}
}

func TestKeyboard_HandleForwardsNaturalNoteOns(t *testing.T) {
	var keys []string
	keyboard := &Keyboard{onKey: func(label string) { keys = append(keys, label) }}

	keyboard.Handle(gomidi.NoteOn(0, 60, 100), 0)
	keyboard.Handle(gomidi.NoteOn(3, 61, 100), 0)
	keyboard.Handle(gomidi.NoteOn(0, 69, 0), 0)
	keyboard.Handle(gomidi.NoteOff(0, 60), 0)
	keyboard.Handle(gomidi.NoteOn(9, 71, 1), 0)

	require.Equal(t, []string{"C", "B"}, keys)
}

func TestKeyboard_CloseIsIdempotent(t *testing.T) {
	stops := 0
	keyboard := &Keyboard{stopFunc: func() { stops++ }}
	require.NoError(t, keyboard.Close())
	require.NoError(t, keyboard.Close())
	require.Equal(t, 1, stops)
}

func TestFindInPort_NoPorts(t *testing.T) {
	_, err := findInPort(nil, "")
	require.ErrorIs(t, err, ErrNoInputPort)

	_, err = findInPort(nil, "keystation")
	require.ErrorIs(t, err, ErrNoInputPort)
	require.Contains(t, err.Error(), "keystation")
}
