package tui

import (
	"testing"
	"time"

	"tapsound/internal/core/eggtimer"
	"tapsound/internal/core/model"
	"tapsound/internal/core/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func newTimerModel(t *testing.T) (*EggModel, *eggtimer.Timer, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual()
	config := model.DefaultEggTimerConfig()
	timer := eggtimer.New(config, clock, nil, nil)
	m := NewEggModel(model.EggTriggers(), config.Prompt, timer.Activate)
	timer.SetView(m)
	t.Cleanup(timer.Stop)
	return m, timer, clock
}

func TestEggModel_KeysStartCountdown(t *testing.T) {
	m, timer, clock := newTimerModel(t)
	require.Contains(t, m.View(), "How do you like your eggs?")

	_, cmd := m.Update(keyMsg("s"))
	require.Nil(t, cmd)
	require.Equal(t, "You should Soft", m.title)
	require.Equal(t, eggtimer.StateCounting, timer.State())

	clock.Advance(time.Second)
	require.InDelta(t, 1.0/3, m.progress, 1e-9)

	clock.Advance(2 * time.Second)
	require.Equal(t, 1.0, m.progress)
	require.Equal(t, "That's done! Let's go again?", m.title)
	require.Contains(t, m.View(), "100%")
}

func TestEggModel_KeyMapping(t *testing.T) {
	m := NewEggModel(model.EggTriggers(), "prompt", nil)
	require.Equal(t, map[string]string{"s": "Soft", "m": "Medium", "h": "Hard"}, m.keys)

	view := m.View()
	require.Contains(t, view, "s Soft")
	require.Contains(t, view, "h Hard")
	require.Contains(t, view, "q quit")

	_, cmd := m.Update(keyMsg("x"))
	require.Nil(t, cmd)
	require.Equal(t, "prompt", m.title)
}

func TestEggModel_QuitKey(t *testing.T) {
	m := NewEggModel(model.EggTriggers(), "prompt", nil)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
	require.Empty(t, m.View())
}

func TestDispatcher_RunsCallbackInUpdate(t *testing.T) {
	m := NewEggModel(nil, "prompt", nil)
	var sent []tea.Msg
	dispatch := Dispatcher(func(msg tea.Msg) { sent = append(sent, msg) })

	ran := false
	dispatch(func() { ran = true })
	require.False(t, ran)
	require.Len(t, sent, 1)

	m.Update(sent[0])
	require.True(t, ran)
}

func TestRenderBar_ClampsProgress(t *testing.T) {
	m := NewEggModel(nil, "prompt", nil)
	m.SetProgress(2)
	require.Equal(t, 1.0, m.progress)
	m.SetProgress(-1)
	require.Equal(t, 0.0, m.progress)
	require.Contains(t, m.View(), "0%")
}
