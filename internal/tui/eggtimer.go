// Package tui renders the egg timer in a terminal.
package tui

import (
	"fmt"
	"math"
	"strings"

	"tapsound/internal/core/model"
	"tapsound/internal/core/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff"))
	fillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c542"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
)

// runMsg carries a callback onto the program goroutine.
type runMsg func()

// Dispatcher delivers scheduled callbacks through send, usually
// (*tea.Program).Send, so they run inside Update.
func Dispatcher(send func(tea.Msg)) schedule.Dispatcher {
	return func(fn func()) {
		send(runMsg(fn))
	}
}

// EggModel is the terminal view of the egg timer. It also serves as the
// timer's View; both are only touched from Update.
type EggModel struct {
	triggers []model.Trigger
	keys     map[string]string
	activate func(label string)
	title    string
	progress float64
	quitting bool
}

// NewEggModel binds the first letter of each label, lowercased, to that
// label.
func NewEggModel(triggers []model.Trigger, prompt string, activate func(label string)) *EggModel {
	keys := make(map[string]string, len(triggers))
	for _, trigger := range triggers {
		if trigger.Label == "" {
			continue
		}
		key := strings.ToLower(trigger.Label[:1])
		if _, taken := keys[key]; !taken && key != "q" {
			keys[key] = trigger.Label
		}
	}
	return &EggModel{
		triggers: append([]model.Trigger(nil), triggers...),
		keys:     keys,
		activate: activate,
		title:    prompt,
	}
}

// SetProgress stores the bar fill.
func (m *EggModel) SetProgress(progress float64) {
	m.progress = math.Max(0, math.Min(1, progress))
}

// SetText stores the title line.
func (m *EggModel) SetText(text string) {
	m.title = text
}

func (m *EggModel) Init() tea.Cmd {
	return nil
}

func (m *EggModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		msg()

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		default:
			if label, ok := m.keys[key]; ok && m.activate != nil {
				m.activate(label)
			}
		}
	}
	return m, nil
}

func (m *EggModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(renderBar(m.progress))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n\n", m.progress*100))

	var help []string
	for _, trigger := range m.triggers {
		for key, label := range m.keys {
			if label == trigger.Label {
				help = append(help, fmt.Sprintf("%s %s", key, label))
			}
		}
	}
	help = append(help, "q quit")
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	b.WriteString("\n")
	return b.String()
}

func renderBar(progress float64) string {
	filled := int(math.Round(progress * barWidth))
	return fillStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
