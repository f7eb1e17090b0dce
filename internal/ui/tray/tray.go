package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart       func(label string)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        MenuHost
	title      string
	labels     []string
	callbacks  Callbacks
	statusItem *fyne.MenuItem
}

// New creates a tray manager with one start item per label.
func New(app MenuHost, title string, labels []string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		labels:    append([]string(nil), labels...),
		callbacks: callbacks,
	}
	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// FormatStatus renders "Medium: 06:59 left", or "idle" when not counting.
func FormatStatus(label string, remaining time.Duration, counting bool) string {
	if !counting {
		return "idle"
	}
	return fmt.Sprintf("%s: %s left", label, formatRemaining(remaining))
}

func (manager *Manager) menu() *fyne.Menu {
	items := []*fyne.MenuItem{manager.statusItem}
	for _, label := range manager.labels {
		label := label
		items = append(items, fyne.NewMenuItem(label, func() {
			if manager.callbacks.OnStart != nil {
				manager.callbacks.OnStart(label)
			}
		}))
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
	return fyne.NewMenu(manager.title, items...)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu())
	}
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
