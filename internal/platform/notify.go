package platform

import (
	"github.com/gen2brain/beeep"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends notifications through the OS notification service.
type DesktopNotifier struct {
	Icon []byte
}

// NewDesktopNotifier names the sending application and keeps its icon.
func NewDesktopNotifier(appName string, icon []byte) *DesktopNotifier {
	beeep.AppName = appName
	return &DesktopNotifier{Icon: icon}
}

// Notify shows title and message.
func (notifier *DesktopNotifier) Notify(title, message string) error {
	var icon any = ""
	if len(notifier.Icon) > 0 {
		icon = notifier.Icon
	}
	return beeep.Notify(title, message, icon)
}

// NoopNotifier drops every notification.
type NoopNotifier struct{}

// Notify does nothing.
func (NoopNotifier) Notify(string, string) error { return nil }
