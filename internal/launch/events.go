package launch

import (
	"log"

	"tapsound/internal/core/eggtimer"
	"tapsound/internal/platform"
	"tapsound/internal/ui/tray"
)

// WatchEggEvents turns countdown events into status lines and, when
// notifyEnabled reports true, a desktop notification on completion. It
// returns once events is closed.
func WatchEggEvents(events <-chan eggtimer.Event, notifier platform.Notifier, notifyEnabled func() bool, onStatus func(status string)) {
	for event := range events {
		counting := event.State == eggtimer.StateCounting
		if onStatus != nil {
			onStatus(tray.FormatStatus(event.Label, event.Remaining, counting))
		}
		if event.Type != eggtimer.EventDone || notifier == nil {
			continue
		}
		if notifyEnabled != nil && !notifyEnabled() {
			continue
		}
		if err := notifier.Notify(event.Label+" eggs", event.Message); err != nil {
			log.Printf("notify: %v", err)
		}
	}
}
