package eggtimer

import "time"

// State represents the current countdown mode.
type State string

const (
	StateIdle     State = "idle"
	StateCounting State = "counting"
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventStarted  EventType = "started"
	EventProgress EventType = "progress"
	EventDone     EventType = "done"
)

// Event represents a countdown update for observers.
type Event struct {
	Type      EventType
	State     State
	Label     string
	Remaining time.Duration
	Progress  float64
	Message   string
	At        time.Time
}
