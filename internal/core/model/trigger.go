package model

import "time"

// Trigger is a user-activatable element bound to one behavior.
type Trigger struct {
	Label    string
	Color    string
	Image    string
	Position int
	Duration time.Duration
}

// XylophoneTriggers returns the note keys in display order.
// The order is intentionally not alphabetical.
func XylophoneTriggers() []Trigger {
	return []Trigger{
		{Label: "A", Color: "red", Position: 0},
		{Label: "C", Color: "yellow", Position: 1},
		{Label: "B", Color: "blue", Position: 2},
		{Label: "F", Color: "gray", Position: 3},
		{Label: "G", Color: "brown", Position: 4},
		{Label: "E", Color: "pink", Position: 5},
		{Label: "D", Color: "mint", Position: 6},
	}
}

// EggTriggers returns the hardness choices with their default boil times.
func EggTriggers() []Trigger {
	return []Trigger{
		{Label: "Soft", Image: "soft_egg", Position: 0, Duration: 3 * time.Second},
		{Label: "Medium", Image: "medium_egg", Position: 1, Duration: 420 * time.Second},
		{Label: "Hard", Image: "hard_egg", Position: 2, Duration: 720 * time.Second},
	}
}

// CountdownState is a point-in-time view of the egg timer.
type CountdownState struct {
	TotalSeconds   int
	ElapsedSeconds int
	Running        bool
}

// Remaining returns the whole seconds left before completion.
func (state CountdownState) Remaining() time.Duration {
	left := state.TotalSeconds - state.ElapsedSeconds
	if left < 0 {
		left = 0
	}
	return time.Duration(left) * time.Second
}

// Progress returns the elapsed fraction clamped to [0, 1].
// A zero total counts as complete.
func (state CountdownState) Progress() float64 {
	if state.TotalSeconds <= 0 {
		return 1
	}
	progress := float64(state.ElapsedSeconds) / float64(state.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
