package eggtimer

import (
	"fmt"
	"sync"
	"time"

	"tapsound/internal/core/model"
	"tapsound/internal/core/schedule"
)

// View receives countdown output.
type View interface {
	SetProgress(progress float64)
	SetText(text string)
}

// Player starts a sound.
type Player interface {
	Play(request model.SoundRequest)
}

// Timer is the idle/counting state machine behind the egg buttons.
// Only one tick source is alive at a time.
type Timer struct {
	mu         sync.Mutex
	config     model.EggTimerConfig
	clock      schedule.Clock
	player     Player
	view       View
	state      State
	label      string
	total      int
	elapsed    int
	tick       schedule.Handle
	generation int
	events     []chan Event
	stopped    bool
	now        func() time.Time
}

// New creates an idle Timer with the provided configuration.
func New(config model.EggTimerConfig, clock schedule.Clock, player Player, view View) *Timer {
	return &Timer{
		config: normalizeConfig(config),
		clock:  clock,
		player: player,
		view:   view,
		state:  StateIdle,
		now:    time.Now,
	}
}

func normalizeConfig(config model.EggTimerConfig) model.EggTimerConfig {
	defaults := model.DefaultEggTimerConfig()
	if config.Durations == nil {
		config.Durations = defaults.Durations
	}
	if config.TickInterval <= 0 {
		config.TickInterval = defaults.TickInterval
	}
	if config.Alarm.Name == "" {
		config.Alarm = defaults.Alarm
	}
	if config.Prompt == "" {
		config.Prompt = defaults.Prompt
	}
	if config.DoneText == "" {
		config.DoneText = defaults.DoneText
	}
	return config
}

// SetView attaches the view after construction.
func (timer *Timer) SetView(view View) {
	timer.mu.Lock()
	timer.view = view
	timer.mu.Unlock()
}

// Prompt returns the text shown before any selection.
func (timer *Timer) Prompt() string {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config.Prompt
}

// UpdateConfig replaces durations and messages. A running countdown keeps
// its total; the new values apply from the next activation.
func (timer *Timer) UpdateConfig(config model.EggTimerConfig) {
	timer.mu.Lock()
	timer.config = normalizeConfig(config)
	timer.mu.Unlock()
}

// Subscribe registers a new observer channel. Slow observers miss events.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	if timer.stopped {
		close(ch)
	} else {
		timer.events = append(timer.events, ch)
	}
	timer.mu.Unlock()
	return ch
}

// Activate cancels any running countdown and starts a new one for label.
// Unknown labels get a zero total and complete at once.
func (timer *Timer) Activate(label string) {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}

	timer.stopTickLocked()
	timer.elapsed = 0
	timer.label = label
	timer.total = int(timer.config.Durations[label] / time.Second)
	timer.state = StateCounting

	out := timer.outputLocked()
	out.progress(0)
	out.text(fmt.Sprintf("You should %s", label))
	timer.emitLocked(Event{
		Type:      EventStarted,
		State:     StateCounting,
		Label:     label,
		Remaining: timer.snapshotLocked().Remaining(),
		At:        timer.now(),
	})

	if timer.total <= 0 {
		timer.completeLocked(out)
	} else {
		generation := timer.generation
		timer.tick = timer.clock.Every(timer.config.TickInterval, func() {
			timer.onTick(generation)
		})
	}
	timer.mu.Unlock()

	out.flush()
}

// Snapshot returns the current countdown state.
func (timer *Timer) Snapshot() model.CountdownState {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

// State returns the current mode.
func (timer *Timer) State() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Label returns the hardness of the current or last countdown.
func (timer *Timer) Label() string {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.label
}

// Stop cancels the countdown and closes observers.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	timer.stopped = true
	timer.stopTickLocked()
	timer.state = StateIdle
	timer.elapsed = 0
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *Timer) onTick(generation int) {
	timer.mu.Lock()
	if generation != timer.generation || timer.state != StateCounting {
		timer.mu.Unlock()
		return
	}

	out := timer.outputLocked()
	if timer.elapsed < timer.total {
		timer.elapsed++
	}
	if timer.elapsed >= timer.total {
		timer.completeLocked(out)
	} else {
		snapshot := timer.snapshotLocked()
		out.progress(snapshot.Progress())
		timer.emitLocked(Event{
			Type:      EventProgress,
			State:     StateCounting,
			Label:     timer.label,
			Remaining: snapshot.Remaining(),
			Progress:  snapshot.Progress(),
			At:        timer.now(),
		})
	}
	timer.mu.Unlock()

	out.flush()
}

func (timer *Timer) completeLocked(out *output) {
	timer.stopTickLocked()
	out.play(timer.config.Alarm)
	timer.elapsed = 0
	timer.state = StateIdle

	out.progress(1)
	out.text(timer.config.DoneText)
	timer.emitLocked(Event{
		Type:     EventDone,
		State:    StateIdle,
		Label:    timer.label,
		Progress: 1,
		Message:  timer.config.DoneText,
		At:       timer.now(),
	})
}

func (timer *Timer) stopTickLocked() {
	timer.generation++
	if timer.tick != nil {
		timer.tick.Cancel()
		timer.tick = nil
	}
}

func (timer *Timer) snapshotLocked() model.CountdownState {
	return model.CountdownState{
		TotalSeconds:   timer.total,
		ElapsedSeconds: timer.elapsed,
		Running:        timer.state == StateCounting,
	}
}

func (timer *Timer) emitLocked(event Event) {
	events := append([]chan Event(nil), timer.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

// output queues view and player calls made while the lock is held; flush
// runs them, in order, after it is released.
type output struct {
	view    View
	player  Player
	pending []func()
}

func (timer *Timer) outputLocked() *output {
	return &output{view: timer.view, player: timer.player}
}

func (out *output) progress(progress float64) {
	if out.view != nil {
		out.pending = append(out.pending, func() { out.view.SetProgress(progress) })
	}
}

func (out *output) text(text string) {
	if out.view != nil {
		out.pending = append(out.pending, func() { out.view.SetText(text) })
	}
}

func (out *output) play(request model.SoundRequest) {
	if out.player != nil {
		out.pending = append(out.pending, func() { out.player.Play(request) })
	}
}

func (out *output) flush() {
	for _, fn := range out.pending {
		fn()
	}
}
