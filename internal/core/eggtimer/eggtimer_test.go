package eggtimer

import (
	"testing"
	"time"

	"tapsound/internal/core/model"
	"tapsound/internal/core/schedule"

	"github.com/stretchr/testify/require"
)

type recordingView struct {
	progress []float64
	texts    []string
}

func (view *recordingView) SetProgress(progress float64) {
	view.progress = append(view.progress, progress)
}

func (view *recordingView) SetText(text string) {
	view.texts = append(view.texts, text)
}

type recordingPlayer struct {
	requests []model.SoundRequest
}

func (player *recordingPlayer) Play(request model.SoundRequest) {
	player.requests = append(player.requests, request)
}

func newTestTimer() (*Timer, *schedule.Manual, *recordingPlayer, *recordingView) {
	clock := schedule.NewManual()
	player := &recordingPlayer{}
	view := &recordingView{}
	return New(model.DefaultEggTimerConfig(), clock, player, view), clock, player, view
}

// TestTimer_SoftRunsToCompletion verifies three ticks produce thirds and one alarm.
func TestTimer_SoftRunsToCompletion(t *testing.T) {
	timer, clock, player, view := newTestTimer()

	timer.Activate("Soft")
	require.Equal(t, StateCounting, timer.State())
	require.Equal(t, []float64{0}, view.progress)
	require.Equal(t, []string{"You should Soft"}, view.texts)

	clock.Advance(time.Second)
	clock.Advance(time.Second)
	require.Empty(t, player.requests)
	clock.Advance(time.Second)

	require.Len(t, view.progress, 4)
	require.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, view.progress, 1e-9)
	require.Equal(t, []model.SoundRequest{{Name: "alarm_sound", Format: "mp3", Fallback: "wav"}}, player.requests)
	require.Equal(t, StateIdle, timer.State())
	require.Equal(t, "That's done! Let's go again?", view.texts[len(view.texts)-1])
	require.Equal(t, model.CountdownState{TotalSeconds: 3}, timer.Snapshot())

	clock.Advance(10 * time.Second)
	require.Len(t, player.requests, 1)
	require.Zero(t, clock.Pending())
}

// TestTimer_ReactivationCancelsPreviousCountdown verifies Medium is abandoned
// when Hard is picked.
func TestTimer_ReactivationCancelsPreviousCountdown(t *testing.T) {
	timer, clock, player, view := newTestTimer()

	timer.Activate("Medium")
	clock.Advance(5 * time.Second)
	require.Equal(t, 5, timer.Snapshot().ElapsedSeconds)

	timer.Activate("Hard")
	snapshot := timer.Snapshot()
	require.Equal(t, 0, snapshot.ElapsedSeconds)
	require.Equal(t, 720, snapshot.TotalSeconds)
	require.True(t, snapshot.Running)
	require.Equal(t, 1, clock.Pending())
	require.Equal(t, 0.0, view.progress[len(view.progress)-1])
	require.Equal(t, "You should Hard", view.texts[len(view.texts)-1])

	clock.Advance(420 * time.Second)
	require.Empty(t, player.requests)
	require.Equal(t, 420, timer.Snapshot().ElapsedSeconds)

	clock.Advance(300 * time.Second)
	require.Len(t, player.requests, 1)
	require.Equal(t, StateIdle, timer.State())
}

// TestTimer_UnknownLabelCompletesImmediately verifies a zero total finishes
// without ticking.
func TestTimer_UnknownLabelCompletesImmediately(t *testing.T) {
	timer, clock, player, view := newTestTimer()

	require.NotPanics(t, func() { timer.Activate("Scrambled") })

	require.Equal(t, StateIdle, timer.State())
	require.Len(t, player.requests, 1)
	require.Equal(t, []float64{0, 1}, view.progress)
	require.Equal(t, "You should Scrambled", view.texts[0])
	require.Zero(t, timer.Snapshot().TotalSeconds)
	require.Zero(t, clock.Pending())
}

// TestTimer_RestartAfterCompletion verifies the machine can run again.
func TestTimer_RestartAfterCompletion(t *testing.T) {
	timer, clock, player, _ := newTestTimer()

	timer.Activate("Soft")
	clock.Advance(3 * time.Second)
	timer.Activate("Soft")
	clock.Advance(3 * time.Second)

	require.Len(t, player.requests, 2)
	require.Equal(t, "Soft", timer.Label())
}

// TestTimer_EventsDeliveredToSubscribers verifies started, progress and done
// events reach observers.
func TestTimer_EventsDeliveredToSubscribers(t *testing.T) {
	timer, clock, _, _ := newTestTimer()
	events := timer.Subscribe(10)

	timer.Activate("Soft")
	clock.Advance(3 * time.Second)

	var types []EventType
	for len(events) > 0 {
		event := <-events
		types = append(types, event.Type)
		require.Equal(t, "Soft", event.Label)
	}
	require.Equal(t, []EventType{EventStarted, EventProgress, EventProgress, EventDone}, types)
}

// TestTimer_SlowSubscriberDoesNotBlock verifies emit never blocks the tick.
func TestTimer_SlowSubscriberDoesNotBlock(t *testing.T) {
	timer, clock, player, _ := newTestTimer()
	events := timer.Subscribe(1)

	timer.Activate("Soft")
	clock.Advance(3 * time.Second)

	require.Len(t, player.requests, 1)
	first := <-events
	require.Equal(t, EventStarted, first.Type)
}

// TestTimer_StopClosesObservers verifies Stop cancels ticking and closes channels.
func TestTimer_StopClosesObservers(t *testing.T) {
	timer, clock, player, _ := newTestTimer()
	events := timer.Subscribe(4)

	timer.Activate("Medium")
	timer.Stop()
	timer.Stop()
	clock.Advance(time.Hour)

	require.Empty(t, player.requests)
	require.Zero(t, clock.Pending())
	<-events
	_, open := <-events
	require.False(t, open)

	timer.Activate("Soft")
	require.Equal(t, StateIdle, timer.State())
	_, open = <-timer.Subscribe(1)
	require.False(t, open)
}

// TestTimer_UpdateConfigAppliesToNextActivation verifies preferences changes.
func TestTimer_UpdateConfigAppliesToNextActivation(t *testing.T) {
	timer, clock, _, _ := newTestTimer()
	timer.Activate("Medium")

	config := model.DefaultEggTimerConfig()
	config.Durations["Medium"] = 5 * time.Second
	timer.UpdateConfig(config)
	require.Equal(t, 420, timer.Snapshot().TotalSeconds)

	timer.Activate("Medium")
	require.Equal(t, 5, timer.Snapshot().TotalSeconds)
	clock.Advance(5 * time.Second)
	require.Equal(t, StateIdle, timer.State())
}

// TestNew_FillsDefaults verifies a zero config falls back to stock values.
func TestNew_FillsDefaults(t *testing.T) {
	timer := New(model.EggTimerConfig{}, schedule.NewManual(), nil, nil)

	require.Equal(t, "How do you like your eggs?", timer.Prompt())
	require.NotPanics(t, func() { timer.Activate("Hard") })
	require.Equal(t, 720, timer.Snapshot().TotalSeconds)
}

type queryingView struct {
	timer     *Timer
	snapshots []model.CountdownState
	states    []State
}

func (view *queryingView) SetProgress(float64) {
	view.snapshots = append(view.snapshots, view.timer.Snapshot())
}

func (view *queryingView) SetText(string) {
	view.states = append(view.states, view.timer.State())
}

type queryingPlayer struct {
	timer  *Timer
	states []State
}

func (player *queryingPlayer) Play(model.SoundRequest) {
	player.states = append(player.states, player.timer.State())
}

// TestTimer_OutputMayQueryTimer verifies the view and player run after the
// timer's state is settled and may read it back.
func TestTimer_OutputMayQueryTimer(t *testing.T) {
	clock := schedule.NewManual()
	timer := New(model.DefaultEggTimerConfig(), clock, nil, nil)
	view := &queryingView{timer: timer}
	player := &queryingPlayer{timer: timer}
	timer.SetView(view)
	timer.player = player

	done := make(chan struct{})
	go func() {
		defer close(done)
		timer.Activate("Soft")
		clock.Advance(3 * time.Second)
		timer.Activate("Unknown")
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("view or player blocked on the timer lock")
	}

	require.Equal(t, model.CountdownState{TotalSeconds: 3, Running: true}, view.snapshots[0])
	require.Equal(t, model.CountdownState{TotalSeconds: 3, ElapsedSeconds: 1, Running: true}, view.snapshots[1])
	require.Equal(t, model.CountdownState{TotalSeconds: 3}, view.snapshots[3])
	require.Equal(t, []State{StateIdle, StateIdle}, player.states)
	require.Equal(t, []State{StateCounting, StateIdle, StateIdle, StateIdle}, view.states)
}
