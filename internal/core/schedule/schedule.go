// Package schedule provides cancellable one-shot and periodic callbacks that
// are delivered on a single owning goroutine.
package schedule

import (
	"sync"
	"sync/atomic"
	"time"
)

// Handle cancels a scheduled callback. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(delay time.Duration, fn func()) Handle
	Every(interval time.Duration, fn func()) Handle
}

// Dispatcher hands fn to the goroutine that owns UI state.
type Dispatcher func(fn func())

// Direct runs fn on the calling goroutine.
func Direct(fn func()) {
	fn()
}

// Real is a wall-clock Clock. Callbacks go through the dispatcher and are
// dropped if their handle was cancelled before the dispatcher ran them.
type Real struct {
	dispatch Dispatcher
}

// NewReal creates a wall-clock Clock. A nil dispatcher runs callbacks on the
// timer goroutine.
func NewReal(dispatch Dispatcher) *Real {
	if dispatch == nil {
		dispatch = Direct
	}
	return &Real{dispatch: dispatch}
}

type realHandle struct {
	cancelled atomic.Bool
	once      sync.Once
	mu        sync.Mutex
	timer     *time.Timer
	stopCh    chan struct{}
}

func (handle *realHandle) Cancel() {
	handle.cancelled.Store(true)
	handle.once.Do(func() {
		handle.mu.Lock()
		if handle.timer != nil {
			handle.timer.Stop()
		}
		handle.mu.Unlock()
		if handle.stopCh != nil {
			close(handle.stopCh)
		}
	})
}

// AfterFunc runs fn once after delay.
func (clock *Real) AfterFunc(delay time.Duration, fn func()) Handle {
	handle := &realHandle{}
	handle.mu.Lock()
	defer handle.mu.Unlock()
	handle.timer = time.AfterFunc(delay, func() {
		clock.fire(handle, fn)
	})
	return handle
}

// Every runs fn once per interval until cancelled. Non-positive intervals
// fall back to one second.
func (clock *Real) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	handle := &realHandle{stopCh: make(chan struct{})}
	go clock.run(handle, interval, fn)
	return handle
}

func (clock *Real) run(handle *realHandle, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.stopCh:
			return
		case <-ticker.C:
			clock.fire(handle, fn)
		}
	}
}

func (clock *Real) fire(handle *realHandle, fn func()) {
	if handle.cancelled.Load() {
		return
	}
	clock.dispatch(func() {
		if handle.cancelled.Load() {
			return
		}
		fn()
	})
}
