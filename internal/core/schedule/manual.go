package schedule

import (
	"sync"
	"time"
)

// Manual is a Clock driven by Advance. Callbacks run on the goroutine that
// calls Advance, in due-time order, ties broken by scheduling order.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	clock     *Manual
	at        time.Duration
	interval  time.Duration
	seq       int
	fn        func()
	cancelled bool
}

func (timer *manualTimer) Cancel() {
	timer.clock.mu.Lock()
	timer.cancelled = true
	timer.clock.mu.Unlock()
}

// NewManual creates a clock positioned at zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc schedules fn at now+delay.
func (clock *Manual) AfterFunc(delay time.Duration, fn func()) Handle {
	return clock.add(delay, 0, fn)
}

// Every schedules fn at every multiple of interval from now.
func (clock *Manual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	return clock.add(interval, interval, fn)
}

func (clock *Manual) add(delay, interval time.Duration, fn func()) *manualTimer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if delay < 0 {
		delay = 0
	}
	clock.seq++
	timer := &manualTimer{
		clock:    clock,
		at:       clock.now + delay,
		interval: interval,
		seq:      clock.seq,
		fn:       fn,
	}
	clock.pending = append(clock.pending, timer)
	return timer
}

// Advance moves time forward by delta, running every callback that falls due.
func (clock *Manual) Advance(delta time.Duration) {
	clock.mu.Lock()
	target := clock.now + delta
	for {
		timer := clock.nextDueLocked(target)
		if timer == nil {
			break
		}
		clock.now = timer.at
		if timer.interval > 0 {
			timer.at += timer.interval
		} else {
			timer.cancelled = true
		}
		clock.mu.Unlock()
		timer.fn()
		clock.mu.Lock()
	}
	clock.now = target
	clock.mu.Unlock()
}

// Now returns the time elapsed since the clock was created.
func (clock *Manual) Now() time.Duration {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Pending returns the number of live timers.
func (clock *Manual) Pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.pruneLocked()
	return len(clock.pending)
}

func (clock *Manual) nextDueLocked(target time.Duration) *manualTimer {
	clock.pruneLocked()
	var next *manualTimer
	for _, timer := range clock.pending {
		if timer.at > target {
			continue
		}
		if next == nil || timer.at < next.at || (timer.at == next.at && timer.seq < next.seq) {
			next = timer
		}
	}
	return next
}

func (clock *Manual) pruneLocked() {
	live := clock.pending[:0]
	for _, timer := range clock.pending {
		if !timer.cancelled {
			live = append(live, timer)
		}
	}
	for index := len(live); index < len(clock.pending); index++ {
		clock.pending[index] = nil
	}
	clock.pending = live
}
