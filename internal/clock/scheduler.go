// Package clock provides the repeating timers that drive fixed-tick game
// loops, plus a manually advanced implementation for tests.
package clock

import (
	"sync"
	"time"
)

// Timer is a handle to a repeating schedule.
type Timer interface {
	// Stop cancels the schedule. It is idempotent and never blocks on a
	// callback that is already running.
	Stop()
}

// Scheduler creates repeating timers.
type Scheduler interface {
	// Every calls fn once per period until the returned Timer is stopped.
	// The first call happens one period after Every returns.
	Every(period time.Duration, fn func()) Timer
}

// Real schedules callbacks on wall-clock time. Each timer runs on its own
// goroutine; callers must serialize whatever fn touches.
type Real struct{}

// NewReal returns a wall-clock scheduler.
func NewReal() Real {
	return Real{}
}

// Every starts a ticker goroutine calling fn each period.
func (Real) Every(period time.Duration, fn func()) Timer {
	t := &realTimer{
		stopChan: make(chan struct{}),
	}
	ticker := time.NewTicker(period)
	go t.loop(ticker, fn)
	return t
}

type realTimer struct {
	stopChan chan struct{}
	stopOnce sync.Once
}

func (t *realTimer) loop(ticker *time.Ticker, fn func()) {
	defer ticker.Stop()
	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			// A stop may race with a tick that was already delivered.
			select {
			case <-t.stopChan:
				return
			default:
			}
			fn()
		}
	}
}

// Stop ends the ticker goroutine.
func (t *realTimer) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
}
