package clock

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by explicit Advance calls. Callbacks run
// synchronously on the goroutine calling Advance, in deadline order.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	owner   *Manual
	seq     uint64
	period  time.Duration
	next    time.Duration
	fn      func()
	stopped bool
}

// Every registers a repeating timer relative to the current manual time.
func (m *Manual) Every(period time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		owner:  m,
		seq:    m.seq,
		period: period,
		next:   m.now + period,
		fn:     fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Stop cancels the timer.
func (t *manualTimer) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.stopped = true
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Active returns the number of timers that have not been stopped.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every callback that falls due.
// Callbacks may start or stop timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.nextDue(target)
		if t == nil {
			m.now = target
			m.compact()
			m.mu.Unlock()
			return
		}
		m.now = t.next
		t.next += t.period
		fn := t.fn
		m.mu.Unlock()

		fn()
	}
}

// nextDue returns the earliest live timer due at or before target.
// Ties go to the timer created first. Must hold m.mu.
func (m *Manual) nextDue(target time.Duration) *manualTimer {
	var due *manualTimer
	for _, t := range m.timers {
		if t.stopped || t.next > target {
			continue
		}
		if due == nil || t.next < due.next || (t.next == due.next && t.seq < due.seq) {
			due = t
		}
	}
	return due
}

// compact drops stopped timers. Must hold m.mu.
func (m *Manual) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
}
