package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualFiresEachPeriod(t *testing.T) {
	m := NewManual()
	count := 0
	m.Every(150*time.Millisecond, func() { count++ })

	m.Advance(149 * time.Millisecond)
	if count != 0 {
		t.Fatalf("Timer fired early: count = %d", count)
	}

	m.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("Expected 1 fire at 150ms, got %d", count)
	}

	m.Advance(450 * time.Millisecond)
	if count != 4 {
		t.Errorf("Expected 4 fires at 600ms, got %d", count)
	}
	if m.Now() != 600*time.Millisecond {
		t.Errorf("Now() = %v, expected 600ms", m.Now())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	count := 0
	timer := m.Every(10*time.Millisecond, func() { count++ })

	m.Advance(30 * time.Millisecond)
	timer.Stop()
	timer.Stop() // idempotent
	m.Advance(100 * time.Millisecond)

	if count != 3 {
		t.Errorf("Expected 3 fires before stop, got %d", count)
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", m.Active())
	}
}

func TestManualStopFromCallback(t *testing.T) {
	m := NewManual()
	count := 0
	var timer Timer
	timer = m.Every(10*time.Millisecond, func() {
		count++
		if count == 2 {
			timer.Stop()
		}
	})

	m.Advance(time.Second)
	if count != 2 {
		t.Errorf("Timer stopped from its own callback should fire twice, got %d", count)
	}
}

func TestManualRescheduleFromCallback(t *testing.T) {
	m := NewManual()
	var order []string
	var first Timer
	first = m.Every(10*time.Millisecond, func() {
		order = append(order, "first")
		first.Stop()
		m.Every(10*time.Millisecond, func() { order = append(order, "second") })
	})

	m.Advance(30 * time.Millisecond)

	expected := []string{"first", "second", "second"}
	if len(order) != len(expected) {
		t.Fatalf("Fire order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Fire order = %v, expected %v", order, expected)
			break
		}
	}
}

func TestRealTimerStops(t *testing.T) {
	var count atomic.Int32
	timer := NewReal().Every(time.Millisecond, func() { count.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if count.Load() < 3 {
		t.Fatalf("Real timer fired %d times, expected at least 3", count.Load())
	}

	timer.Stop()
	timer.Stop()
	// Allow an in-flight tick to land, then make sure nothing else does.
	time.Sleep(10 * time.Millisecond)
	after := count.Load()
	time.Sleep(20 * time.Millisecond)
	if count.Load() != after {
		t.Errorf("Real timer kept firing after Stop: %d -> %d", after, count.Load())
	}
}
