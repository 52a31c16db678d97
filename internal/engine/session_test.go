package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestFrameSinkDropsStaleGenerations(t *testing.T) {
	sink := NewFrameSink("s1", 4)

	sink.Render(snake.Frame{Generation: 2, Ticks: 5})
	sink.Render(snake.Frame{Generation: 1, Ticks: 9})
	sink.Render(snake.Frame{Generation: 2, Ticks: 6})

	var got []uint64
	for len(sink.Frames()) > 0 {
		got = append(got, (<-sink.Frames()).Ticks)
	}
	if len(got) != 2 || got[0] != 5 || got[1] != 6 {
		t.Errorf("Expected ticks [5 6], got %v", got)
	}
}

func TestFrameSinkDropsOldestWhenFull(t *testing.T) {
	sink := NewFrameSink("s1", 2)

	for i := range 5 {
		sink.Render(snake.Frame{Ticks: uint64(i)})
	}

	first := <-sink.Frames()
	second := <-sink.Frames()
	if first.Ticks != 3 || second.Ticks != 4 {
		t.Errorf("Expected the two newest frames, got %d and %d", first.Ticks, second.Ticks)
	}
}

func TestFrameSinkClose(t *testing.T) {
	sink := NewFrameSink("s1", 2)
	sink.Close()
	sink.Close() // idempotent

	sink.Render(snake.Frame{Ticks: 1})
	if len(sink.Frames()) != 0 {
		t.Error("Closed sink should not queue frames")
	}

	select {
	case <-sink.Done():
	default:
		t.Error("Done() should be closed")
	}
}

func TestFrameSinkWithController(t *testing.T) {
	sink := NewFrameSink("s1", 8)
	sched := clock.NewManual()
	c := NewController(ControllerConfig{
		Rules:     snake.DefaultRules(),
		Scheduler: sched,
		Renderer:  sink,
		Seed:      1,
	})
	defer c.Close()

	c.Start()
	sched.Advance(snake.DefaultTickPeriod)

	select {
	case f := <-sink.Frames():
		if f.Status != snake.Running || f.Ticks != 0 {
			t.Errorf("First frame should be the fresh run, got %+v", f)
		}
	case <-time.After(time.Second):
		t.Fatal("No frame delivered")
	}
	if f := <-sink.Frames(); f.Ticks != 1 {
		t.Errorf("Second frame should follow the first tick, got %d", f.Ticks)
	}
}

func TestSessionRegistry(t *testing.T) {
	reg := NewSessionRegistry()
	c := NewController(ControllerConfig{
		Rules:     snake.DefaultRules(),
		Scheduler: clock.NewManual(),
		Seed:      1,
	})
	c.Start()

	reg.Register(&Session{ID: "a", User: "alice", Controller: c, StartedAt: time.Now()})
	reg.Register(&Session{ID: "b", User: "bob"})

	if reg.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", reg.Count())
	}
	if s, ok := reg.Get("a"); !ok || s.User != "alice" {
		t.Errorf("Get(a) = %+v, %v", s, ok)
	}

	reg.Unregister("a")
	if _, ok := reg.Get("a"); ok {
		t.Error("Session a should be gone")
	}
	if c.Restart() {
		t.Error("Unregister should close the session's controller")
	}

	reg.CloseAll()
	if reg.Count() != 0 {
		t.Errorf("CloseAll should empty the registry, Count() = %d", reg.Count())
	}
}
