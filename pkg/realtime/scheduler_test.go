package realtime

import (
	"testing"
	"time"
)

func TestManualScheduler_RunsInDueOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []string
	s.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	s.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })

	s.Advance(15 * time.Millisecond)
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("after 15ms got %v, want [a]", got)
	}
	s.Advance(20 * time.Millisecond)
	if len(got) != 3 || got[1] != "b" || got[2] != "c" {
		t.Fatalf("after 35ms got %v, want [a b c]", got)
	}
	if s.Now() != 35*time.Millisecond {
		t.Errorf("Now %v, want 35ms", s.Now())
	}
}

func TestManualScheduler_Stop(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	timer := s.AfterFunc(time.Millisecond, func() { fired = true })
	if !timer.Stop() {
		t.Error("Stop on pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop should return false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending %d, want 0", s.Pending())
	}
}

func TestManualScheduler_ChainedCallbacks(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var step func()
	step = func() {
		count++
		if count < 3 {
			s.AfterFunc(10*time.Millisecond, step)
		}
	}
	s.AfterFunc(10*time.Millisecond, step)

	s.Advance(25 * time.Millisecond)
	if count != 2 {
		t.Errorf("count %d after 25ms, want 2", count)
	}
	s.Advance(time.Second)
	if count != 3 {
		t.Errorf("count %d, want 3", count)
	}
}

func TestClockScheduler_Fires(t *testing.T) {
	done := make(chan struct{})
	ClockScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ClockScheduler callback did not run")
	}
}
