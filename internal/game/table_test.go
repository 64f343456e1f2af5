package game

import (
	"testing"
	"time"

	"lifecounter/internal/nav"
	"lifecounter/internal/session"
)

func increment(id int) session.Command { return session.Increment{ID: id} }
func decrement(id int) session.Command { return session.Decrement{ID: id} }

func drain(ch chan string) []string {
	var events []string
	for {
		select {
		case e := <-ch:
			events = append(events, e)
		default:
			return events
		}
	}
}

func contains(events []string, want string) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestTable_StartWithDefaults(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		s, _ := newTestStore()
		tbl := s.CreateTable()
		if err := tbl.SetPlayerCount(n); err != nil {
			t.Fatalf("SetPlayerCount(%d): %v", n, err)
		}
		r, err := tbl.Start()
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		if r.PlayerCount != n {
			t.Errorf("roster count %d, want %d", r.PlayerCount, n)
		}
		snap := tbl.Snapshot()
		if snap.Scene != nav.SceneHome {
			t.Fatalf("Scene %q, want Home", snap.Scene)
		}
		if len(snap.Players) != n || len(snap.Counters) != n {
			t.Fatalf("players %d counters %d, want %d", len(snap.Players), len(snap.Counters), n)
		}
		for i, p := range snap.Players {
			if p.Life != session.StartingLife {
				t.Errorf("player %d Life %d, want 40", i, p.Life)
			}
			if snap.Counters[i].Displayed != session.StartingLife {
				t.Errorf("counter %d displayed %d, want 40", i, snap.Counters[i].Displayed)
			}
		}
		if snap.Layout != session.LayoutFor(n) {
			t.Errorf("Layout %q, want %q", snap.Layout, session.LayoutFor(n))
		}
	}
}

func TestTable_StartUsesNames(t *testing.T) {
	s, _ := newTestStore()
	tbl := s.CreateTable()
	_ = tbl.SetPlayerCount(3)
	if err := tbl.SetNames([]string{" Ana ", "", "Cy", "ignored"}); err != nil {
		t.Fatalf("SetNames: %v", err)
	}
	r, _ := tbl.Start()
	want := []string{"Ana", "Player 2", "Cy"}
	for i := range want {
		if r.PlayerNames[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, r.PlayerNames[i], want[i])
		}
	}
	if got := tbl.Snapshot().Counters[2].Name; got != "Cy" {
		t.Errorf("counter name %q, want Cy", got)
	}
}

func TestTable_SetupLockedDuringSession(t *testing.T) {
	s, _ := newTestStore()
	tbl := s.CreateTable()
	_, _ = tbl.Start()
	if err := tbl.SetPlayerCount(3); err != ErrNotInSetup {
		t.Errorf("SetPlayerCount err = %v, want ErrNotInSetup", err)
	}
	if err := tbl.SetName(0, "x"); err != ErrNotInSetup {
		t.Errorf("SetName err = %v, want ErrNotInSetup", err)
	}
	if _, err := tbl.Start(); err != ErrNotInSetup {
		t.Errorf("Start err = %v, want ErrNotInSetup", err)
	}
}

func TestTable_PressAnimatesAndPublishes(t *testing.T) {
	s, sched := newTestStore()
	tbl := s.CreateTable()
	hub := s.Broadcaster(tbl.ID)
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	_, _ = tbl.Start()
	drain(ch)

	if err := tbl.Press(increment(1)); err != nil {
		t.Fatalf("Press: %v", err)
	}
	events := drain(ch)
	if !contains(events, EventHaptic) {
		t.Errorf("events %v, want haptic", events)
	}
	snap := tbl.Snapshot()
	if snap.Players[1].Life != 41 {
		t.Errorf("Life %d, want 41", snap.Players[1].Life)
	}
	if snap.Counters[1].Displayed != 40 {
		t.Errorf("displayed %d before tick, want 40", snap.Counters[1].Displayed)
	}

	sched.Advance(80 * time.Millisecond)
	if !contains(drain(ch), CounterEvent(1)) {
		t.Error("tick should publish the counter event")
	}
	frame, ok := tbl.Counter(1)
	if !ok || frame.Displayed != 41 {
		t.Errorf("Counter(1) = %+v, %v, want displayed 41", frame, ok)
	}
}

func TestTable_IncrementDecrementRestores(t *testing.T) {
	s, sched := newTestStore()
	tbl := s.CreateTable()
	_ = tbl.SetPlayerCount(4)
	_, _ = tbl.Start()

	_ = tbl.Press(increment(2))
	_ = tbl.Dispatch(decrement(2))
	sched.Advance(time.Second)

	for _, p := range tbl.Snapshot().Players {
		if p.Life != session.StartingLife {
			t.Errorf("player %d Life %d, want 40", p.ID, p.Life)
		}
	}
}

func TestTable_PressErrors(t *testing.T) {
	s, _ := newTestStore()
	tbl := s.CreateTable()
	if err := tbl.Press(increment(0)); err != ErrNoSession {
		t.Errorf("Press before start err = %v, want ErrNoSession", err)
	}
	_, _ = tbl.Start()
	if err := tbl.Press(increment(5)); err != session.ErrUnknownPlayer {
		t.Errorf("Press(5) err = %v, want ErrUnknownPlayer", err)
	}
}

func TestTable_Reset(t *testing.T) {
	s, sched := newTestStore()
	tbl := s.CreateTable()
	_ = tbl.SetPlayerCount(4)
	_ = tbl.SetName(0, "Ana")
	_, _ = tbl.Start()
	_ = tbl.Press(decrement(0))

	if err := tbl.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	snap := tbl.Snapshot()
	if snap.Scene != nav.SceneSetup {
		t.Errorf("Scene %q, want Setup", snap.Scene)
	}
	if snap.Depth != 1 {
		t.Errorf("Depth %d, want 1", snap.Depth)
	}
	if snap.PlayerCount != 2 {
		t.Errorf("PlayerCount %d, want 2", snap.PlayerCount)
	}
	for i, name := range snap.Names {
		if name != "" {
			t.Errorf("name %d = %q, want blank", i, name)
		}
	}
	if len(snap.Players) != 0 || len(snap.Counters) != 0 {
		t.Error("reset should discard the session")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending %d after reset, want 0", sched.Pending())
	}
	if err := tbl.Press(increment(0)); err != ErrNoSession {
		t.Errorf("Press after reset err = %v, want ErrNoSession", err)
	}
}

func TestParseCounterEvent(t *testing.T) {
	id, ok := ParseCounterEvent(CounterEvent(3))
	if !ok || id != 3 {
		t.Errorf("ParseCounterEvent = %d, %v, want 3, true", id, ok)
	}
	for _, e := range []string{"scene", "counter-", "counter-x", "counter--1"} {
		if _, ok := ParseCounterEvent(e); ok {
			t.Errorf("ParseCounterEvent(%q) should fail", e)
		}
	}
}
