package game

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"lifecounter/internal/counter"
	"lifecounter/internal/nav"
	"lifecounter/internal/roster"
	"lifecounter/internal/session"
	"lifecounter/pkg/realtime"
)

// Events published to a table's subscribers.
const (
	EventScene  = "scene"
	EventHaptic = "haptic"
	EventTheme  = "theme"

	counterEventPrefix = "counter-"
)

var (
	ErrNotInSetup = errors.New("table is not in setup")
	ErrNoSession  = errors.New("no active session")
)

// CounterEvent names the event published when a counter frame changes.
func CounterEvent(id int) string {
	return counterEventPrefix + strconv.Itoa(id)
}

// ParseCounterEvent extracts the player id from a counter event.
func ParseCounterEvent(event string) (int, bool) {
	if !strings.HasPrefix(event, counterEventPrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(event, counterEventPrefix))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// Table is one device's app: its screen stack, the setup form and, while
// playing, the session with one counter widget per player.
type Table struct {
	mu        sync.Mutex
	ID        string
	CreatedAt time.Time

	nav     nav.Navigator
	setup   *roster.Setup
	session *session.Session
	widgets []*counter.Widget

	sched   realtime.Scheduler
	opts    counter.Options
	publish func(event string)
}

func newTable(id string, sched realtime.Scheduler, opts counter.Options, publish func(string)) *Table {
	if publish == nil {
		publish = func(string) {}
	}
	return &Table{
		ID:        id,
		CreatedAt: now(),
		nav:       nav.NewStack(),
		setup:     roster.NewSetup(),
		sched:     sched,
		opts:      opts,
		publish:   publish,
	}
}

// Scene returns the scene on top of the table's screen stack.
func (t *Table) Scene() nav.Scene {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nav.Current().Scene
}

// SetPlayerCount changes the setup count, blanking all names.
func (t *Table) SetPlayerCount(n int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.nav.Current().Scene != nav.SceneSetup {
		return ErrNotInSetup
	}
	return t.setup.SetPlayerCount(n)
}

// SetName stores a raw name in the setup form.
func (t *Table) SetName(index int, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.nav.Current().Scene != nav.SceneSetup {
		return ErrNotInSetup
	}
	return t.setup.SetName(index, text)
}

// SetNames stores names for the first len(names) slots; extra entries are ignored.
func (t *Table) SetNames(names []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.nav.Current().Scene != nav.SceneSetup {
		return ErrNotInSetup
	}
	count := t.setup.PlayerCount()
	for i, name := range names {
		if i >= count {
			break
		}
		if err := t.setup.SetName(i, name); err != nil {
			return err
		}
	}
	return nil
}

// Start confirms the setup form and moves to the home scene with a fresh session.
func (t *Table) Start() (roster.Roster, error) {
	t.mu.Lock()
	if t.nav.Current().Scene != nav.SceneSetup {
		t.mu.Unlock()
		return roster.Roster{}, ErrNotInSetup
	}
	if err := t.nav.Push(nav.HomeRoute(t.setup.Confirm())); err != nil {
		t.mu.Unlock()
		return roster.Roster{}, err
	}
	handoff := *t.nav.Current().Roster
	t.startSessionLocked(handoff)
	t.mu.Unlock()

	t.publish(EventScene)
	return handoff, nil
}

func (t *Table) startSessionLocked(r roster.Roster) {
	sess := session.New(r)
	players := sess.Players()
	widgets := make([]*counter.Widget, len(players))
	haptics := counter.HapticsFunc(func(counter.ImpactStyle) {
		t.publish(EventHaptic)
	})
	for i, p := range players {
		widgets[i] = counter.New(p.ID, p.Name, p.Life, counter.Config{
			Scheduler:  t.sched,
			Dispatcher: sess,
			Haptics:    haptics,
			Options:    t.opts,
			OnFrame: func(f counter.Frame) {
				t.publish(CounterEvent(f.PlayerID))
			},
		})
	}
	sess.SetObserver(func(id int, life int) {
		if id >= 0 && id < len(widgets) {
			widgets[id].SetLife(life)
		}
	})
	t.session = sess
	t.widgets = widgets
}

// Press handles a button tap on a player's counter: haptic feedback, then
// the command is applied to the session.
func (t *Table) Press(cmd session.Command) error {
	w, err := t.widget(cmd.PlayerID())
	if err != nil {
		return err
	}
	if cmd.Delta() >= 0 {
		return w.PressIncrement()
	}
	return w.PressDecrement()
}

// Dispatch implements session.Dispatcher by pressing the matching counter.
func (t *Table) Dispatch(cmd session.Command) error {
	return t.Press(cmd)
}

func (t *Table) widget(id int) (*counter.Widget, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session == nil {
		return nil, ErrNoSession
	}
	if id < 0 || id >= len(t.widgets) {
		return nil, session.ErrUnknownPlayer
	}
	return t.widgets[id], nil
}

// Reset discards the session and returns to a fresh setup form. History is
// cleared so the old session cannot be navigated back to.
func (t *Table) Reset() error {
	t.mu.Lock()
	t.closeSessionLocked()
	if err := t.nav.Reset(nav.SetupRoute()); err != nil {
		t.mu.Unlock()
		return err
	}
	t.setup = roster.NewSetup()
	t.mu.Unlock()

	t.publish(EventScene)
	return nil
}

func (t *Table) closeSessionLocked() {
	for _, w := range t.widgets {
		w.Close()
	}
	if t.session != nil {
		t.session.SetObserver(nil)
	}
	t.session = nil
	t.widgets = nil
}

// Close stops every counter animation.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeSessionLocked()
}

// Counter returns the current frame of one counter.
func (t *Table) Counter(id int) (counter.Frame, bool) {
	w, err := t.widget(id)
	if err != nil {
		return counter.Frame{}, false
	}
	return w.Frame(), true
}

// Options returns the counter animation timings.
func (t *Table) Options() counter.Options {
	return t.opts
}

// Snapshot captures the state needed for rendering a scene.
type Snapshot struct {
	ID          string
	Scene       nav.Scene
	Depth       int
	PlayerCount int
	Names       []string
	Layout      session.Layout
	Players     []session.Player
	Counters    []counter.Frame
}

// Snapshot returns a consistent view of the table.
func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	route := t.nav.Current()
	snap := Snapshot{
		ID:    t.ID,
		Scene: route.Scene,
		Depth: t.nav.Depth(),
	}
	if route.Scene == nav.SceneSetup || t.session == nil {
		snap.PlayerCount = t.setup.PlayerCount()
		snap.Names = t.setup.Names()
		return snap
	}
	snap.Players = t.session.Players()
	snap.PlayerCount = len(snap.Players)
	snap.Layout = session.LayoutFor(snap.PlayerCount)
	snap.Counters = make([]counter.Frame, 0, len(t.widgets))
	for _, w := range t.widgets {
		snap.Counters = append(snap.Counters, w.Frame())
	}
	return snap
}
