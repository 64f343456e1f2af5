// Package counter animates a player's displayed life toward the
// authoritative value one unit per tick, with a transient delta indicator.
package counter

import (
	"strconv"
	"sync"
	"time"

	"lifecounter/internal/session"
	"lifecounter/pkg/realtime"
)

// State is the widget's animation phase.
type State int

const (
	// StateIdle means displayed equals life and no indicator is showing.
	StateIdle State = iota
	// StateStepping means a tick is scheduled to move displayed toward life.
	StateStepping
	// StateSettling means displayed reached life and the indicator clear is pending.
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateStepping:
		return "stepping"
	case StateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// Options are the animation timings.
type Options struct {
	StepInterval  time.Duration
	ClearDelay    time.Duration
	PulseDuration time.Duration
}

// DefaultOptions returns the reference timings.
func DefaultOptions() Options {
	return Options{
		StepInterval:  80 * time.Millisecond,
		ClearDelay:    600 * time.Millisecond,
		PulseDuration: 100 * time.Millisecond,
	}
}

// DisplayState is what the widget currently shows. PendingDelta is only
// meaningful when HasPending is set.
type DisplayState struct {
	DisplayedLife int
	PendingDelta  int
	HasPending    bool
}

// Frame is a render snapshot of the widget.
type Frame struct {
	PlayerID  int
	Name      string
	Life      int
	Displayed int
	Indicator string
	// Pulse increments on every tick; views restart the pulse animation when it changes.
	Pulse int
	State State
}

// Config wires a widget to its collaborators.
type Config struct {
	Scheduler  realtime.Scheduler
	Dispatcher session.Dispatcher
	Haptics    Haptics
	Options    Options
	// OnFrame is called after every displayed change, outside the widget lock.
	OnFrame func(Frame)
}

// Widget is one player's counter. It never changes life itself; it only
// reflects the value pushed in with SetLife.
type Widget struct {
	mu      sync.Mutex
	id      int
	name    string
	life    int
	display DisplayState
	state   State
	pulse   int

	opts       Options
	sched      realtime.Scheduler
	dispatcher session.Dispatcher
	haptics    Haptics
	onFrame    func(Frame)

	timer  realtime.Timer
	gen    uint64
	closed bool
}

// New creates a widget showing life with nothing pending.
func New(id int, name string, life int, cfg Config) *Widget {
	opts := cfg.Options
	defaults := DefaultOptions()
	if opts.StepInterval <= 0 {
		opts.StepInterval = defaults.StepInterval
	}
	if opts.ClearDelay <= 0 {
		opts.ClearDelay = defaults.ClearDelay
	}
	if opts.PulseDuration <= 0 {
		opts.PulseDuration = defaults.PulseDuration
	}
	sched := cfg.Scheduler
	if sched == nil {
		sched = realtime.ClockScheduler{}
	}
	haptics := cfg.Haptics
	if haptics == nil {
		haptics = NoHaptics{}
	}
	return &Widget{
		id:         id,
		name:       name,
		life:       life,
		display:    DisplayState{DisplayedLife: life},
		opts:       opts,
		sched:      sched,
		dispatcher: cfg.Dispatcher,
		haptics:    haptics,
		onFrame:    cfg.OnFrame,
	}
}

// ID returns the player id this widget renders.
func (w *Widget) ID() int {
	return w.id
}

// Options returns the widget's timings.
func (w *Widget) Options() Options {
	return w.opts
}

// SetLife retargets the animation at a new authoritative value. Any
// scheduled tick or clear from the previous target is cancelled first.
func (w *Widget) SetLife(life int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.life = life
	w.cancelLocked()
	if life == w.display.DisplayedLife {
		if w.display.HasPending {
			w.state = StateSettling
			w.scheduleLocked(w.opts.ClearDelay, w.clear)
		} else {
			w.state = StateIdle
		}
		return
	}
	w.state = StateStepping
	w.scheduleLocked(w.opts.StepInterval, w.tick)
}

func (w *Widget) tick(gen uint64) {
	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.display.DisplayedLife += sign(w.life - w.display.DisplayedLife)
	w.display.PendingDelta = w.display.DisplayedLife - w.life
	w.display.HasPending = true
	w.pulse++
	if w.display.DisplayedLife == w.life {
		w.state = StateSettling
		w.scheduleLocked(w.opts.ClearDelay, w.clear)
	} else {
		w.scheduleLocked(w.opts.StepInterval, w.tick)
	}
	frame := w.frameLocked()
	onFrame := w.onFrame
	w.mu.Unlock()

	if onFrame != nil {
		onFrame(frame)
	}
}

func (w *Widget) clear(gen uint64) {
	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.display.PendingDelta = 0
	w.display.HasPending = false
	w.state = StateIdle
	frame := w.frameLocked()
	onFrame := w.onFrame
	w.mu.Unlock()

	if onFrame != nil {
		onFrame(frame)
	}
}

// scheduleLocked replaces the active timer. The generation check in the
// callbacks drops a callback that was already running when it was stopped.
func (w *Widget) scheduleLocked(d time.Duration, fn func(gen uint64)) {
	w.gen++
	gen := w.gen
	w.timer = w.sched.AfterFunc(d, func() { fn(gen) })
}

func (w *Widget) cancelLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
}

// PressIncrement fires haptic feedback and asks the session for +1.
func (w *Widget) PressIncrement() error {
	return w.press(session.Increment{ID: w.id})
}

// PressDecrement fires haptic feedback and asks the session for -1.
func (w *Widget) PressDecrement() error {
	return w.press(session.Decrement{ID: w.id})
}

func (w *Widget) press(cmd session.Command) error {
	w.haptics.Impact(ImpactHeavy)
	if w.dispatcher == nil {
		return nil
	}
	return w.dispatcher.Dispatch(cmd)
}

// Close cancels any scheduled work. A closed widget ignores SetLife.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelLocked()
	w.closed = true
	w.state = StateIdle
}

// Display returns the current display state.
func (w *Widget) Display() DisplayState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.display
}

// State returns the animation phase.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Frame returns a render snapshot.
func (w *Widget) Frame() Frame {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frameLocked()
}

func (w *Widget) frameLocked() Frame {
	return Frame{
		PlayerID:  w.id,
		Name:      w.name,
		Life:      w.life,
		Displayed: w.display.DisplayedLife,
		Indicator: Indicator(w.display),
		Pulse:     w.pulse,
		State:     w.state,
	}
}

// Indicator formats the pending delta: "+N" when positive, "-N" when
// negative and "" when absent or zero.
func Indicator(d DisplayState) string {
	if !d.HasPending || d.PendingDelta == 0 {
		return ""
	}
	if d.PendingDelta > 0 {
		return "+" + strconv.Itoa(d.PendingDelta)
	}
	return strconv.Itoa(d.PendingDelta)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
