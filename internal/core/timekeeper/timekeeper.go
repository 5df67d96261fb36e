// Package timekeeper drives the clock face: a 1 Hz tick recomputes the
// hands from the wall clock while the widget is on screen, and pointer
// gestures take over hand ownership while grab mode is open. Ticking and
// dragging are never concurrent owners of the hand state.
package timekeeper

import (
	"sync"
	"time"

	"kidclock/internal/core/clock"
	"kidclock/internal/core/face"
	"kidclock/internal/core/model"
)

// Config contains runtime options for Keeper.
type Config struct {
	TickInterval time.Duration
}

// Keeper is the state machine orchestrating ticks, drags and redraws.
type Keeper struct {
	mu        sync.Mutex
	clk       clock.Clock
	options   Config
	face      *face.State
	mode      model.DisplayMode
	now       time.Time
	oldMinute int
	active    bool
	grabMode  bool
	running   bool
	stopCh    chan struct{}
	events    []chan Event
}

// New creates a Keeper reading time from the provided clock.
func New(clk clock.Clock, options Config) *Keeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}

	now := clk.Now()
	state := face.NewState()
	state.Apply(now)

	return &Keeper{
		clk:       clk,
		options:   options,
		face:      state,
		mode:      model.ModeSimple,
		now:       now,
		oldMinute: now.Minute(),
		stopCh:    make(chan struct{}),
	}
}

// Subscribe registers a new observer channel. A buffer of one is enough
// for redraw consumers; pending redraws coalesce into the queued one.
func (keeper *Keeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start launches the ticking loop. A stopped keeper can be started
// again; observers closed by Stop must resubscribe.
func (keeper *Keeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	stopCh := keeper.stopCh
	ticker := keeper.clk.NewTicker(keeper.options.TickInterval)
	keeper.mu.Unlock()

	go keeper.run(ticker, stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (keeper *Keeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// SetActive marks the widget visible or hidden. Activation recomputes
// the hands immediately and requests a redraw; while inactive no redraw
// requests are issued at all.
func (keeper *Keeper) SetActive(active bool) {
	keeper.mu.Lock()
	if keeper.active == active {
		keeper.mu.Unlock()
		return
	}
	keeper.active = active
	if !active {
		keeper.mu.Unlock()
		return
	}

	minuteChanged := keeper.updateLocked(keeper.clk.Now())
	keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: keeper.now, At: keeper.now})
	if minuteChanged {
		keeper.emitLocked(Event{Type: EventMinuteChange, Mode: keeper.mode, Time: keeper.now, At: keeper.now})
	}
	keeper.mu.Unlock()
}

// Active reports whether the widget is considered visible.
func (keeper *Keeper) Active() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.active
}

// SetDisplayMode switches the rendered face. Entering digital mode
// force-exits grab mode; the hands cannot be grabbed there.
func (keeper *Keeper) SetDisplayMode(mode model.DisplayMode) {
	keeper.mu.Lock()
	if mode == keeper.mode {
		keeper.mu.Unlock()
		return
	}
	keeper.mode = mode

	if mode == model.ModeDigital && keeper.grabMode {
		keeper.grabMode = false
		keeper.face.SetGrabEnabled(false)
		keeper.emitLocked(Event{Type: EventMinuteChange, Mode: mode, Time: keeper.now, At: keeper.clk.Now()})
	}

	keeper.emitLocked(Event{Type: EventModeChange, Mode: mode, Time: keeper.now, At: keeper.clk.Now()})
	keeper.emitLocked(Event{Type: EventRedraw, Mode: mode, Time: keeper.now, At: keeper.clk.Now()})
	keeper.mu.Unlock()
}

// DisplayMode returns the current face.
func (keeper *Keeper) DisplayMode() model.DisplayMode {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.mode
}

// SetGrabMode opens or closes hand grabbing. Opening suspends the tick;
// closing abandons any gesture in progress and lets the tick resume.
// Requests to open while the digital face is up are ignored.
func (keeper *Keeper) SetGrabMode(enabled bool) {
	keeper.mu.Lock()
	if enabled && keeper.mode == model.ModeDigital {
		keeper.mu.Unlock()
		return
	}
	if keeper.grabMode == enabled {
		keeper.mu.Unlock()
		return
	}
	keeper.grabMode = enabled
	keeper.face.SetGrabEnabled(enabled)

	displayed := keeper.displayedTimeLocked()
	keeper.emitLocked(Event{Type: EventMinuteChange, Mode: keeper.mode, Time: displayed, At: keeper.clk.Now()})
	keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: displayed, At: keeper.clk.Now()})
	keeper.mu.Unlock()
}

// GrabMode reports whether hand grabbing is open.
func (keeper *Keeper) GrabMode() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.grabMode
}

// Resize recomputes the face geometry. Resizes arriving before a
// drawable geometry exists are dropped.
func (keeper *Keeper) Resize(width, height float64) {
	keeper.mu.Lock()
	if keeper.face.Resize(width, height) {
		keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: keeper.now, At: keeper.clk.Now()})
	}
	keeper.mu.Unlock()
}

// Press opens a drag gesture or toggles AM/PM, depending on where the
// pointer landed. Presses that match nothing are silently ignored.
func (keeper *Keeper) Press(x, y float64) {
	keeper.mu.Lock()
	switch keeper.face.Press(x, y) {
	case face.PressAmPmToggled:
		displayed := keeper.displayedTimeLocked()
		keeper.emitLocked(Event{Type: EventMinuteChange, Mode: keeper.mode, Time: displayed, At: keeper.clk.Now()})
		keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: displayed, At: keeper.clk.Now()})
	case face.PressGrabbed:
		keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: keeper.now, At: keeper.clk.Now()})
	}
	keeper.mu.Unlock()
}

// Drag moves the grabbed hand to the pointer.
func (keeper *Keeper) Drag(x, y float64) {
	keeper.mu.Lock()
	if keeper.face.Drag(x, y) {
		keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: keeper.displayedTimeLocked(), At: keeper.clk.Now()})
	}
	keeper.mu.Unlock()
}

// Release ends a drag gesture. Letting go of the hour or minute hand
// notifies minute-change consumers with the hand-set time.
func (keeper *Keeper) Release() {
	keeper.mu.Lock()
	if keeper.face.Release() {
		keeper.emitLocked(Event{Type: EventMinuteChange, Mode: keeper.mode, Time: keeper.displayedTimeLocked(), At: keeper.clk.Now()})
	}
	keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: keeper.displayedTimeLocked(), At: keeper.clk.Now()})
	keeper.mu.Unlock()
}

// Time returns the displayed time: the wall clock normally, or the time
// read off the hands while grab mode is open.
func (keeper *Keeper) Time() time.Time {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.displayedTimeLocked()
}

// Snapshot bundles everything a frame needs.
type Snapshot struct {
	Mode model.DisplayMode
	Time time.Time
	Face face.Snapshot
}

// Snapshot returns the current drawable state.
func (keeper *Keeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return Snapshot{
		Mode: keeper.mode,
		Time: keeper.displayedTimeLocked(),
		Face: keeper.face.Snapshot(),
	}
}

func (keeper *Keeper) run(ticker clock.Ticker, stopCh <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C():
			keeper.tick(tickTime)
		}
	}
}

func (keeper *Keeper) tick(tickTime time.Time) {
	keeper.mu.Lock()
	if !keeper.running || !keeper.active || keeper.grabMode {
		keeper.mu.Unlock()
		return
	}

	minuteChanged := keeper.updateLocked(tickTime)
	keeper.emitLocked(Event{Type: EventRedraw, Mode: keeper.mode, Time: keeper.now, At: tickTime})
	if minuteChanged {
		keeper.emitLocked(Event{Type: EventMinuteChange, Mode: keeper.mode, Time: keeper.now, At: tickTime})
	}
	keeper.mu.Unlock()
}

// updateLocked recomputes hands from the wall clock and reports whether
// the minute moved. The comparison is against the previous minute value,
// not second == 0, because tick timing is not guaranteed exact.
func (keeper *Keeper) updateLocked(moment time.Time) bool {
	keeper.now = moment
	keeper.face.Apply(moment)

	if moment.Minute() == keeper.oldMinute {
		return false
	}
	keeper.oldMinute = moment.Minute()
	return true
}

func (keeper *Keeper) displayedTimeLocked() time.Time {
	if keeper.grabMode {
		return keeper.face.TimeFromHands(keeper.now)
	}
	return keeper.now
}

func (keeper *Keeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
