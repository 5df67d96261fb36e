package timekeeper_test

import (
	"math"
	"testing"
	"time"

	"kidclock/internal/core/clock"
	"kidclock/internal/core/face"
	"kidclock/internal/core/model"
	"kidclock/internal/core/timekeeper"
)

func startOfDay() time.Time {
	return time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
}

// waitEvent reads events until one of the wanted type arrives or the
// deadline passes.
func waitEvent(t *testing.T, events <-chan timekeeper.Event, want timekeeper.EventType) timekeeper.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed while waiting for %s", want)
			}
			if event.Type == want {
				return event
			}
		case <-deadline:
			t.Fatalf("no %s event arrived", want)
		}
	}
}

// expectQuiet asserts that no event arrives for a short while.
func expectQuiet(t *testing.T, events <-chan timekeeper.Event) {
	t.Helper()
	select {
	case event := <-events:
		t.Fatalf("unexpected event %s", event.Type)
	case <-time.After(200 * time.Millisecond):
	}
}

func drain(events <-chan timekeeper.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}

func TestTickUpdatesHandsAndRequestsRedraw(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(16)

	keeper.Start()
	defer keeper.Stop()
	keeper.SetActive(true)
	drain(events)

	manual.Advance(time.Second)
	waitEvent(t, events, timekeeper.EventRedraw)

	snap := keeper.Snapshot()
	if got, want := snap.Face.Angles.Seconds, math.Pi/30; math.Abs(got-want) > 1e-9 {
		t.Errorf("seconds angle = %v, want %v", got, want)
	}
}

func TestMinuteChangeFiresOnMinuteRollover(t *testing.T) {
	manual := clock.NewManual(startOfDay().Add(59 * time.Second))
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(16)

	keeper.Start()
	defer keeper.Stop()
	keeper.SetActive(true)
	drain(events)

	manual.Advance(time.Second)
	event := waitEvent(t, events, timekeeper.EventMinuteChange)
	if event.Time.Minute() != 1 {
		t.Errorf("minute change carried minute %d, want 1", event.Time.Minute())
	}
}

func TestInactiveKeeperStaysSilent(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(16)

	keeper.Start()
	defer keeper.Stop()

	manual.Advance(3 * time.Second)
	expectQuiet(t, events)
}

func TestGrabModeSuspendsTicking(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(16)

	keeper.Start()
	defer keeper.Stop()
	keeper.SetActive(true)
	keeper.SetGrabMode(true)
	drain(events)

	manual.Advance(5 * time.Second)
	expectQuiet(t, events)

	// Closing grab mode lets the next tick through again.
	keeper.SetGrabMode(false)
	drain(events)
	manual.Advance(time.Second)
	waitEvent(t, events, timekeeper.EventRedraw)
}

func TestActivationRedrawsImmediately(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(16)

	keeper.SetActive(true)

	select {
	case event := <-events:
		if event.Type != timekeeper.EventRedraw {
			t.Errorf("first event = %s, want redraw", event.Type)
		}
	default:
		t.Fatal("activation emitted nothing")
	}
}

func TestRedrawRequestsCoalesce(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(1)

	keeper.Resize(640, 480)
	keeper.Resize(642, 480)
	keeper.Resize(644, 480)

	if event := <-events; event.Type != timekeeper.EventRedraw {
		t.Fatalf("queued event = %s, want redraw", event.Type)
	}
	select {
	case event := <-events:
		t.Fatalf("second event %s survived coalescing", event.Type)
	default:
	}
}

func TestResizeBeforeDrawableGeometryIsDropped(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(4)

	keeper.Resize(10, 10)

	select {
	case event := <-events:
		t.Fatalf("tiny resize emitted %s", event.Type)
	default:
	}
}

func TestDigitalModeRefusesGrab(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})

	keeper.SetDisplayMode(model.ModeDigital)
	keeper.SetGrabMode(true)
	if keeper.GrabMode() {
		t.Error("grab mode opened on the digital face")
	}
}

func TestSwitchingToDigitalExitsGrabMode(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})

	keeper.SetGrabMode(true)
	keeper.SetDisplayMode(model.ModeDigital)
	if keeper.GrabMode() {
		t.Error("grab mode survived the switch to digital")
	}
}

func TestHandSetTimeIsReported(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(16)

	keeper.Resize(640, 480)
	keeper.SetGrabMode(true)
	drain(events)

	// Grab the minute hand at the 12 mark, beyond the hour hand's tip.
	geom := face.GeometryFor(640, 480)
	keeper.Press(geom.CenterX, geom.CenterY-150)

	// Drag to mid-minute 29, which snaps the minute hand to 29.
	angle := 29.5 / 60 * 2 * math.Pi
	keeper.Drag(geom.CenterX+150*math.Sin(angle), geom.CenterY-150*math.Cos(angle))
	drain(events)
	keeper.Release()

	event := waitEvent(t, events, timekeeper.EventMinuteChange)
	if event.Time.Hour() != 0 || event.Time.Minute() != 29 {
		t.Errorf("hand-set time %02d:%02d, want 00:29", event.Time.Hour(), event.Time.Minute())
	}
	if got := keeper.Time(); got.Minute() != 29 {
		t.Errorf("Time() = %v, want minute 29", got)
	}
}

func TestStopClosesSubscribers(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})
	events := keeper.Subscribe(1)

	keeper.Start()
	keeper.Stop()

	if _, ok := <-events; ok {
		t.Error("subscriber channel still open after Stop")
	}
}

func TestStartAfterStopTicksAgain(t *testing.T) {
	manual := clock.NewManual(startOfDay())
	keeper := timekeeper.New(manual, timekeeper.Config{TickInterval: time.Second})

	keeper.Start()
	keeper.SetActive(true)
	keeper.Stop()

	events := keeper.Subscribe(1)
	keeper.Start()
	manual.Advance(time.Second)

	waitEvent(t, events, timekeeper.EventRedraw)
	keeper.Stop()
}
