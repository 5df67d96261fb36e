package timekeeper

import (
	"time"

	"kidclock/internal/core/model"
)

// EventType defines the type of Keeper event.
type EventType string

const (
	// EventRedraw asks the display to repaint the face. Requests are
	// coalescible: observers that still have one queued drop the rest.
	EventRedraw EventType = "redraw"

	// EventMinuteChange fires when the displayed minute moves, either
	// by the wall clock ticking over or by the user setting the hands.
	EventMinuteChange EventType = "minute_change"

	// EventModeChange fires when the display mode switches faces.
	EventModeChange EventType = "mode_change"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type EventType
	Mode model.DisplayMode
	Time time.Time
	At   time.Time
}
