// Package face implements the clock-face engine: time/angle conversion,
// hand geometry and hit-testing, and the drag session that lets a user
// set a time by moving the hands directly.
package face

import (
	"math"
	"time"
)

// PressResult describes what a press gesture did.
type PressResult int

const (
	PressNone PressResult = iota
	PressGrabbed
	PressAmPmToggled
)

// State holds the mutable hand state of one clock face. It is not
// safe for concurrent use; the controller owning it serializes ticks
// and pointer gestures.
type State struct {
	geometry Geometry
	sizes    Sizes
	angles   Angles
	pm       bool

	grabEnabled bool
	grabbed     Hand
	hasGrab     bool
}

// NewState returns an empty face state. Geometry stays invalid until the
// first Resize, and every gesture is a no-op until then.
func NewState() *State {
	return &State{}
}

// Resize recomputes the geometry snapshot and hand sizes. Resizes that
// produce no drawable face are ignored.
func (state *State) Resize(width, height float64) bool {
	geometry := GeometryFor(width, height)
	if !geometry.Valid() {
		return false
	}
	state.geometry = geometry
	state.sizes = SizesFor(geometry.Radius)
	return true
}

// Apply moves the hands to the given wall-clock time and derives the
// AM/PM flag from its 24-hour value.
func (state *State) Apply(moment time.Time) {
	state.angles = AnglesAt(moment)
	state.pm = moment.Hour() >= 12
}

// SetGrabEnabled switches grab mode on or off. Turning it off while a
// hand is held abandons the gesture; each motion update left the coupled
// hands complete, so there is nothing to undo.
func (state *State) SetGrabEnabled(enabled bool) {
	state.grabEnabled = enabled
	if !enabled {
		state.hasGrab = false
	}
}

// GrabEnabled reports whether hands may be grabbed.
func (state *State) GrabEnabled() bool {
	return state.grabEnabled
}

// Grabbed returns the hand currently held, if any.
func (state *State) Grabbed() (Hand, bool) {
	return state.grabbed, state.hasGrab
}

// Press starts a gesture. It either grabs the first hand within
// tolerance of the pointer, toggles AM/PM when the indicator is hit,
// or does nothing.
func (state *State) Press(x, y float64) PressResult {
	if !state.grabEnabled || !state.geometry.Valid() || state.hasGrab {
		return PressNone
	}

	pointerAngle := PointerAngle(x, y, state.geometry)
	pointerDistance := PointerDistance(x, y, state.geometry)

	if hand, ok := GrabbableHand(pointerAngle, pointerDistance, state.angles, state.sizes); ok {
		state.grabbed = hand
		state.hasGrab = true
		return PressGrabbed
	}

	zoneWidth, zoneHeight := state.geometry.AmPmZone()
	if state.geometry.InAmPmZone(x, y, zoneWidth, zoneHeight) {
		state.pm = !state.pm
		return PressAmPmToggled
	}

	return PressNone
}

// Drag moves the held hand to the pointer and auto-rotates the coupled
// hand. Reports whether anything changed.
func (state *State) Drag(x, y float64) bool {
	if !state.hasGrab {
		return false
	}

	pointerAngle := PointerAngle(x, y, state.geometry)

	switch state.grabbed {
	case HandMinutes:
		// Snap the minute hand to whole minutes and spin the hour hand
		// along by a twelfth of the movement. The wrap correction keeps
		// the hour adjustment continuous when the minute hand crosses
		// the 12 mark, and a full hour-hand revolution flips AM/PM.
		pointerAngle = math.Trunc(pointerAngle*60/(2*math.Pi)) * (2 * math.Pi / 60)
		delta := pointerAngle - state.angles.Minutes
		state.angles.Hour += delta / 12
		if delta > math.Pi {
			state.angles.Hour -= 2 * math.Pi / 12
		} else if delta < -math.Pi {
			state.angles.Hour += 2 * math.Pi / 12
		}
		if state.angles.Hour >= 2*math.Pi {
			state.angles.Hour -= 2 * math.Pi
			state.pm = !state.pm
		} else if state.angles.Hour < 0 {
			state.angles.Hour += 2 * math.Pi
			state.pm = !state.pm
		}

	case HandHour:
		// Snap the minute hand to the whole minute implied by the hour
		// hand position. Jumping the hour hand more than half a turn
		// means it crossed the 12 boundary, which flips AM/PM.
		turns := state.angles.Hour * 12
		for turns >= 2*math.Pi {
			turns -= 2 * math.Pi
		}
		state.angles.Minutes = math.Trunc(turns*60/(2*math.Pi)) * (2 * math.Pi / 60)
		if math.Abs(state.angles.Hour-pointerAngle) > math.Pi {
			state.pm = !state.pm
		}
	}

	state.angles.set(state.grabbed, pointerAngle)
	return true
}

// Release ends the gesture and reports whether downstream consumers
// should be told the minute changed. Letting go of the second hand emits
// nothing: the derived time ignores seconds.
func (state *State) Release() (minuteChanged bool) {
	if !state.hasGrab {
		return false
	}
	hand := state.grabbed
	state.hasGrab = false
	return hand == HandHour || hand == HandMinutes
}

// TimeFromHands derives the displayed time from the hand angles, using
// ref for the date part.
func (state *State) TimeFromHands(ref time.Time) time.Time {
	return TimeFromAngles(state.angles, state.pm, ref)
}

// Snapshot is an immutable copy of the drawable face state.
type Snapshot struct {
	Geometry Geometry
	Sizes    Sizes
	Angles   Angles
	PM       bool
}

// Snapshot returns the current drawable state.
func (state *State) Snapshot() Snapshot {
	return Snapshot{
		Geometry: state.geometry,
		Sizes:    state.sizes,
		Angles:   state.angles,
		PM:       state.pm,
	}
}
