package face

import (
	"math"
	"time"
)

// Hand identifies one of the three rotating indicators.
type Hand int

const (
	HandHour Hand = iota
	HandMinutes
	HandSeconds
)

// String returns the lowercase hand name.
func (hand Hand) String() string {
	switch hand {
	case HandHour:
		return "hour"
	case HandMinutes:
		return "minutes"
	case HandSeconds:
		return "seconds"
	default:
		return "unknown"
	}
}

// Angles holds the rotation of each hand in radians. Zero points at the
// 12 mark and angles grow clockwise. Values normally stay in [0, 2pi) but
// may leave that range transiently while a drag is in progress.
type Angles struct {
	Hour    float64
	Minutes float64
	Seconds float64
}

// AnglesAt converts a wall-clock time to hand angles. The hour hand moves
// pi/6 per hour plus pi/360 per minute; the minute and second hands move
// pi/30 per unit.
func AnglesAt(moment time.Time) Angles {
	return Angles{
		Hour:    math.Pi/6*float64(moment.Hour()%12) + math.Pi/360*float64(moment.Minute()),
		Minutes: math.Pi / 30 * float64(moment.Minute()),
		Seconds: math.Pi / 30 * float64(moment.Second()),
	}
}

// Of returns the angle of the named hand.
func (angles Angles) Of(hand Hand) float64 {
	switch hand {
	case HandHour:
		return angles.Hour
	case HandMinutes:
		return angles.Minutes
	default:
		return angles.Seconds
	}
}

func (angles *Angles) set(hand Hand, value float64) {
	switch hand {
	case HandHour:
		angles.Hour = value
	case HandMinutes:
		angles.Minutes = value
	default:
		angles.Seconds = value
	}
}

// TimeFromAngles derives a time value from hand angles. The hour hand
// barely moves right after the hour ticks over, so when the minute hand
// is more than one minute past the top the hour readout is floored
// instead of rounded; rounding there would report the next hour a half
// turn too early. Seconds are always zero, downstream consumers of the
// derived time never need them. The date part is carried over from ref.
func TimeFromAngles(angles Angles, pm bool, ref time.Time) time.Time {
	var hour int
	if angles.Minutes > math.Pi/30 {
		hour = int(angles.Hour*12/(2*math.Pi)) % 12
	} else {
		hour = int(math.Round(angles.Hour*12/(2*math.Pi))) % 12
	}
	if pm {
		hour += 12
	}

	minute := int(math.Round(angles.Minutes*60/(2*math.Pi))) % 60

	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}
