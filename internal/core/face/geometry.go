package face

import "math"

// AngleTolerance is how far, in radians, the pointer may sit from a hand
// and still grab it.
const AngleTolerance = 0.3

const facePadding = 20

// Geometry is the per-resize snapshot every drawing and hit-test
// computation derives from.
type Geometry struct {
	CenterX   float64
	CenterY   float64
	Radius    float64
	LineWidth float64
}

// GeometryFor computes the face geometry for a widget of the given size.
func GeometryFor(width, height float64) Geometry {
	radius := math.Max(math.Min(width/2, height/2)-facePadding, 0)
	return Geometry{
		CenterX:   width / 2,
		CenterY:   height / 2,
		Radius:    radius,
		LineWidth: radius / 150,
	}
}

// Valid reports whether the geometry describes a drawable face.
func (geom Geometry) Valid() bool {
	return geom.Radius > 0
}

// AmPmZone returns the dimensions of the AM/PM indicator, drawn centered
// at (CenterX, CenterY + Radius/3). Render and hit-test both use it.
func (geom Geometry) AmPmZone() (width, height float64) {
	textSize := 0.12 * geom.Radius
	return 4.8 * textSize, 1.4 * textSize
}

// InAmPmZone reports whether the pointer hits the AM/PM indicator. The
// test spans half the zone width each side but the full zone height both
// above and below the indicator line, so small fingers get a generous
// vertical target.
func (geom Geometry) InAmPmZone(x, y, zoneWidth, zoneHeight float64) bool {
	lineY := geom.CenterY + geom.Radius/3
	return x > geom.CenterX-zoneWidth/2 &&
		x < geom.CenterX+zoneWidth/2 &&
		y > lineY-zoneHeight &&
		y < lineY+zoneHeight
}

// Sizes holds each hand's length in pixels, proportional to the radius.
type Sizes struct {
	Hour    float64
	Minutes float64
	Seconds float64
}

// SizesFor computes hand lengths for the given radius.
func SizesFor(radius float64) Sizes {
	return Sizes{
		Hour:    radius * 0.5,
		Minutes: radius * 0.8,
		Seconds: radius * 0.7,
	}
}

// Of returns the length of the named hand.
func (sizes Sizes) Of(hand Hand) float64 {
	switch hand {
	case HandHour:
		return sizes.Hour
	case HandMinutes:
		return sizes.Minutes
	default:
		return sizes.Seconds
	}
}

// PointerAngle converts a pointer position to a clockwise-from-12 angle
// in [0, 2pi). A pointer exactly at the center yields atan2(0, 0) = 0.
func PointerAngle(x, y float64, geom Geometry) float64 {
	adjacent := x - geom.CenterX
	opposite := -(y - geom.CenterY)
	angle := math.Atan2(adjacent, opposite)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// PointerDistance returns the distance from the pointer to the center.
func PointerDistance(x, y float64, geom Geometry) float64 {
	return math.Hypot(x-geom.CenterX, y-geom.CenterY)
}

// GrabbableHand returns the hand eligible for grabbing at the given
// pointer angle and distance. Hands are tested in a fixed priority order
// so that when tolerances overlap the hour hand wins over the minute
// hand, and the minute hand over the second hand.
func GrabbableHand(pointerAngle, pointerDistance float64, angles Angles, sizes Sizes) (Hand, bool) {
	for _, hand := range []Hand{HandHour, HandMinutes, HandSeconds} {
		if !angleInRange(angles.Of(hand), pointerAngle) {
			continue
		}
		if pointerDistance <= sizes.Of(hand) {
			return hand, true
		}
	}
	return 0, false
}

// angleInRange reports whether the pointer angle is within AngleTolerance
// of the hand angle, after normalizing the hand angle below 2pi.
func angleInRange(handAngle, pointerAngle float64) bool {
	normal := math.Mod(handAngle, 2*math.Pi)
	return normal >= pointerAngle-AngleTolerance && normal < pointerAngle+AngleTolerance
}
