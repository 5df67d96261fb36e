package face_test

import (
	"math"
	"testing"

	"kidclock/internal/core/face"
)

func TestGeometryFor(t *testing.T) {
	geom := face.GeometryFor(640, 480)

	approx(t, "center x", geom.CenterX, 320)
	approx(t, "center y", geom.CenterY, 240)
	approx(t, "radius", geom.Radius, 220)
	approx(t, "line width", geom.LineWidth, 220.0/150)
	if !geom.Valid() {
		t.Error("geometry should be valid")
	}
}

func TestGeometryForTinyAllocation(t *testing.T) {
	geom := face.GeometryFor(30, 30)
	if geom.Valid() {
		t.Errorf("radius %v should not be drawable", geom.Radius)
	}
}

func TestSizesFor(t *testing.T) {
	sizes := face.SizesFor(220)

	approx(t, "hour", sizes.Hour, 110)
	approx(t, "minutes", sizes.Minutes, 176)
	approx(t, "seconds", sizes.Seconds, 154)
}

func TestPointerAngleQuadrants(t *testing.T) {
	geom := face.GeometryFor(640, 480)
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"twelve", 320, 140, 0},
		{"three", 420, 240, math.Pi / 2},
		{"six", 320, 340, math.Pi},
		{"nine", 220, 240, 3 * math.Pi / 2},
		{"upper right", 330, 230, math.Pi / 4},
		{"lower right", 330, 250, 3 * math.Pi / 4},
		{"lower left", 310, 250, 5 * math.Pi / 4},
		{"upper left", 310, 230, 7 * math.Pi / 4},
		{"dead center", 320, 240, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			approx(t, "angle", face.PointerAngle(tc.x, tc.y, geom), tc.want)
		})
	}
}

func TestPointerDistance(t *testing.T) {
	geom := face.GeometryFor(640, 480)

	approx(t, "center", face.PointerDistance(320, 240, geom), 0)
	approx(t, "diagonal", face.PointerDistance(323, 244, geom), 5)
}

func TestGrabbableHandPriority(t *testing.T) {
	sizes := face.SizesFor(220)

	// All three hands on the 12 mark: priority decides by distance band.
	angles := face.Angles{}

	tests := []struct {
		name     string
		angle    float64
		distance float64
		want     face.Hand
		wantOK   bool
	}{
		{"hour wins close to center", 0, 100, face.HandHour, true},
		{"exact center still grabs hour", 0, 0, face.HandHour, true},
		{"beyond hour tip falls to minutes", 0, 130, face.HandMinutes, true},
		{"near minute tip still minutes", 0, 170, face.HandMinutes, true},
		{"past every tip", 0, 200, 0, false},
		{"tolerance edge grabs", face.AngleTolerance - 0.01, 100, face.HandHour, true},
		{"outside tolerance misses", face.AngleTolerance + 0.01, 100, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hand, ok := face.GrabbableHand(tc.angle, tc.distance, angles, sizes)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && hand != tc.want {
				t.Errorf("hand = %v, want %v", hand, tc.want)
			}
		})
	}
}

func TestGrabbableHandNormalizesOverwoundAngles(t *testing.T) {
	sizes := face.SizesFor(220)
	// An hour hand transiently past a full turn still matches pointers
	// near the 12 mark.
	angles := face.Angles{Hour: 2*math.Pi + 0.1, Minutes: math.Pi, Seconds: math.Pi / 2}

	hand, ok := face.GrabbableHand(0.1, 50, angles, sizes)
	if !ok || hand != face.HandHour {
		t.Errorf("got %v, %v; want hour hand", hand, ok)
	}
}

func TestInAmPmZone(t *testing.T) {
	geom := face.GeometryFor(640, 480)
	zoneWidth, zoneHeight := geom.AmPmZone()
	lineY := geom.CenterY + geom.Radius/3

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"dead center of zone", geom.CenterX, lineY, true},
		{"near left edge", geom.CenterX - zoneWidth/2 + 1, lineY, true},
		{"past left edge", geom.CenterX - zoneWidth/2 - 1, lineY, false},
		{"full height above", geom.CenterX, lineY - zoneHeight + 1, true},
		{"full height below", geom.CenterX, lineY + zoneHeight - 1, true},
		{"too high", geom.CenterX, lineY - zoneHeight - 1, false},
		{"clock center", geom.CenterX, geom.CenterY, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.InAmPmZone(tc.x, tc.y, zoneWidth, zoneHeight); got != tc.want {
				t.Errorf("InAmPmZone(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}
