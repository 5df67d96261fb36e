package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"kidclock/internal/core/face"
	"kidclock/internal/core/model"
)

// digitAdvance approximates the advance of a monospace glyph as a
// fraction of the text size, used to lay out the digital time segments.
const digitAdvance = 0.62

// Engine assembles per-frame draw commands. The static background of the
// analog faces is expensive relative to the hands, so it is built once
// per geometry and replayed every tick; only one geometry is live at a
// time, so a single slot per mode is enough.
type Engine struct {
	palette  model.Palette
	simple   backgroundSlot
	nice     backgroundSlot
	rebuilds int
}

type backgroundSlot struct {
	geometry face.Geometry
	ops      []Op
	valid    bool
}

// NewEngine creates a render engine using the given color table.
func NewEngine(palette model.Palette) *Engine {
	return &Engine{palette: palette}
}

// Frame produces the draw commands for one paint of the given mode.
// An unknown mode is a programming error and is reported, never painted
// as an empty frame. A frame requested before any drawable geometry
// exists is empty.
func (engine *Engine) Frame(mode model.DisplayMode, snap face.Snapshot, now time.Time) ([]Op, error) {
	if !snap.Geometry.Valid() {
		return nil, nil
	}

	switch mode {
	case model.ModeSimple:
		ops := append([]Op(nil), engine.simpleBackground(snap.Geometry)...)
		ops = append(ops, engine.amPmIndicator(snap)...)
		return append(ops, engine.hands(snap)...), nil
	case model.ModeNice:
		ops := append([]Op(nil), engine.niceBackground(snap.Geometry)...)
		ops = append(ops, engine.amPmIndicator(snap)...)
		return append(ops, engine.hands(snap)...), nil
	case model.ModeDigital:
		return engine.digital(snap.Geometry, now), nil
	default:
		return nil, fmt.Errorf("unknown display mode: %s", mode)
	}
}

func (engine *Engine) simpleBackground(geom face.Geometry) []Op {
	if engine.simple.valid && engine.simple.geometry == geom {
		return engine.simple.ops
	}
	engine.simple = backgroundSlot{
		geometry: geom,
		ops:      engine.buildSimpleBackground(geom),
		valid:    true,
	}
	engine.rebuilds++
	return engine.simple.ops
}

func (engine *Engine) niceBackground(geom face.Geometry) []Op {
	if engine.nice.valid && engine.nice.geometry == geom {
		return engine.nice.ops
	}
	engine.nice = backgroundSlot{
		geometry: geom,
		ops: []Op{ImageOp{
			Min:    Point{X: geom.CenterX - geom.Radius, Y: geom.CenterY - geom.Radius},
			Width:  geom.Radius * 2,
			Height: geom.Radius * 2,
		}},
		valid: true,
	}
	engine.rebuilds++
	return engine.nice.ops
}

// buildSimpleBackground draws the white disk, the sixty ticks and the
// hour numerals. Ticks thicken and sink deeper at the five and fifteen
// minute marks.
func (engine *Engine) buildSimpleBackground(geom face.Geometry) []Op {
	ops := []Op{CircleOp{
		Center:      Point{X: geom.CenterX, Y: geom.CenterY},
		Radius:      geom.Radius - geom.LineWidth*2,
		Fill:        engine.palette.Background,
		Stroke:      engine.palette.Foreground,
		StrokeWidth: geom.LineWidth * 4,
	}}

	for i := 0; i < 60; i++ {
		var inset, width float64
		switch {
		case i%15 == 0:
			inset = 0.11 * geom.Radius
			width = geom.LineWidth * 7
		case i%5 == 0:
			inset = 0.10 * geom.Radius
			width = geom.LineWidth * 5
		default:
			inset = 0.05 * geom.Radius
			width = geom.LineWidth * 4
		}

		cos := math.Cos(float64(i) * math.Pi / 30)
		sin := math.Sin(float64(i) * math.Pi / 30)
		ops = append(ops, LineOp{
			From:  Point{X: geom.CenterX + (geom.Radius-inset)*cos, Y: geom.CenterY + (geom.Radius-inset)*sin},
			To:    Point{X: geom.CenterX + (geom.Radius-6)*cos, Y: geom.CenterY + (geom.Radius-6)*sin},
			Width: width,
			Color: engine.palette.Foreground,
		})
	}

	// Numerals sit at three quarters of the radius; the offset of two
	// puts "12" at the top.
	for i := 0; i < 12; i++ {
		angle := float64(i-2) * math.Pi / 6
		ops = append(ops, TextOp{
			Center: Point{
				X: geom.CenterX + 0.75*geom.Radius*math.Cos(angle),
				Y: geom.CenterY + 0.75*geom.Radius*math.Sin(angle),
			},
			Text:  fmt.Sprintf("%d", i+1),
			Size:  0.18 * geom.Radius,
			Color: engine.palette.Hours,
			Bold:  true,
		})
	}

	return ops
}

// amPmIndicator draws the AM and PM labels below the center, with the
// active one highlighted white-on-black. Its footprint matches the
// geometry's AM/PM hit zone.
func (engine *Engine) amPmIndicator(snap face.Snapshot) []Op {
	geom := snap.Geometry
	zoneWidth, zoneHeight := geom.AmPmZone()
	lineY := geom.CenterY + geom.Radius/3
	textSize := 0.12 * geom.Radius

	amCenter := Point{X: geom.CenterX - zoneWidth/4, Y: lineY}
	pmCenter := Point{X: geom.CenterX + zoneWidth/4, Y: lineY}

	activeCenter := amCenter
	if snap.PM {
		activeCenter = pmCenter
	}

	amColor := engine.palette.Inactive
	pmColor := engine.palette.Inactive
	if snap.PM {
		pmColor = engine.palette.Background
	} else {
		amColor = engine.palette.Background
	}

	return []Op{
		RectOp{
			Min:    Point{X: activeCenter.X - zoneWidth/4, Y: lineY - zoneHeight/2},
			Width:  zoneWidth / 2,
			Height: zoneHeight,
			Fill:   engine.palette.Foreground,
		},
		TextOp{Center: amCenter, Text: "AM", Size: textSize, Color: amColor, Bold: true},
		TextOp{Center: pmCenter, Text: "PM", Size: textSize, Color: pmColor, Bold: true},
	}
}

// hands draws the center dots and hand lines, hour first and seconds
// last so the thin red hand stays on top.
func (engine *Engine) hands(snap face.Snapshot) []Op {
	geom := snap.Geometry
	center := Point{X: geom.CenterX, Y: geom.CenterY}

	var ops []Op
	for _, style := range []struct {
		hand      face.Hand
		fill      color.NRGBA
		dotRadius float64
		width     float64
	}{
		{face.HandHour, engine.palette.Hours, 5, 9},
		{face.HandMinutes, engine.palette.Minutes, 4, 6},
		{face.HandSeconds, engine.palette.Seconds, 3, 2},
	} {
		angle := snap.Angles.Of(style.hand)
		length := snap.Sizes.Of(style.hand)

		ops = append(ops,
			CircleOp{
				Center: center,
				Radius: style.dotRadius * geom.LineWidth,
				Fill:   style.fill,
			},
			LineOp{
				From:  center,
				To:    Point{X: geom.CenterX + length*math.Sin(angle), Y: geom.CenterY - length*math.Cos(angle)},
				Width: style.width * geom.LineWidth,
				Color: style.fill,
			},
		)
	}
	return ops
}

// digital draws the time scale bars and the large colored time text.
// The bars grow with the hour of the day, the minute and the second, so
// children can watch time flow even without reading digits.
func (engine *Engine) digital(geom face.Geometry, now time.Time) []Op {
	ops := []Op{RectOp{
		Min:    Point{X: geom.CenterX - 1.1*geom.Radius, Y: geom.CenterY - 0.85*geom.Radius},
		Width:  2.2 * geom.Radius,
		Height: 0.65 * geom.Radius,
		Fill:   engine.palette.Background,
	}}

	barHeight := 0.15 * geom.Radius
	barX := geom.CenterX - geom.Radius
	bars := []struct {
		length float64
		y      float64
		fill   color.NRGBA
	}{
		{2 * geom.Radius / 24 * float64(now.Hour()), geom.CenterY - 0.75*geom.Radius, engine.palette.Hours},
		{2 * geom.Radius / 60 * float64(now.Minute()), geom.CenterY - 0.60*geom.Radius, engine.palette.Minutes},
		{2 * geom.Radius / 60 * float64(now.Second()), geom.CenterY - 0.45*geom.Radius, engine.palette.Seconds},
	}
	for _, bar := range bars {
		if bar.length <= 0 {
			continue
		}
		ops = append(ops, RectOp{
			Min:    Point{X: barX, Y: bar.y},
			Width:  bar.length,
			Height: barHeight,
			Fill:   bar.fill,
		})
	}

	return append(ops, engine.digitalTime(geom, now)...)
}

// digitalTime lays out HH:MM:SS plus the AM/PM tag as separately colored
// monospace segments centered below the scale.
func (engine *Engine) digitalTime(geom face.Geometry, now time.Time) []Op {
	hour := now.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	tag := " AM"
	if now.Hour() >= 12 {
		tag = " PM"
	}

	segments := []struct {
		text string
		fill color.NRGBA
	}{
		{fmt.Sprintf("%02d", hour), engine.palette.Hours},
		{":", engine.palette.Foreground},
		{fmt.Sprintf("%02d", now.Minute()), engine.palette.Minutes},
		{":", engine.palette.Foreground},
		{fmt.Sprintf("%02d", now.Second()), engine.palette.Seconds},
		{tag, engine.palette.Foreground},
	}

	textSize := 0.32 * geom.Radius
	advance := digitAdvance * textSize
	total := 0.0
	for _, segment := range segments {
		total += float64(len(segment.text)) * advance
	}

	var ops []Op
	cursor := geom.CenterX - total/2
	baseline := geom.CenterY + 0.3*geom.Radius
	for _, segment := range segments {
		width := float64(len(segment.text)) * advance
		ops = append(ops, TextOp{
			Center:    Point{X: cursor + width/2, Y: baseline},
			Text:      segment.text,
			Size:      textSize,
			Color:     segment.fill,
			Bold:      true,
			Monospace: true,
		})
		cursor += width
	}
	return ops
}
