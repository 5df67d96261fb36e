// Package render turns face state into primitive draw commands. It never
// touches a display; the widget layer replays the commands onto whatever
// canvas it owns, which keeps every face testable headless.
package render

import "image/color"

// Point is a position in widget coordinates.
type Point struct {
	X float64
	Y float64
}

// Op is a single primitive draw command.
type Op interface {
	op()
}

// LineOp draws a stroked line segment with round caps.
type LineOp struct {
	From  Point
	To    Point
	Width float64
	Color color.NRGBA
}

// CircleOp draws a filled and optionally stroked disk.
type CircleOp struct {
	Center      Point
	Radius      float64
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
}

// RectOp draws a filled axis-aligned rectangle.
type RectOp struct {
	Min    Point
	Width  float64
	Height float64
	Fill   color.NRGBA
}

// TextOp draws text centered on a point.
type TextOp struct {
	Center    Point
	Text      string
	Size      float64
	Color     color.NRGBA
	Bold      bool
	Monospace bool
}

// ImageOp places the decorative background artwork.
type ImageOp struct {
	Min    Point
	Width  float64
	Height float64
}

func (LineOp) op()   {}
func (CircleOp) op() {}
func (RectOp) op()   {}
func (TextOp) op()   {}
func (ImageOp) op()  {}
