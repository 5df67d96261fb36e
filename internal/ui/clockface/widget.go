// Package clockface is the Fyne widget showing the clock. It owns no
// time logic: the keeper decides what the hands show, the render engine
// decides what to draw, and this widget translates draw commands into
// canvas objects and pointer gestures into keeper calls.
package clockface

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"kidclock/internal/core/timekeeper"
	"kidclock/internal/render"
)

const minFaceSize = float32(200)

// Widget paints the clock and feeds pointer gestures to the keeper.
type Widget struct {
	widget.BaseWidget

	keeper  *timekeeper.Keeper
	engine  *render.Engine
	artwork fyne.Resource
}

var _ desktop.Mouseable = (*Widget)(nil)
var _ desktop.Cursorable = (*Widget)(nil)
var _ fyne.Draggable = (*Widget)(nil)

// New creates the clock widget. The artwork resource backs the
// decorative face; it is only rendered when a frame asks for it.
func New(keeper *timekeeper.Keeper, engine *render.Engine, artwork fyne.Resource) *Widget {
	face := &Widget{keeper: keeper, engine: engine, artwork: artwork}
	face.ExtendBaseWidget(face)
	return face
}

// CreateRenderer builds the canvas translation layer.
func (face *Widget) CreateRenderer() fyne.WidgetRenderer {
	artwork := canvas.NewImageFromResource(face.artwork)
	artwork.FillMode = canvas.ImageFillContain
	return &faceRenderer{face: face, artwork: artwork}
}

// MouseDown starts a gesture at the pressed point.
func (face *Widget) MouseDown(event *desktop.MouseEvent) {
	face.keeper.Press(float64(event.Position.X), float64(event.Position.Y))
}

// MouseUp ends a gesture that never moved.
func (face *Widget) MouseUp(event *desktop.MouseEvent) {
	face.keeper.Release()
}

// Dragged rotates a grabbed hand under the pointer.
func (face *Widget) Dragged(event *fyne.DragEvent) {
	face.keeper.Drag(float64(event.Position.X), float64(event.Position.Y))
}

// DragEnd commits the gesture.
func (face *Widget) DragEnd() {
	face.keeper.Release()
}

// Cursor shows a pointer while the hands can be grabbed.
func (face *Widget) Cursor() desktop.Cursor {
	if face.keeper.GrabMode() {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

type faceRenderer struct {
	face    *Widget
	artwork *canvas.Image
	objects []fyne.CanvasObject
}

func (renderer *faceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minFaceSize, minFaceSize)
}

// Layout tells the keeper about the new face size; the redraw event it
// emits in response triggers the repaint.
func (renderer *faceRenderer) Layout(size fyne.Size) {
	renderer.face.keeper.Resize(float64(size.Width), float64(size.Height))
}

// Refresh rebuilds the canvas objects from a fresh frame.
func (renderer *faceRenderer) Refresh() {
	snapshot := renderer.face.keeper.Snapshot()
	ops, err := renderer.face.engine.Frame(snapshot.Mode, snapshot.Face, snapshot.Time)
	if err != nil {
		log.Panicf("clockface: %v", err)
	}

	objects := make([]fyne.CanvasObject, 0, len(ops))
	for _, op := range ops {
		objects = append(objects, renderer.canvasObject(op))
	}
	renderer.objects = objects
	canvas.Refresh(renderer.face)
}

func (renderer *faceRenderer) canvasObject(op render.Op) fyne.CanvasObject {
	switch op := op.(type) {
	case render.LineOp:
		line := canvas.NewLine(op.Color)
		line.StrokeWidth = float32(op.Width)
		line.Position1 = fyne.NewPos(float32(op.From.X), float32(op.From.Y))
		line.Position2 = fyne.NewPos(float32(op.To.X), float32(op.To.Y))
		return line
	case render.CircleOp:
		circle := canvas.NewCircle(op.Fill)
		circle.StrokeColor = op.Stroke
		circle.StrokeWidth = float32(op.StrokeWidth)
		circle.Position1 = fyne.NewPos(float32(op.Center.X-op.Radius), float32(op.Center.Y-op.Radius))
		circle.Position2 = fyne.NewPos(float32(op.Center.X+op.Radius), float32(op.Center.Y+op.Radius))
		return circle
	case render.RectOp:
		rect := canvas.NewRectangle(op.Fill)
		rect.Move(fyne.NewPos(float32(op.Min.X), float32(op.Min.Y)))
		rect.Resize(fyne.NewSize(float32(op.Width), float32(op.Height)))
		return rect
	case render.TextOp:
		text := canvas.NewText(op.Text, op.Color)
		text.TextSize = float32(op.Size)
		text.TextStyle = fyne.TextStyle{Bold: op.Bold, Monospace: op.Monospace}
		measured := fyne.MeasureText(op.Text, text.TextSize, text.TextStyle)
		text.Move(fyne.NewPos(
			float32(op.Center.X)-measured.Width/2,
			float32(op.Center.Y)-measured.Height/2))
		text.Resize(measured)
		return text
	case render.ImageOp:
		renderer.artwork.Move(fyne.NewPos(float32(op.Min.X), float32(op.Min.Y)))
		renderer.artwork.Resize(fyne.NewSize(float32(op.Width), float32(op.Height)))
		return renderer.artwork
	default:
		log.Panicf("clockface: unknown draw op %T", op)
		return nil
	}
}

func (renderer *faceRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *faceRenderer) Destroy() {}
