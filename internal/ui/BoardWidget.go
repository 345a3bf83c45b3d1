package ui

import (
	"context"
	"fmt"
	"image"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/board"
	"sketchboard/internal/export"
	"sketchboard/internal/gesture"
	"sketchboard/internal/logging"
)

// BoardWidget hosts a board inside a fyne window. It normalizes fyne's
// mouse, scroll and touch events and shows the board's frames.
type BoardWidget struct {
	widget.BaseWidget

	board  *board.Board
	image  *canvas.Image
	status *widget.Label

	// held tracks the mouse buttons down, for drags which carry no button.
	held     desktop.MouseButton
	touching bool

	// modifiers reports the held keyboard modifiers for scroll events.
	modifiers func() fyne.KeyModifier
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

// NewBoardWidget builds a board from cfg and wraps it.
func NewBoardWidget(cfg board.Config) (*BoardWidget, error) {
	b, err := board.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch

	w := &BoardWidget{
		board:     b,
		image:     img,
		status:    widget.NewLabel("Ready"),
		modifiers: currentModifiers,
	}
	w.ExtendBaseWidget(w)
	return w, nil
}

// Board returns the wrapped controller.
func (w *BoardWidget) Board() *board.Board { return w.board }

// StatusBar returns the label that reports save and export results.
func (w *BoardWidget) StatusBar() *widget.Label { return w.status }

// SetStatus updates the status bar.
func (w *BoardWidget) SetStatus(text string) {
	w.status.SetText(text)
}

// Start runs the render loop on fyne's UI goroutine until ctx is done or
// the widget is destroyed.
func (w *BoardWidget) Start(ctx context.Context) error {
	return w.board.Start(ctx, fyne.Do, w.present)
}

// Close stops rendering and ignores further input.
func (w *BoardWidget) Close() {
	w.board.Close()
}

// renderFrame draws a frame now if anything changed.
func (w *BoardWidget) renderFrame() {
	if img, ok := w.board.Frame(); ok {
		w.present(img)
	}
}

func (w *BoardWidget) present(img image.Image) {
	w.image.Image = img
	w.image.Refresh()
}

// SetColor changes the pen color for the next stroke.
func (w *BoardWidget) SetColor(hex string) error {
	t := w.board.Tool()
	t.Color = hex
	return w.board.SetTool(t)
}

// SetWeight changes the pen weight for the next stroke.
func (w *BoardWidget) SetWeight(weight float64) error {
	t := w.board.Tool()
	t.Weight = weight
	return w.board.SetTool(t)
}

// Undo removes the last stroke.
func (w *BoardWidget) Undo() {
	w.board.Undo()
	w.renderFrame()
}

// SavePNG writes the drawn strokes as PNG.
func (w *BoardWidget) SavePNG(out io.Writer) error {
	w.renderFrame()
	if err := w.board.SnapshotPNG(out); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// ExportPDF writes the drawn strokes as a one page PDF.
func (w *BoardWidget) ExportPDF(out io.Writer) error {
	w.renderFrame()
	img, err := w.board.Snapshot()
	if err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return export.WritePDF(out, img)
}

// Mouse input.

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	w.held |= e.Button
	w.board.MouseDown(w.mouseEvent(e.Position, e.Button, w.held, e.Modifier))
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	w.held &^= e.Button
	w.board.MouseUp(w.mouseEvent(e.Position, e.Button, w.held, e.Modifier))
}

func (w *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	w.MouseMoved(e)
}

// MouseMoved carries the buttons held right now, which corrects any press
// or release that happened outside the widget.
func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	w.held = e.Button
	w.board.MouseMove(w.mouseEvent(e.Position, 0, w.held, e.Modifier))
}

func (w *BoardWidget) MouseOut() {
	w.board.MouseLeave()
}

// Dragged is a touch move while a finger is down and a mouse move with the
// tracked buttons otherwise.
func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if w.touching {
		w.board.Touch(touchEvent(gesture.TouchMove, e.Position))
		return
	}
	w.board.MouseMove(w.mouseEvent(e.Position, 0, w.held, 0))
}

func (w *BoardWidget) DragEnd() {}

func (w *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	w.board.Wheel(gesture.WheelEvent{
		Position:  point(e.Position),
		DeltaY:    -float64(e.Scrolled.DY) * wheelLineHeight,
		Modifiers: modifiers(w.modifiers()),
	})
}

// Touch input.

func (w *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	w.touching = true
	w.board.Touch(touchEvent(gesture.TouchStart, e.Position))
}

func (w *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	w.touching = false
	w.board.Touch(touchEvent(gesture.TouchEnd, e.Position))
}

func (w *BoardWidget) TouchCancel(e *mobile.TouchEvent) {
	w.touching = false
	w.board.Touch(touchEvent(gesture.TouchCancel, e.Position))
}

func (w *BoardWidget) mouseEvent(p fyne.Position, changed, down desktop.MouseButton, m fyne.KeyModifier) gesture.MouseEvent {
	return gesture.MouseEvent{
		Position:  point(p),
		Button:    button(changed),
		Held:      held(down),
		Modifiers: modifiers(m),
	}
}

// resize follows the widget's size. Fyne lays out zero sized widgets
// before the window is shown, which the board rejects.
func (w *BoardWidget) resize(size fyne.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if err := w.board.SetPixelScale(float64(w.pixelScale())); err != nil {
		logging.Logger().Warn("ui: pixel scale", "err", err)
	}
	if err := w.board.Resize(float64(size.Width), float64(size.Height)); err != nil {
		logging.Logger().Warn("ui: resize board", "err", err)
		return
	}
	w.renderFrame()
}

// pixelScale is the scale of the canvas showing the widget, 1 until the
// widget is on a canvas.
func (w *BoardWidget) pixelScale() float32 {
	a := fyne.CurrentApp()
	if a == nil {
		return 1
	}
	if c := a.Driver().CanvasForObject(w); c != nil {
		return c.Scale()
	}
	return 1
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: w, objects: []fyne.CanvasObject{w.image}}
}

type boardWidgetRenderer struct {
	board   *BoardWidget
	objects []fyne.CanvasObject
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.image.Resize(size)
	r.board.resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.renderFrame()
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {
	r.board.Close()
}
