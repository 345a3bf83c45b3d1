// Package board is the sketch surface controller. It owns the sketch, the
// viewport and the renderer, turns recognized gestures into model and
// viewport changes, and renders a frame whenever something changed.
//
// A Board is driven from a single goroutine: input events and frames must
// be delivered on the same queue (the host's UI goroutine). The render
// loop started by Start only dispatches onto that queue.
package board

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"sketchboard/internal/gesture"
	"sketchboard/internal/logging"
	"sketchboard/internal/render"
	"sketchboard/internal/sketch"
	"sketchboard/internal/viewport"
)

// Board is the controller of one sketch surface.
type Board struct {
	cfg    Config
	limits viewport.Limits
	canvas viewport.Size
	tool   sketch.Tool

	sketch *sketch.Sketch
	view   viewport.Viewport

	renderer *render.Renderer
	mouse    *gesture.Mouse
	touch    *gesture.TouchRecognizer
	loop     *render.Loop

	// stroking is set between StartDrawing and FinishDrawing; pen is the
	// world position the open stroke ends at.
	stroking bool
	pen      sketch.Point
	dirty    bool
	closed   bool
}

var _ gesture.Handler = (*Board)(nil)

// ErrNoDispatch is returned by Start without a dispatcher. Frames must run
// on the goroutine that delivers input.
var ErrNoDispatch = errors.New("board: render loop needs a dispatcher")

// New builds a board from the default config with opts applied.
func New(opts ...Option) (*Board, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and builds a board from it.
func NewWithConfig(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		cfg:      cfg,
		limits:   cfg.limits(),
		canvas:   cfg.canvas(),
		tool:     cfg.tool(),
		sketch:   sketch.New(),
		renderer: render.New(cfg.background()),
		dirty:    true,
	}
	b.view = viewport.New(b.canvas).Clamp(b.canvas, b.limits)
	b.mouse = gesture.NewMouse(b)
	b.touch = gesture.NewTouch(b)
	return b, nil
}

// Sketch returns the current sketch. It is never modified; a change
// produces a different pointer.
func (b *Board) Sketch() *sketch.Sketch { return b.sketch }

// Viewport returns the current viewport.
func (b *Board) Viewport() viewport.Viewport { return b.view }

// Canvas returns the canvas size in pixels.
func (b *Board) Canvas() viewport.Size { return b.canvas }

// Tool returns the pen used for the next stroke.
func (b *Board) Tool() sketch.Tool { return b.tool }

// Config returns the validated configuration.
func (b *Board) Config() Config { return b.cfg }

// Dirty reports whether the next Frame will render.
func (b *Board) Dirty() bool { return b.dirty }

// SetTool changes the pen for strokes started from now on.
func (b *Board) SetTool(t sketch.Tool) error {
	t, err := t.Validate()
	if err != nil {
		return err
	}
	b.tool = t
	return nil
}

// Resize changes the canvas size. The viewport is reset to show the whole
// new canvas and the accumulation layer is rebuilt on the next frame.
func (b *Board) Resize(w, h float64) error {
	if !(w > 0) || !(h > 0) {
		return fmt.Errorf("%w: canvas size %vx%v", ErrInvalidConfig, w, h)
	}
	size := viewport.Size{Width: w, Height: h}
	if size == b.canvas {
		return nil
	}
	b.canvas = size
	b.view = viewport.New(size).Clamp(size, b.limits)
	b.dirty = true
	return nil
}

// SetPixelScale sets the device pixels per canvas unit of rendered frames
// and snapshots. Input positions stay in canvas units.
func (b *Board) SetPixelScale(scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return fmt.Errorf("%w: pixel scale %v", ErrInvalidConfig, scale)
	}
	if scale != b.renderer.PixelRatio() {
		b.renderer.SetPixelRatio(scale)
		b.dirty = true
	}
	return nil
}

// Undo removes the last stroke. A stroke still being drawn is removed and
// the rest of its gesture is ignored.
func (b *Board) Undo() {
	b.stroking = false
	b.setSketch(b.sketch.Undo())
}

// SnapshotImage returns the drawn strokes as a PNG data URL. It fails with
// render.ErrNoSurface before the first frame.
func (b *Board) SnapshotImage() (string, error) {
	return b.renderer.DataURL()
}

// SnapshotPNG writes the drawn strokes to w as PNG.
func (b *Board) SnapshotPNG(w io.Writer) error {
	return b.renderer.EncodePNG(w)
}

// Snapshot returns a copy of the drawn strokes.
func (b *Board) Snapshot() (*image.RGBA, error) {
	return b.renderer.Snapshot()
}

// Frame renders if anything changed since the previous frame. The image is
// reused by the next render.
func (b *Board) Frame() (image.Image, bool) {
	if b.closed || !b.dirty {
		return nil, false
	}
	b.dirty = false
	return b.renderer.Render(b.sketch, b.view, b.canvas), true
}

// Start runs the render loop. Each tick is handed to dispatch, which must
// run it on the goroutine that delivers input; present receives every
// rendered frame. Starting a closed or running board does nothing.
func (b *Board) Start(ctx context.Context, dispatch func(func()), present func(image.Image)) error {
	if dispatch == nil {
		return ErrNoDispatch
	}
	if b.closed || b.loop != nil {
		return nil
	}
	interval := time.Second / time.Duration(b.cfg.FrameRate)
	b.loop = render.NewLoop(interval, dispatch, func() {
		if img, ok := b.Frame(); ok && present != nil {
			present(img)
		}
	})
	b.loop.Start(ctx)
	return nil
}

// Close stops the render loop and detaches input. It is safe to call
// more than once and without Start.
func (b *Board) Close() {
	if b.loop != nil {
		b.loop.Stop()
	}
	b.closed = true
	b.mouse.Reset()
	b.touch.Reset()
	b.stroking = false
}

// Input entry points. They do nothing once the board is closed.

// MouseDown forwards a button press. It returns true when the host should
// suppress the default action.
func (b *Board) MouseDown(ev gesture.MouseEvent) bool {
	if b.closed {
		return false
	}
	return b.mouse.Down(ev)
}

// MouseUp forwards a button release.
func (b *Board) MouseUp(ev gesture.MouseEvent) {
	if !b.closed {
		b.mouse.Up(ev)
	}
}

// MouseMove forwards pointer motion.
func (b *Board) MouseMove(ev gesture.MouseEvent) {
	if !b.closed {
		b.mouse.Move(ev)
	}
}

// MouseLeave tells the board the pointer left the canvas.
func (b *Board) MouseLeave() {
	if !b.closed {
		b.mouse.Leave()
	}
}

// Wheel forwards a scroll event. It returns true when the host must
// suppress page scrolling.
func (b *Board) Wheel(ev gesture.WheelEvent) bool {
	if b.closed {
		return false
	}
	return b.mouse.Wheel(ev)
}

// Touch forwards a touch event. It returns true when the host must
// suppress default touch gestures.
func (b *Board) Touch(ev gesture.TouchEvent) bool {
	if b.closed {
		return false
	}
	return b.touch.Handle(ev)
}

// Gesture handlers. Positions arrive in canvas pixels and are stored in
// world coordinates.

// StartDrawing begins a stroke with the current tool.
func (b *Board) StartDrawing(p sketch.Point) {
	b.stroking = true
	b.pen = b.toWorld(p)
	b.setSketch(b.sketch.StartStroke(b.tool))
}

// Draw appends a segment to the stroke being drawn. The segment starts
// where the previous one ended, even if the viewport moved in between.
func (b *Board) Draw(_, to sketch.Point) {
	if !b.stroking {
		return
	}
	end := b.toWorld(to)
	next, err := b.sketch.AppendSegment(b.pen, end)
	if err != nil {
		logging.Logger().Error("board: draw without stroke", "err", err)
		return
	}
	b.pen = end
	b.setSketch(next)
}

// FinishDrawing ends the stroke, turning a stroke without segments into a dot.
func (b *Board) FinishDrawing(p sketch.Point) {
	if !b.stroking {
		return
	}
	b.stroking = false
	next, err := b.sketch.FinalizeStroke(b.toWorld(p))
	if err != nil {
		logging.Logger().Error("board: finish without stroke", "err", err)
		return
	}
	b.setSketch(next)
}

// Pan moves the viewport by a pointer delta.
func (b *Board) Pan(from, to sketch.Point) {
	b.setView(b.view.Pan(from, to, b.canvas, b.limits))
}

// Zoom scales the viewport around its center.
func (b *Board) Zoom(factor float64) {
	b.setView(b.view.ZoomBy(factor, b.canvas, b.limits))
}

func (b *Board) toWorld(p sketch.Point) sketch.Point {
	return b.view.ToWorld(p, b.canvas)
}

func (b *Board) setSketch(s *sketch.Sketch) {
	if s != b.sketch {
		b.sketch = s
		b.dirty = true
	}
}

func (b *Board) setView(v viewport.Viewport) {
	if v != b.view {
		b.view = v
		b.dirty = true
	}
}
