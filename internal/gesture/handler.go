// Package gesture turns raw mouse and touch input into a small set of
// semantic events: start drawing, draw, finish drawing, pan and zoom.
//
// All positions passed in and out are device-local canvas pixels. The
// recognizers keep state between events and are not safe for concurrent
// use; feed them from the host's UI goroutine.
package gesture

import "sketchboard/internal/sketch"

// Handler receives recognized gestures.
type Handler interface {
	StartDrawing(p sketch.Point)
	Draw(from, to sketch.Point)
	FinishDrawing(p sketch.Point)
	Pan(from, to sketch.Point)
	Zoom(factor float64)
}

// Funcs adapts optional callbacks to a Handler. Nil fields are skipped.
type Funcs struct {
	OnStartDrawing  func(p sketch.Point)
	OnDraw          func(from, to sketch.Point)
	OnFinishDrawing func(p sketch.Point)
	OnPan           func(from, to sketch.Point)
	OnZoom          func(factor float64)
}

var _ Handler = Funcs{}

func (f Funcs) StartDrawing(p sketch.Point) {
	if f.OnStartDrawing != nil {
		f.OnStartDrawing(p)
	}
}

func (f Funcs) Draw(from, to sketch.Point) {
	if f.OnDraw != nil {
		f.OnDraw(from, to)
	}
}

func (f Funcs) FinishDrawing(p sketch.Point) {
	if f.OnFinishDrawing != nil {
		f.OnFinishDrawing(p)
	}
}

func (f Funcs) Pan(from, to sketch.Point) {
	if f.OnPan != nil {
		f.OnPan(from, to)
	}
}

func (f Funcs) Zoom(factor float64) {
	if f.OnZoom != nil {
		f.OnZoom(factor)
	}
}
