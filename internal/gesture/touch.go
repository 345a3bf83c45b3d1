package gesture

import (
	"sketchboard/internal/logging"
	"sketchboard/internal/sketch"
)

// TouchPhase is the kind of a touch event.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "start"
	case TouchMove:
		return "move"
	case TouchEnd:
		return "end"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Touch is one finger on the surface.
type Touch struct {
	ID       int
	Position sketch.Point
}

// TouchEvent is a normalized touch event. Changed holds the touches that
// started, moved or ended; Touches holds every touch still on the surface
// after the event.
type TouchEvent struct {
	Phase   TouchPhase
	Changed []Touch
	Touches []Touch
}

// TouchRecognizer maps one finger to drawing and two fingers to a
// simultaneous pan and pinch zoom. Its state is keyed by the number of
// active touches.
type TouchRecognizer struct {
	h       Handler
	active  []Touch
	drawing bool
	last    sketch.Point
}

// NewTouch returns a recognizer that reports to h.
func NewTouch(h Handler) *TouchRecognizer {
	return &TouchRecognizer{h: h}
}

// Drawing reports whether a one-finger draw is in progress.
func (r *TouchRecognizer) Drawing() bool { return r.drawing }

// Active returns the number of touches the recognizer is tracking.
func (r *TouchRecognizer) Active() int { return len(r.active) }

// Handle processes ev. It always returns true: touches on the drawing
// surface must never scroll or zoom the host page.
func (r *TouchRecognizer) Handle(ev TouchEvent) bool {
	switch ev.Phase {
	case TouchStart:
		r.start(ev)
	case TouchMove:
		r.move(ev)
	case TouchEnd, TouchCancel:
		r.end(ev)
	}
	return true
}

func (r *TouchRecognizer) start(ev TouchEvent) {
	prev := len(r.active)
	r.active = cloneTouches(ev.Touches)

	switch {
	case prev == 0 && len(r.active) == 1:
		r.drawing = true
		r.last = r.active[0].Position
		r.h.StartDrawing(r.last)
	case r.drawing && len(r.active) >= 2:
		r.drawing = false
		r.h.FinishDrawing(r.last)
	}
}

func (r *TouchRecognizer) move(ev TouchEvent) {
	if !sameTouchSet(r.active, ev.Touches) {
		logging.Logger().Warn("touch frame skipped",
			"tracked", len(r.active), "reported", len(ev.Touches))
		return
	}

	switch len(ev.Touches) {
	case 1:
		cur := ev.Touches[0].Position
		if r.drawing {
			r.h.Draw(r.last, cur)
		}
		r.last = cur
	case 2:
		p0, _ := positionOf(r.active, ev.Touches[0].ID)
		p1, _ := positionOf(r.active, ev.Touches[1].ID)
		c0, c1 := ev.Touches[0].Position, ev.Touches[1].Position

		if d := p0.Distance(p1); d > 0 {
			r.h.Zoom(c0.Distance(c1) / d)
		}
		r.h.Pan(p0.Midpoint(p1), c0.Midpoint(c1))
	}
	r.active = cloneTouches(ev.Touches)
}

func (r *TouchRecognizer) end(ev TouchEvent) {
	r.active = cloneTouches(ev.Touches)
	if !r.drawing || len(r.active) > 0 {
		return
	}
	p := r.last
	if len(ev.Changed) > 0 {
		p = ev.Changed[0].Position
	}
	r.drawing = false
	r.h.FinishDrawing(p)
}

// Reset drops all touch state without emitting events.
func (r *TouchRecognizer) Reset() {
	*r = TouchRecognizer{h: r.h}
}

func cloneTouches(ts []Touch) []Touch {
	return append([]Touch(nil), ts...)
}

func positionOf(ts []Touch, id int) (sketch.Point, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t.Position, true
		}
	}
	return sketch.Point{}, false
}

func sameTouchSet(a, b []Touch) bool {
	if len(a) != len(b) {
		return false
	}
	for _, t := range b {
		if _, ok := positionOf(a, t.ID); !ok {
			return false
		}
	}
	return true
}
