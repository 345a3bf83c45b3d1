package gesture

import "sketchboard/internal/sketch"

// Button is the button whose state changed in a Down or Up event.
type Button int

const (
	ButtonNone Button = iota
	// ButtonLeft draws.
	ButtonLeft
	// ButtonMiddle pans. Hosts map both the middle and the secondary
	// button onto it.
	ButtonMiddle
)

// Buttons is the set of buttons currently held down.
type Buttons struct {
	Left, Middle bool
}

// Modifiers is a bitmask of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModControl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

// MouseEvent is a normalized pointer event.
type MouseEvent struct {
	Position  sketch.Point
	Button    Button
	Held      Buttons
	Modifiers Modifiers
}

// WheelEvent is a normalized scroll event. DeltaY follows the browser
// convention: positive scrolls down.
type WheelEvent struct {
	Position  sketch.Point
	DeltaY    float64
	Modifiers Modifiers
}

// wheelZoomDivisor converts wheel deltas into a zoom factor 1 - dy/divisor.
const wheelZoomDivisor = 1000

// Mouse recognizes draw and pan gestures from a single pointer. Drawing and
// panning are tracked separately since a device may hold both buttons.
type Mouse struct {
	h       Handler
	drawing bool
	panning bool
	last    sketch.Point
	hasLast bool
}

// NewMouse returns a recognizer that reports to h.
func NewMouse(h Handler) *Mouse {
	return &Mouse{h: h}
}

// Drawing reports whether a draw gesture is in progress.
func (m *Mouse) Drawing() bool { return m.drawing }

// Panning reports whether a pan gesture is in progress.
func (m *Mouse) Panning() bool { return m.panning }

// Down handles a button press. It returns true when the host should
// suppress the default action (middle-button autoscroll).
func (m *Mouse) Down(ev MouseEvent) bool {
	switch ev.Button {
	case ButtonLeft:
		if m.drawing {
			// The release of the previous stroke never arrived.
			m.h.FinishDrawing(m.lastOr(ev.Position))
		}
		m.drawing = true
		m.h.StartDrawing(ev.Position)
	case ButtonMiddle:
		m.panning = true
	default:
		return false
	}
	m.last, m.hasLast = ev.Position, true
	return ev.Button == ButtonMiddle
}

// Up handles a button release.
func (m *Mouse) Up(ev MouseEvent) {
	switch ev.Button {
	case ButtonLeft:
		if m.drawing {
			m.drawing = false
			m.h.FinishDrawing(ev.Position)
		}
	case ButtonMiddle:
		m.panning = false
	}
	m.last, m.hasLast = ev.Position, true
}

// Move handles pointer motion. The held-button set is checked first: a
// button released outside the canvas ends its gesture here, so a lost
// release never leaves the recognizer stuck in a gesture.
func (m *Mouse) Move(ev MouseEvent) {
	if m.drawing && !ev.Held.Left {
		m.drawing = false
		m.h.FinishDrawing(m.lastOr(ev.Position))
	}
	if m.panning && !ev.Held.Middle {
		m.panning = false
	}

	if m.hasLast {
		if m.drawing {
			m.h.Draw(m.last, ev.Position)
		}
		if m.panning {
			m.h.Pan(m.last, ev.Position)
		}
	}
	m.last, m.hasLast = ev.Position, true
}

// Leave forgets the last position so re-entering the canvas does not
// draw a line from where the pointer left. Gestures stay active; the next
// Move decides whether their buttons are still held.
func (m *Mouse) Leave() {
	m.hasLast = false
}

// Wheel turns control+scroll into a zoom. It returns true when the event
// was consumed and the host must suppress page scrolling and zooming.
func (m *Mouse) Wheel(ev WheelEvent) bool {
	if ev.Modifiers&ModControl == 0 {
		return false
	}
	if factor := 1 - ev.DeltaY/wheelZoomDivisor; factor > 0 {
		m.h.Zoom(factor)
	}
	return true
}

// Reset drops all gesture state without emitting events.
func (m *Mouse) Reset() {
	*m = Mouse{h: m.h}
}

func (m *Mouse) lastOr(p sketch.Point) sketch.Point {
	if m.hasLast {
		return m.last
	}
	return p
}
