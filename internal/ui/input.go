package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"sketchboard/internal/gesture"
	"sketchboard/internal/sketch"
)

// wheelLineHeight scales fyne scroll deltas, which count roughly ten units
// per notch, up to the hundred per notch the wheel zoom expects.
const wheelLineHeight = 10

func point(p fyne.Position) sketch.Point {
	return sketch.Pt(float64(p.X), float64(p.Y))
}

// button maps the fyne button that changed. The secondary and tertiary
// buttons both pan.
func button(b desktop.MouseButton) gesture.Button {
	switch {
	case b&desktop.MouseButtonPrimary != 0:
		return gesture.ButtonLeft
	case b&(desktop.MouseButtonSecondary|desktop.MouseButtonTertiary) != 0:
		return gesture.ButtonMiddle
	default:
		return gesture.ButtonNone
	}
}

func held(b desktop.MouseButton) gesture.Buttons {
	return gesture.Buttons{
		Left:   b&desktop.MouseButtonPrimary != 0,
		Middle: b&(desktop.MouseButtonSecondary|desktop.MouseButtonTertiary) != 0,
	}
}

// modifiers maps fyne modifiers. Super counts as control so that cmd+wheel
// zooms on macOS.
func modifiers(m fyne.KeyModifier) gesture.Modifiers {
	var out gesture.Modifiers
	if m&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0 {
		out |= gesture.ModControl
	}
	if m&fyne.KeyModifierShift != 0 {
		out |= gesture.ModShift
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= gesture.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= gesture.ModSuper
	}
	return out
}

// currentModifiers asks the desktop driver which modifiers are held. Scroll
// events do not carry them.
func currentModifiers() fyne.KeyModifier {
	a := fyne.CurrentApp()
	if a == nil {
		return 0
	}
	if d, ok := a.Driver().(desktop.Driver); ok {
		return d.CurrentKeyModifiers()
	}
	return 0
}

// touchEvent builds a single finger event. fyne reports one touch at a
// time, so the finger always has id 0.
func touchEvent(phase gesture.TouchPhase, p fyne.Position) gesture.TouchEvent {
	t := gesture.Touch{ID: 0, Position: point(p)}
	ev := gesture.TouchEvent{Phase: phase, Changed: []gesture.Touch{t}}
	if phase == gesture.TouchStart || phase == gesture.TouchMove {
		ev.Touches = []gesture.Touch{t}
	}
	return ev
}
