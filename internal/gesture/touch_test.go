package gesture

import (
	"slices"
	"testing"

	"sketchboard/internal/sketch"
)

func tp(id int, x, y float64) Touch {
	return Touch{ID: id, Position: sketch.Pt(x, y)}
}

func touches(ts ...Touch) []Touch { return ts }

func TestTouchSingleFingerDraws(t *testing.T) {
	rec := &recorder{}
	r := NewTouch(rec)

	r.Handle(TouchEvent{Phase: TouchStart, Changed: touches(tp(1, 0, 0)), Touches: touches(tp(1, 0, 0))})
	r.Handle(TouchEvent{Phase: TouchMove, Changed: touches(tp(1, 3, 4)), Touches: touches(tp(1, 3, 4))})
	r.Handle(TouchEvent{Phase: TouchMove, Changed: touches(tp(1, 6, 8)), Touches: touches(tp(1, 6, 8))})
	r.Handle(TouchEvent{Phase: TouchEnd, Changed: touches(tp(1, 6, 8))})

	want := []string{"start 0,0", "draw 0,0-3,4", "draw 3,4-6,8", "finish 6,8"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
	if r.Drawing() || r.Active() != 0 {
		t.Errorf("state after end: drawing=%v active=%d", r.Drawing(), r.Active())
	}
}

func TestTouchTapMakesStartAndFinish(t *testing.T) {
	rec := &recorder{}
	r := NewTouch(rec)
	r.Handle(TouchEvent{Phase: TouchStart, Changed: touches(tp(7, 5, 5)), Touches: touches(tp(7, 5, 5))})
	r.Handle(TouchEvent{Phase: TouchEnd, Changed: touches(tp(7, 5, 5))})

	want := []string{"start 5,5", "finish 5,5"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestTouchPinchAndPan(t *testing.T) {
	rec := &recorder{}
	r := NewTouch(rec)

	r.Handle(TouchEvent{Phase: TouchStart, Changed: touches(tp(1, 100, 100)), Touches: touches(tp(1, 100, 100))})
	r.Handle(TouchEvent{Phase: TouchStart, Changed: touches(tp(2, 120, 100)), Touches: touches(tp(1, 100, 100), tp(2, 120, 100))})
	if got := rec.take(); !slices.Equal(got, []string{"start 100,100", "finish 100,100"}) {
		t.Fatalf("second finger events = %q", got)
	}

	// Distance goes 20 -> 40 and the midpoint moves from (110,100) to (130,100).
	r.Handle(TouchEvent{
		Phase:   TouchMove,
		Changed: touches(tp(1, 110, 100), tp(2, 150, 100)),
		Touches: touches(tp(1, 110, 100), tp(2, 150, 100)),
	})
	want := []string{"zoom 2", "pan 110,100-130,100"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestTouchPinchMatchesByID(t *testing.T) {
	rec := &recorder{}
	r := NewTouch(rec)
	r.Handle(TouchEvent{Phase: TouchStart, Touches: touches(tp(1, 0, 0), tp(2, 10, 0))})
	// Same touches reported in the opposite order.
	r.Handle(TouchEvent{Phase: TouchMove, Touches: touches(tp(2, 20, 0), tp(1, 0, 0))})

	want := []string{"zoom 2", "pan 5,0-10,0"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestTouchCountMismatchSkipsFrame(t *testing.T) {
	rec := &recorder{}
	r := NewTouch(rec)
	r.Handle(TouchEvent{Phase: TouchStart, Touches: touches(tp(1, 0, 0))})
	rec.take()

	// A second touch appears without a start event.
	r.Handle(TouchEvent{Phase: TouchMove, Touches: touches(tp(1, 5, 0), tp(2, 50, 0))})
	if got := rec.take(); len(got) != 0 {
		t.Fatalf("mismatched frame emitted %q", got)
	}
	// An unknown id with the right count is also inconsistent.
	r.Handle(TouchEvent{Phase: TouchMove, Touches: touches(tp(9, 5, 0))})
	if got := rec.take(); len(got) != 0 {
		t.Fatalf("unknown id emitted %q", got)
	}

	// The next consistent frame continues from the last accepted point.
	r.Handle(TouchEvent{Phase: TouchMove, Touches: touches(tp(1, 8, 0))})
	want := []string{"draw 0,0-8,0"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestTouchTwoFingersThenLift(t *testing.T) {
	rec := &recorder{}
	r := NewTouch(rec)
	r.Handle(TouchEvent{Phase: TouchStart, Touches: touches(tp(1, 0, 0), tp(2, 10, 0))})
	r.Handle(TouchEvent{Phase: TouchEnd, Changed: touches(tp(2, 10, 0)), Touches: touches(tp(1, 0, 0))})
	r.Handle(TouchEvent{Phase: TouchMove, Touches: touches(tp(1, 3, 0))})
	r.Handle(TouchEvent{Phase: TouchCancel, Changed: touches(tp(1, 3, 0))})

	if got := rec.take(); len(got) != 0 {
		t.Errorf("events = %q, want none after a two-finger gesture", got)
	}
	if r.Active() != 0 {
		t.Errorf("active = %d, want 0", r.Active())
	}
}

func TestTouchAlwaysConsumed(t *testing.T) {
	r := NewTouch(&recorder{})
	for _, ph := range []TouchPhase{TouchStart, TouchMove, TouchEnd, TouchCancel} {
		if !r.Handle(TouchEvent{Phase: ph}) {
			t.Errorf("%v not consumed", ph)
		}
	}
}
