package gesture

import (
	"slices"
	"testing"

	"sketchboard/internal/sketch"
)

func left(x, y float64) MouseEvent {
	return MouseEvent{Position: sketch.Pt(x, y), Button: ButtonLeft, Held: Buttons{Left: true}}
}

func TestMouseDrawSequence(t *testing.T) {
	rec := &recorder{}
	m := NewMouse(rec)

	m.Down(left(0, 0))
	m.Move(left(5, 5))
	m.Move(left(10, 10))
	up := left(10, 10)
	up.Held = Buttons{}
	m.Up(up)

	want := []string{"start 0,0", "draw 0,0-5,5", "draw 5,5-10,10", "finish 10,10"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
	if m.Drawing() {
		t.Error("still drawing after release")
	}
}

func TestMouseMoveWithoutButtonDoesNothing(t *testing.T) {
	rec := &recorder{}
	m := NewMouse(rec)
	m.Move(MouseEvent{Position: sketch.Pt(1, 1)})
	m.Move(MouseEvent{Position: sketch.Pt(2, 2)})
	if got := rec.take(); len(got) != 0 {
		t.Errorf("events = %q, want none", got)
	}
}

func TestMouseLostReleaseEndsStroke(t *testing.T) {
	rec := &recorder{}
	m := NewMouse(rec)

	m.Down(left(0, 0))
	m.Move(left(4, 0))
	// The button was released outside the canvas: the next move reports
	// no held buttons.
	m.Move(MouseEvent{Position: sketch.Pt(50, 50)})
	m.Move(MouseEvent{Position: sketch.Pt(60, 60)})

	want := []string{"start 0,0", "draw 0,0-4,0", "finish 4,0"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
	if m.Drawing() {
		t.Error("drawing flag was not cleared")
	}
}

func TestMouseDownWhileDrawingRestarts(t *testing.T) {
	rec := &recorder{}
	m := NewMouse(rec)
	m.Down(left(0, 0))
	m.Move(left(2, 2))
	m.Down(left(8, 8))

	want := []string{"start 0,0", "draw 0,0-2,2", "finish 2,2", "start 8,8"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestMousePan(t *testing.T) {
	rec := &recorder{}
	m := NewMouse(rec)

	held := Buttons{Middle: true}
	if !m.Down(MouseEvent{Position: sketch.Pt(10, 10), Button: ButtonMiddle, Held: held}) {
		t.Error("middle press should be consumed")
	}
	m.Move(MouseEvent{Position: sketch.Pt(30, 10), Held: held})
	m.Up(MouseEvent{Position: sketch.Pt(30, 10), Button: ButtonMiddle})
	m.Move(MouseEvent{Position: sketch.Pt(40, 10)})

	want := []string{"pan 10,10-30,10"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestMouseDrawAndPanTogether(t *testing.T) {
	rec := &recorder{}
	m := NewMouse(rec)
	both := Buttons{Left: true, Middle: true}

	m.Down(MouseEvent{Position: sketch.Pt(0, 0), Button: ButtonLeft, Held: Buttons{Left: true}})
	m.Down(MouseEvent{Position: sketch.Pt(0, 0), Button: ButtonMiddle, Held: both})
	m.Move(MouseEvent{Position: sketch.Pt(1, 0), Held: both})
	// Middle released elsewhere; left still held.
	m.Move(MouseEvent{Position: sketch.Pt(2, 0), Held: Buttons{Left: true}})

	want := []string{"start 0,0", "draw 0,0-1,0", "pan 0,0-1,0", "draw 1,0-2,0"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
	if m.Panning() {
		t.Error("pan flag was not cleared")
	}
}

func TestMouseLeaveBreaksLine(t *testing.T) {
	rec := &recorder{}
	m := NewMouse(rec)
	m.Down(left(0, 0))
	m.Leave()
	m.Move(left(100, 100))
	m.Move(left(101, 100))

	want := []string{"start 0,0", "draw 100,100-101,100"}
	if got := rec.take(); !slices.Equal(got, want) {
		t.Errorf("events = %q, want %q", got, want)
	}
}

func TestMouseWheel(t *testing.T) {
	tests := []struct {
		name     string
		ev       WheelEvent
		consumed bool
		want     []string
	}{
		{"plain scroll", WheelEvent{DeltaY: 100}, false, nil},
		{"ctrl scroll down", WheelEvent{DeltaY: 100, Modifiers: ModControl}, true, []string{"zoom 0.9"}},
		{"ctrl scroll up", WheelEvent{DeltaY: -500, Modifiers: ModControl | ModShift}, true, []string{"zoom 1.5"}},
		{"ctrl huge delta", WheelEvent{DeltaY: 5000, Modifiers: ModControl}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			m := NewMouse(rec)
			if got := m.Wheel(tt.ev); got != tt.consumed {
				t.Errorf("Wheel consumed = %v, want %v", got, tt.consumed)
			}
			if got := rec.take(); !slices.Equal(got, tt.want) {
				t.Errorf("events = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFuncsSkipsNilCallbacks(t *testing.T) {
	var zoom float64
	m := NewMouse(Funcs{OnZoom: func(f float64) { zoom = f }})
	m.Down(left(0, 0))
	m.Move(left(1, 1))
	m.Wheel(WheelEvent{DeltaY: -1000, Modifiers: ModControl})
	if zoom != 2 {
		t.Errorf("zoom = %v, want 2", zoom)
	}
}
