package gesture

import (
	"fmt"

	"sketchboard/internal/sketch"
)

// recorder logs every gesture as a short string.
type recorder struct {
	events []string
}

func (r *recorder) StartDrawing(p sketch.Point) {
	r.events = append(r.events, fmt.Sprintf("start %v,%v", p.X, p.Y))
}

func (r *recorder) Draw(from, to sketch.Point) {
	r.events = append(r.events, fmt.Sprintf("draw %v,%v-%v,%v", from.X, from.Y, to.X, to.Y))
}

func (r *recorder) FinishDrawing(p sketch.Point) {
	r.events = append(r.events, fmt.Sprintf("finish %v,%v", p.X, p.Y))
}

func (r *recorder) Pan(from, to sketch.Point) {
	r.events = append(r.events, fmt.Sprintf("pan %v,%v-%v,%v", from.X, from.Y, to.X, to.Y))
}

func (r *recorder) Zoom(factor float64) {
	r.events = append(r.events, fmt.Sprintf("zoom %v", factor))
}

func (r *recorder) take() []string {
	ev := r.events
	r.events = nil
	return ev
}
