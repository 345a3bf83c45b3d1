// Package sketch is the vector model of a freehand drawing: strokes made of
// straight segments, stored in world coordinates.
//
// A *Sketch is never modified after it is built. Every operation returns a
// new *Sketch (or the receiver itself when nothing changed), so callers can
// detect changes by comparing pointers.
package sketch

import (
	"errors"
	"slices"
)

// ErrNoActiveStroke is returned when a segment is added to, or a stroke is
// finalized on, a sketch that has no strokes. It means StartStroke was not
// called first, which is a wiring bug in the caller.
var ErrNoActiveStroke = errors.New("sketch: no active stroke")

// Segment is a straight line between two world points.
type Segment struct {
	From Point
	To   Point
	ID   SegmentID
}

// Stroke is one continuous gesture. Weight and Color are fixed when the
// stroke is started.
type Stroke struct {
	Segments []Segment
	Weight   float64
	Color    string
}

// Sketch is the ordered list of strokes. Later strokes paint over earlier ones.
type Sketch struct {
	Strokes []Stroke
}

// New returns an empty sketch.
func New() *Sketch {
	return &Sketch{Strokes: []Stroke{}}
}

// StartStroke appends an empty stroke drawn with t.
func (s *Sketch) StartStroke(t Tool) *Sketch {
	strokes := append(slices.Clip(s.Strokes), Stroke{
		Segments: []Segment{},
		Weight:   t.Weight,
		Color:    t.Color,
	})
	return &Sketch{Strokes: strokes}
}

// AppendSegment adds a segment from→to to the last stroke. On an empty
// sketch it returns the receiver and ErrNoActiveStroke.
func (s *Sketch) AppendSegment(from, to Point) (*Sketch, error) {
	if len(s.Strokes) == 0 {
		return s, ErrNoActiveStroke
	}
	last := s.Strokes[len(s.Strokes)-1]
	last.Segments = append(slices.Clip(last.Segments), Segment{
		From: from,
		To:   to,
		ID:   NewSegmentID(),
	})
	return s.replaceLast(last), nil
}

// FinalizeStroke turns a last stroke without segments into a dot: a single
// zero-length segment at p. A stroke that already has segments is left
// alone and the receiver is returned.
func (s *Sketch) FinalizeStroke(p Point) (*Sketch, error) {
	if len(s.Strokes) == 0 {
		return s, ErrNoActiveStroke
	}
	if len(s.Strokes[len(s.Strokes)-1].Segments) > 0 {
		return s, nil
	}
	return s.AppendSegment(p, p)
}

// Undo removes the last stroke with all of its segments. An empty sketch
// is returned unchanged.
func (s *Sketch) Undo() *Sketch {
	if len(s.Strokes) == 0 {
		return s
	}
	return &Sketch{Strokes: slices.Clip(s.Strokes[:len(s.Strokes)-1])}
}

// LastSegment returns the final segment in drawing order, skipping
// trailing strokes that have no segments yet.
func (s *Sketch) LastSegment() (Segment, bool) {
	for i := len(s.Strokes) - 1; i >= 0; i-- {
		if segs := s.Strokes[i].Segments; len(segs) > 0 {
			return segs[len(segs)-1], true
		}
	}
	return Segment{}, false
}

// SegmentCount returns the number of segments over all strokes.
func (s *Sketch) SegmentCount() int {
	n := 0
	for _, st := range s.Strokes {
		n += len(st.Segments)
	}
	return n
}

func (s *Sketch) replaceLast(st Stroke) *Sketch {
	strokes := slices.Clone(s.Strokes)
	strokes[len(strokes)-1] = st
	return &Sketch{Strokes: strokes}
}
