// Package render draws a sketch onto a canvas through a viewport.
//
// Strokes are painted once onto an offscreen accumulation layer in world
// units. Every frame the visible layer is rebuilt from it: background
// fills, a clip to the drawable bounds and a scaled copy of the
// accumulation layer.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"sketchboard/internal/logging"
	"sketchboard/internal/sketch"
	"sketchboard/internal/viewport"
)

// Background holds the two fills painted under the strokes.
type Background struct {
	// OutOfBounds is painted around the drawable area.
	OutOfBounds color.Color
	// InBounds is painted under the drawable area.
	InBounds color.Color
}

// DefaultBackground is light gray outside a white drawable area.
var DefaultBackground = Background{
	OutOfBounds: color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	InBounds:    color.White,
}

// Renderer keeps the accumulation layer between frames. It is not safe for
// concurrent use.
type Renderer struct {
	bg Background

	accum  *gg.Context
	screen *gg.Context
	// ratio is device pixels per canvas unit.
	ratio  float64

	lastDrawn sketch.SegmentID
	hasLast   bool
}

// New returns a renderer with no surfaces. They are created by the first
// Render call.
func New(bg Background) *Renderer {
	return &Renderer{bg: bg, ratio: 1}
}

// PixelRatio returns the device pixels drawn per canvas unit.
func (r *Renderer) PixelRatio() float64 { return r.ratio }

// SetPixelRatio changes the device pixels drawn per canvas unit, for hosts
// on scaled displays. Both layers are rebuilt on the next Render.
// Non-positive and non-finite ratios are ignored.
func (r *Renderer) SetPixelRatio(ratio float64) {
	if !(ratio > 0) || math.IsInf(ratio, 1) || ratio == r.ratio {
		return
	}
	r.ratio = ratio
	r.Reset()
}

// Render brings the accumulation layer up to date with s and composites it
// through vp onto a canvas-sized image. The returned image is owned by the
// renderer and is overwritten by the next call.
func (r *Renderer) Render(s *sketch.Sketch, vp viewport.Viewport, canvas viewport.Size) image.Image {
	r.ensureSurfaces(canvas)
	r.accumulate(s)
	r.composite(vp, canvas)
	return r.screen.Image()
}

// Reset drops both layers. The next Render starts from scratch and
// snapshots fail until then.
func (r *Renderer) Reset() {
	r.accum, r.screen = nil, nil
	r.hasLast = false
}

func (r *Renderer) ensureSurfaces(canvas viewport.Size) {
	w, h := pixelSize(canvas, r.ratio)
	if r.accum != nil && r.accum.Width() == w && r.accum.Height() == h {
		return
	}
	logging.Logger().Debug("render: allocating layers", "width", w, "height", h)
	r.accum = gg.NewContext(w, h)
	r.accum.SetLineCapRound()
	r.accum.Scale(r.ratio, r.ratio)
	r.screen = gg.NewContext(w, h)
	r.hasLast = false
}

// accumulate draws every segment after the last one drawn. If that segment
// is gone (an undo removed its stroke) the layer is cleared and the whole
// sketch is drawn again.
func (r *Renderer) accumulate(s *sketch.Sketch) {
	if r.hasLast {
		n, found := r.drawFrom(s, r.lastDrawn, true)
		if found {
			if n > 0 {
				logging.Logger().Debug("render: incremental pass", "segments", n)
			}
			return
		}
		logging.Logger().Debug("render: last drawn segment missing, redrawing", "id", r.lastDrawn)
		r.clearAccum()
	}
	n, _ := r.drawFrom(s, "", false)
	logging.Logger().Debug("render: full pass", "segments", n)
}

// drawFrom walks the sketch in drawing order. With skip set, segments up to
// and including after are passed over; found reports whether after was seen.
func (r *Renderer) drawFrom(s *sketch.Sketch, after sketch.SegmentID, skip bool) (n int, found bool) {
	found = !skip
	for _, st := range s.Strokes {
		for _, seg := range st.Segments {
			if !found {
				found = seg.ID == after
				continue
			}
			r.drawSegment(st, seg)
			r.lastDrawn, r.hasLast = seg.ID, true
			n++
		}
	}
	return n, found
}

func (r *Renderer) drawSegment(st sketch.Stroke, seg sketch.Segment) {
	dc := r.accum
	dc.SetHexColor(st.Color)
	if seg.From == seg.To {
		dc.DrawCircle(seg.From.X, seg.From.Y, st.Weight/2)
		dc.Fill()
		return
	}
	dc.SetLineWidth(st.Weight)
	dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	dc.Stroke()
}

func (r *Renderer) clearAccum() {
	r.accum.SetColor(color.Transparent)
	r.accum.Clear()
	r.hasLast = false
}

func (r *Renderer) composite(vp viewport.Viewport, canvas viewport.Size) {
	dc := r.screen
	dc.Identity()
	dc.ResetClip()
	dc.SetColor(color.Transparent)
	dc.Clear()

	sx, sy := vp.Scale(canvas)
	dc.Scale(sx*r.ratio, sy*r.ratio)
	dc.Translate(-vp.X, -vp.Y)

	w, h := canvas.Width, canvas.Height
	dc.SetColor(r.bg.OutOfBounds)
	dc.DrawRectangle(-w, -h, 3*w, 3*h)
	dc.Fill()
	dc.SetColor(r.bg.InBounds)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.DrawRectangle(0, 0, w, h)
	dc.Clip()
	dc.Push()
	dc.Scale(1/r.ratio, 1/r.ratio)
	dc.DrawImage(r.accum.Image(), 0, 0)
	dc.Pop()

	dc.ResetClip()
	dc.Identity()
}

func pixelSize(canvas viewport.Size, ratio float64) (int, int) {
	w := int(math.Max(1, math.Round(canvas.Width*ratio)))
	h := int(math.Max(1, math.Round(canvas.Height*ratio)))
	return w, h
}
