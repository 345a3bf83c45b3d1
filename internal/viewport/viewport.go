// Package viewport maps between device-local canvas pixels and world
// coordinates. A Viewport is a plain value: mutators return a new one.
package viewport

import (
	"math"

	"sketchboard/internal/sketch"
)

// Size is the pixel size of the canvas the viewport is shown on.
type Size struct {
	Width, Height float64
}

// Limits bound pan and zoom.
type Limits struct {
	// ZoomMin and ZoomMax bound canvasWidth/viewport.Width.
	ZoomMin, ZoomMax float64
	// PanBound is the fraction of the canvas size the origin may travel
	// away from zero in either direction.
	PanBound float64
}

// Viewport is the world rectangle currently shown on the canvas. Zoom is
// implied by the ratio between the canvas size and Width/Height.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// New returns the identity viewport for a canvas: world equals local.
func New(canvas Size) Viewport {
	return Viewport{Width: canvas.Width, Height: canvas.Height}
}

// Valid reports whether the viewport has a positive, finite extent.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 && !math.IsInf(v.Width, 0) && !math.IsInf(v.Height, 0)
}

// ToLocal converts a world point to canvas pixels.
func (v Viewport) ToLocal(p sketch.Point, canvas Size) sketch.Point {
	return sketch.Point{
		X: (p.X - v.X) * canvas.Width / v.Width,
		Y: (p.Y - v.Y) * canvas.Height / v.Height,
	}
}

// ToWorld converts canvas pixels to a world point.
func (v Viewport) ToWorld(p sketch.Point, canvas Size) sketch.Point {
	return sketch.Point{
		X: p.X*v.Width/canvas.Width + v.X,
		Y: p.Y*v.Height/canvas.Height + v.Y,
	}
}

// Scale returns the horizontal and vertical world-to-pixel factors.
func (v Viewport) Scale(canvas Size) (sx, sy float64) {
	return canvas.Width / v.Width, canvas.Height / v.Height
}

// Zoom returns the current zoom level, canvasWidth / Width.
func (v Viewport) Zoom(canvas Size) float64 {
	return canvas.Width / v.Width
}

// Pan moves the viewport by a gesture going from→to in canvas pixels. The
// delta is converted to world units so panning tracks the pointer at any
// zoom level.
func (v Viewport) Pan(from, to sketch.Point, canvas Size, lim Limits) Viewport {
	d := to.Sub(from)
	v.X -= d.X * v.Width / canvas.Width
	v.Y -= d.Y * v.Height / canvas.Height
	return v.clampOrigin(canvas, lim)
}

// ZoomBy multiplies the zoom level by factor, keeping the center of the
// viewport in place. The result is clamped to [lim.ZoomMin, lim.ZoomMax].
// Non-positive or non-finite factors leave the viewport unchanged.
func (v Viewport) ZoomBy(factor float64, canvas Size, lim Limits) Viewport {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return v
	}
	current := v.Zoom(canvas)
	next := clamp(current*factor, lim.ZoomMin, lim.ZoomMax)
	ratio := current / next

	cx, cy := v.X+v.Width/2, v.Y+v.Height/2
	v.Width *= ratio
	v.Height *= ratio
	v.X = cx - v.Width/2
	v.Y = cy - v.Height/2
	return v.clampOrigin(canvas, lim)
}

// Clamp applies both the zoom and the pan limits.
func (v Viewport) Clamp(canvas Size, lim Limits) Viewport {
	return v.ZoomBy(1, canvas, lim)
}

func (v Viewport) clampOrigin(canvas Size, lim Limits) Viewport {
	bx, by := canvas.Width*lim.PanBound, canvas.Height*lim.PanBound
	v.X = clamp(v.X, -bx, bx)
	v.Y = clamp(v.Y, -by, by)
	return v
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
