package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/draw"
	"io"
)

// ErrNoSurface is returned by snapshot calls made before the first render.
var ErrNoSurface = errors.New("render: accumulation layer not created yet")

const dataURLPrefix = "data:image/png;base64,"

// Snapshot returns a copy of the accumulation layer: the strokes in world
// pixels, without background or viewport.
func (r *Renderer) Snapshot() (*image.RGBA, error) {
	if r.accum == nil {
		return nil, ErrNoSurface
	}
	src := r.accum.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst, nil
}

// EncodePNG writes the accumulation layer to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if r.accum == nil {
		return ErrNoSurface
	}
	return r.accum.EncodePNG(w)
}

// DataURL returns the accumulation layer as a base64 PNG data URL.
func (r *Renderer) DataURL() (string, error) {
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
