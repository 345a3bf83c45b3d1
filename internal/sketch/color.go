package sketch

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidColor is returned for anything that is not a six digit hex triplet.
	ErrInvalidColor = errors.New("sketch: invalid hex color")
	// ErrInvalidWeight is returned for a non-positive stroke weight.
	ErrInvalidWeight = errors.New("sketch: stroke weight must be positive")
)

// NormalizeColor validates a hex triplet such as "ff0000" or "#FF0000" and
// returns it lower-cased without the leading '#'.
func NormalizeColor(hex string) (string, error) {
	s := strings.ToLower(strings.TrimPrefix(hex, "#"))
	if len(s) != 6 || strings.Trim(s, "0123456789abcdef") != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	if _, err := colorful.Hex("#" + s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return s, nil
}

// ParseColor converts a hex triplet into an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	s, err := NormalizeColor(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	c, _ := colorful.Hex("#" + s)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Tool is the pen used for new strokes. It is sampled once when a stroke
// starts and never re-read while the stroke is being drawn.
type Tool struct {
	Weight float64
	Color  string
}

// Validate checks the weight and normalizes the color.
func (t Tool) Validate() (Tool, error) {
	if !(t.Weight > 0) {
		return Tool{}, fmt.Errorf("%w: %v", ErrInvalidWeight, t.Weight)
	}
	c, err := NormalizeColor(t.Color)
	if err != nil {
		return Tool{}, err
	}
	return Tool{Weight: t.Weight, Color: c}, nil
}
