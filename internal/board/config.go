package board

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"sketchboard/internal/render"
	"sketchboard/internal/sketch"
	"sketchboard/internal/viewport"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("board: invalid config")

// Config is the construction-time setup of a board.
type Config struct {
	CanvasWidth   float64 `toml:"canvas_width"`
	CanvasHeight  float64 `toml:"canvas_height"`
	InitialWeight float64 `toml:"initial_weight"`
	InitialColor  string  `toml:"initial_color"`
	ZoomMin       float64 `toml:"zoom_min"`
	ZoomMax       float64 `toml:"zoom_max"`
	// PanBound is the fraction of the canvas the viewport origin may move
	// away from zero in each direction.
	PanBound         float64 `toml:"pan_bound"`
	OutOfBoundsColor string  `toml:"out_of_bounds_color"`
	InBoundsColor    string  `toml:"in_bounds_color"`
	FrameRate        int     `toml:"frame_rate"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:      800,
		CanvasHeight:     600,
		InitialWeight:    2,
		InitialColor:     "000000",
		ZoomMin:          0.25,
		ZoomMax:          8,
		PanBound:         0.5,
		OutOfBoundsColor: "cccccc",
		InBoundsColor:    "ffffff",
		FrameRate:        60,
	}
}

// Option modifies a Config before validation.
type Option func(*Config)

// WithCanvasSize sets the canvas size in pixels.
func WithCanvasSize(w, h float64) Option {
	return func(c *Config) {
		c.CanvasWidth, c.CanvasHeight = w, h
	}
}

// WithTool sets the initial pen.
func WithTool(weight float64, hex string) Option {
	return func(c *Config) {
		c.InitialWeight, c.InitialColor = weight, hex
	}
}

// WithZoomRange sets the allowed zoom levels.
func WithZoomRange(lo, hi float64) Option {
	return func(c *Config) {
		c.ZoomMin, c.ZoomMax = lo, hi
	}
}

// WithPanBound sets how far the viewport origin may travel, as a fraction
// of the canvas size.
func WithPanBound(fraction float64) Option {
	return func(c *Config) {
		c.PanBound = fraction
	}
}

// LoadConfig reads a TOML file over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and normalizes the colors in place.
func (c *Config) Validate() error {
	if !(c.CanvasWidth > 0) || !(c.CanvasHeight > 0) {
		return fmt.Errorf("%w: canvas size %vx%v", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	}
	tool, err := c.tool().Validate()
	if err != nil {
		return fmt.Errorf("%w: initial tool: %w", ErrInvalidConfig, err)
	}
	c.InitialColor = tool.Color
	if !(c.ZoomMin > 0) || !(c.ZoomMin < c.ZoomMax) {
		return fmt.Errorf("%w: zoom range [%v, %v]", ErrInvalidConfig, c.ZoomMin, c.ZoomMax)
	}
	if c.PanBound < 0 {
		return fmt.Errorf("%w: pan bound %v", ErrInvalidConfig, c.PanBound)
	}
	for _, field := range []*string{&c.OutOfBoundsColor, &c.InBoundsColor} {
		norm, err := sketch.NormalizeColor(*field)
		if err != nil {
			return fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
		}
		*field = norm
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	}
	return nil
}

func (c Config) tool() sketch.Tool {
	return sketch.Tool{Weight: c.InitialWeight, Color: c.InitialColor}
}

func (c Config) canvas() viewport.Size {
	return viewport.Size{Width: c.CanvasWidth, Height: c.CanvasHeight}
}

func (c Config) limits() viewport.Limits {
	return viewport.Limits{ZoomMin: c.ZoomMin, ZoomMax: c.ZoomMax, PanBound: c.PanBound}
}

// background assumes Validate has run.
func (c Config) background() render.Background {
	out, _ := sketch.ParseColor(c.OutOfBoundsColor)
	in, _ := sketch.ParseColor(c.InBoundsColor)
	return render.Background{OutOfBounds: out, InBounds: in}
}
