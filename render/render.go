package render

import (
	"errors"
	"image"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/robabibert/htree"
)

var (
	// ErrScale indicates a non-positive scale factor.
	ErrScale = errors.New("render: scale must be positive")
	// ErrSupersample indicates a supersample factor below 1.
	ErrSupersample = errors.New("render: supersample factor must be at least 1")
	// ErrPadding indicates a negative padding.
	ErrPadding = errors.New("render: padding must be non-negative")
)

// Option configures a render pass.
type Option func(*config)

type config struct {
	scale       float64
	padding     int
	supersample int
	fg, bg      RGBA
}

// defaultConfig returns the default render configuration: a 700-pixel
// wide canvas, no padding, no supersampling, black lines on white.
func defaultConfig() config {
	return config{
		scale:       700,
		padding:     0,
		supersample: 1,
		fg:          Black,
		bg:          White,
	}
}

// WithScale sets the pixel width of the unit interval. The resulting
// canvas is ceil(scale) pixels wide and ceil(scale/sqrt(2)) pixels
// high, before padding.
func WithScale(scale float64) Option {
	return func(c *config) { c.scale = scale }
}

// WithPadding adds a uniform border of the given width, in output
// pixels, around the fractal.
func WithPadding(px int) Option {
	return func(c *config) { c.padding = px }
}

// WithSupersample renders at factor times the output resolution and
// downscales with Catmull-Rom resampling, anti-aliasing the lines.
// Factor 1 disables supersampling.
func WithSupersample(factor int) Option {
	return func(c *config) { c.supersample = factor }
}

// WithForeground sets the line color.
func WithForeground(c RGBA) Option {
	return func(cfg *config) { cfg.fg = c }
}

// WithBackground sets the background color.
func WithBackground(c RGBA) Option {
	return func(cfg *config) { cfg.bg = c }
}

// Render rasterizes the H-tree into a pixmap.
//
// Segments arrive from htree in [0,1] x [0, htree.ScaleHeight]; Render
// multiplies them by the scale factor (and the supersample factor, if
// any), rounds the endpoints to pixel centers, and draws them with a
// Bresenham stepper over the background.
func Render[T htree.Float](t htree.HTree[T], opts ...Option) (*Pixmap, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scale <= 0 {
		return nil, ErrScale
	}
	if cfg.supersample < 1 {
		return nil, ErrSupersample
	}
	if cfg.padding < 0 {
		return nil, ErrPadding
	}

	start := time.Now()

	outW := int(math.Ceil(cfg.scale)) + 2*cfg.padding
	outH := int(math.Ceil(cfg.scale*htree.ScaleHeight)) + 2*cfg.padding

	ss := cfg.supersample
	pm := NewPixmap(outW*ss, outH*ss)
	pm.Clear(cfg.bg)

	scale := cfg.scale * float64(ss)
	pad := float64(cfg.padding * ss)
	var n uint64
	for seg := range t.Segments() {
		a := image.Pt(
			round(float64(seg.Start.X)*scale+pad),
			round(float64(seg.Start.Y)*scale+pad),
		)
		b := image.Pt(
			round(float64(seg.End.X)*scale+pad),
			round(float64(seg.End.Y)*scale+pad),
		)
		drawLine(pm, a, b, cfg.fg)
		n++
	}

	if ss > 1 {
		pm = downscale(pm, outW, outH)
	}

	logger().Debug("rendered h-tree",
		"order", t.Order(),
		"segments", n,
		"width", outW,
		"height", outH,
		"supersample", ss,
		"elapsed", time.Since(start),
	)
	return pm, nil
}

// downscale resamples src into a width x height pixmap with Catmull-Rom
// filtering.
func downscale(src *Pixmap, width, height int) *Pixmap {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(img, img.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	dst := NewPixmap(width, height)
	copy(dst.data, img.Pix)
	return dst
}

func round(v float64) int {
	return int(math.Round(v))
}
