package render

import (
	"errors"
	"fmt"
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// ErrInvalidHex indicates a hex color string that could not be parsed.
var ErrInvalidHex = errors.New("render: invalid hex color")

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// ParseHex parses a hex color string. Supported formats: "RGB", "RGBA",
// "RRGGBB", "RRGGBBAA", each with an optional leading '#'.
func ParseHex(hex string) (RGBA, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		if err := parseHexFields(hex, 1, &r, &g, &b); err != nil {
			return RGBA{}, err
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if err := parseHexFields(hex, 1, &r, &g, &b, &a); err != nil {
			return RGBA{}, err
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if err := parseHexFields(hex, 2, &r, &g, &b); err != nil {
			return RGBA{}, err
		}
	case 8: // RRGGBBAA
		if err := parseHexFields(hex, 2, &r, &g, &b, &a); err != nil {
			return RGBA{}, err
		}
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHexFields splits hex into fields of the given width and parses
// each into the corresponding destination.
func parseHexFields(hex string, width int, dst ...*uint32) error {
	for i, d := range dst {
		var v uint32
		for _, ch := range hex[i*width : (i+1)*width] {
			digit, ok := hexDigit(ch)
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidHex, hex)
			}
			v = v<<4 | digit
		}
		*d = v
	}
	return nil
}

func hexDigit(ch rune) (uint32, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint32(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return uint32(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return uint32(ch-'A') + 10, true
	}
	return 0, false
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
