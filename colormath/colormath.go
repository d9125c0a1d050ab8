// Package colormath provides the color conversions and derivations behind the
// color wheel: hex parsing and formatting, decimal values, RGB <-> HSV,
// brightness adjustment, similar color palettes and contrasting text color.
// All functions are pure and safe for concurrent use.
package colormath // import "fortio.org/colorwheel/colormath"

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
)

// ErrInvalidFormat is returned (wrapped) by [ParseHex] for malformed input.
var ErrInvalidFormat = errors.New("invalid hex color format")

// MaxDecimal is the decimal value of #FFFFFF.
const MaxDecimal = 0xFFFFFF

// RGB color, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// HSV color, H in [0,1), S and V in [0,1].
type HSV struct {
	H, S, V float64
}

func clampChannel(v int) uint8 {
	return safecast.MustConvert[uint8](min(255, max(0, v)))
}

// NewRGB clamps each channel to [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// ParseHex parses RRGGBB with an optional leading #, case-insensitive.
func ParseHex(s string) (RGB, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must be 6 hex digits (#RRGGBB)", ErrInvalidFormat, s)
	}
	var ch [3]int
	for i := range 6 {
		d, ok := hexDigit(h[i])
		if !ok {
			return RGB{}, fmt.Errorf("%w: %q has non hex digit %q", ErrInvalidFormat, s, h[i])
		}
		ch[i/2] = ch[i/2]<<4 | d
	}
	return NewRGB(ch[0], ch[1], ch[2]), nil
}

// FormatHex clamps the channels and returns #RRGGBB (uppercase).
func FormatHex(r, g, b int) string {
	return NewRGB(r, g, b).Hex()
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// Decimal is R*65536 + G*256 + B.
func (c RGB) Decimal() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

// RGBToHSV converts to HSV. Hue is 0 for grays.
func RGBToHSV(c RGB) HSV {
	r := float64(c.R) / 255.
	g := float64(c.G) / 255.
	b := float64(c.B) / 255.
	hi := max(r, g, b)
	lo := min(r, g, b)
	v := hi
	if hi == lo {
		return HSV{H: 0, S: 0, V: v}
	}
	delta := hi - lo
	s := delta / hi
	var h float64
	switch hi {
	case r:
		h = (g - b) / delta
	case g:
		h = 2. + (b-r)/delta
	default:
		h = 4. + (r-g)/delta
	}
	h /= 6.
	if h < 0 {
		h += 1.
	}
	return HSV{H: h, S: s, V: v}
}

func (c RGB) HSV() HSV {
	return RGBToHSV(c)
}

// to255 scales a [0,1] component, rounding half away from zero, clamped.
func to255(f float64) int {
	return int(math.Round(f * 255.))
}

// HSVToRGB converts back to RGB. H outside of [0,1) wraps, S and V are clamped.
// Channels are rounded to the nearest integer after scaling by 255, not
// truncated, which keeps RGB -> HSV -> RGB exact.
func HSVToRGB(c HSV) RGB {
	s := clamp01(c.S)
	v := clamp01(c.V)
	if s == 0 {
		g := to255(v)
		return NewRGB(g, g, g)
	}
	h := wrap01(c.H) * 6.
	i := math.Floor(h)
	f := h - i
	p := v * (1. - s)
	q := v * (1. - s*f)
	t := v * (1. - s*(1.-f))
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return NewRGB(to255(r), to255(g), to255(b))
}

func (c HSV) RGB() RGB {
	return HSVToRGB(c)
}

// Degrees returns the hue in [0,360).
func (c HSV) Degrees() float64 {
	return wrap01(c.H) * 360.
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.1f°, %.1f%%, %.1f%%)", c.Degrees(), 100*c.S, 100*c.V)
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return min(f, 1)
}

func wrap01(f float64) float64 {
	f = math.Mod(f, 1.)
	if f < 0 {
		f += 1.
	}
	if f >= 1. { // -tiny + 1 rounding
		f = 0
	}
	return f
}

// Brightness multiplies the HSV value by factor, clamped to [0,1].
// A factor of 0 (or less) yields black.
func (c RGB) Brightness(factor float64) RGB {
	hsv := c.HSV()
	hsv.V = clamp01(hsv.V * factor)
	return hsv.RGB()
}

// AdjustBrightness is [RGB.Brightness] on a hex color string.
func AdjustBrightness(hex string, factor float64) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return c.Brightness(factor).Hex(), nil
}
