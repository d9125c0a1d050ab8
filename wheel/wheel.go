// Package wheel draws a hue/saturation color wheel in the terminal using
// half block characters (2 pixels per character cell vertically).
package wheel // import "fortio.org/colorwheel/wheel"

import (
	"errors"
	"io"
	"math"
	"strings"

	"fortio.org/colorwheel/ansi"
	"fortio.org/colorwheel/colormath"
	"fortio.org/log"
)

const (
	BottomHalfPixel = '▄'
	TopHalfPixel    = '▀'
	MarkerRune      = '+'
	// Used instead of colored pixels when color output is disabled.
	PlainPixel = '.'
)

var ErrRadius = errors.New("wheel radius must be at least 1")

func inside(x, y, radius int) bool {
	return x*x+y*y <= radius*radius
}

// At returns the color of the wheel pixel at (x, y) relative to the center, y
// going down. Hue is the angle (0 is red on the right, counter clockwise) and
// saturation the distance to the center. The bool is false outside the disc.
func At(x, y, radius int, value float64) (colormath.RGB, bool) {
	if radius < 1 || !inside(x, y, radius) {
		return colormath.RGB{}, false
	}
	h := math.Atan2(float64(-y), float64(x)) / (2 * math.Pi)
	if h < 0 {
		h += 1.
	}
	s := min(1., math.Hypot(float64(x), float64(y))/float64(radius))
	return colormath.HSV{H: h, S: s, V: value}.RGB(), true
}

// Position is the inverse of [At]: the closest pixel to the color's hue and saturation.
func Position(c colormath.RGB, radius int) (int, int) {
	hsv := c.HSV()
	angle := 2 * math.Pi * hsv.H
	d := hsv.S * float64(radius)
	return int(math.Round(d * math.Cos(angle))), int(math.Round(-d * math.Sin(angle)))
}

// Render draws the wheel at the given value (brightness) with radius in pixels,
// so 2*radius+1 columns by radius+1 lines. A non nil marker is shown with a '+'.
func Render(w io.Writer, radius int, value float64, marker *colormath.RGB, out ansi.Output) error {
	if radius < 1 {
		return ErrRadius
	}
	mx, my := math.MinInt, math.MinInt
	if marker != nil {
		mx, my = Position(*marker, radius)
		log.LogVf("Marker %s at %d,%d", marker.Hex(), mx, my)
	}
	var sb strings.Builder
	for j := -radius; j <= radius; j += 2 {
		for i := -radius; i <= radius; i++ {
			top, topIn := At(i, j, radius, value)
			bottom, bottomIn := At(i, j+1, radius, value)
			isMarker := i == mx && (my == j || my == j+1)
			switch {
			case isMarker && out.Disabled:
				sb.WriteRune(MarkerRune)
			case isMarker:
				sb.WriteString(out.Swatch(*marker, string(MarkerRune)))
			case !topIn && !bottomIn:
				sb.WriteByte(' ')
			case out.Disabled:
				sb.WriteRune(PlainPixel)
			case topIn && bottomIn:
				sb.WriteString(out.Background(top))
				sb.WriteString(out.Foreground(bottom))
				sb.WriteRune(BottomHalfPixel)
				sb.WriteString(ansi.Reset)
			case topIn:
				sb.WriteString(out.Foreground(top))
				sb.WriteRune(TopHalfPixel)
				sb.WriteString(ansi.Reset)
			default:
				sb.WriteString(out.Foreground(bottom))
				sb.WriteRune(BottomHalfPixel)
				sb.WriteString(ansi.Reset)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
