// Package ansi provides terminal color sequences for [colormath.RGB] colors,
// in true color or reduced to the 256 colors palette.
package ansi // import "fortio.org/colorwheel/ansi"

import (
	"fmt"
	"strings"

	"fortio.org/colorwheel/colormath"
	"fortio.org/safecast"
)

const (
	Reset = "\033[0m"
	Bold  = "\x1b[1m"
)

// To216 maps a color to the 256 colors palette: the gray ramp when the channels
// are close to each other, the 6x6x6 cube otherwise.
func To216(c colormath.RGB) uint8 {
	shift := 4
	if (c.R>>shift) == (c.G>>shift) && (c.G>>shift) == (c.B>>shift) {
		lum := (uint16(c.R) + uint16(c.G) + uint16(c.B)) / 3
		if lum < 9 {
			return 16 // -> black
		}
		if lum > 247 {
			return 231 // -> white
		}
		return safecast.MustConvert[uint8](min(255, 232+((lum-9)*(256-232))/(247-9)))
	}
	return 16 + 36*(c.R/51) + 6*(c.G/51) + c.B/51
}

// Output settings: TrueColor for 24 bits colors, otherwise 256 colors.
// When Disabled all sequences are empty (e.g. output isn't a terminal).
type Output struct {
	TrueColor bool
	Disabled  bool
}

// Foreground color sequence for c.
func (o Output) Foreground(c colormath.RGB) string {
	switch {
	case o.Disabled:
		return ""
	case o.TrueColor:
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
	default:
		return fmt.Sprintf("\033[38;5;%dm", To216(c))
	}
}

// Background color sequence for c.
func (o Output) Background(c colormath.RGB) string {
	switch {
	case o.Disabled:
		return ""
	case o.TrueColor:
		return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
	default:
		return fmt.Sprintf("\033[48;5;%dm", To216(c))
	}
}

// Reset sequence, empty when disabled.
func (o Output) Reset() string {
	if o.Disabled {
		return ""
	}
	return Reset
}

// Swatch returns text on a background of color c, in the contrasting text color.
func (o Output) Swatch(c colormath.RGB, text string) string {
	if o.Disabled {
		return text
	}
	return o.Background(c) + o.Foreground(c.TextColor().RGB()) + text + Reset
}

// DetectTrueColor checks the value of the COLORTERM environment variable.
func DetectTrueColor(colorterm string) bool {
	switch strings.ToLower(strings.TrimSpace(colorterm)) {
	case "truecolor", "24bit":
		return true
	}
	return false
}
