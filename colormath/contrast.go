package colormath

type TextColor uint8

const (
	White TextColor = iota
	Black
)

func (t TextColor) String() string {
	if t == Black {
		return "black"
	}
	return "white"
}

// RGB of the text color itself.
func (t TextColor) RGB() RGB {
	if t == Black {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}

// Luminance threshold above which black text is more readable.
const contrastThreshold = 140

// luminance in thousandths, so the threshold comparison is exact.
func (c RGB) luminance1000() int {
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}

// Luminance is the perceptual 0.299R + 0.587G + 0.114B, in [0,255].
func (c RGB) Luminance() float64 {
	return float64(c.luminance1000()) / 1000.
}

// TextColor picks black for bright backgrounds (luminance strictly above 140), white otherwise.
func (c RGB) TextColor() TextColor {
	if c.luminance1000() > contrastThreshold*1000 {
		return Black
	}
	return White
}

// ContrastingText is [RGB.TextColor] for a hex color.
func ContrastingText(hex string) (TextColor, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return White, err
	}
	return c.TextColor(), nil
}
