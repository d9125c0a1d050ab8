// Package panel computes and renders what a color picker shows for the
// currently selected color: hex, decimal, RGB and HSV values, the brightness
// adjusted color and a small palette of similar colors.
package panel // import "fortio.org/colorwheel/panel"

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fortio.org/colorwheel/ansi"
	"fortio.org/colorwheel/colormath"
	"fortio.org/log"
	"github.com/rivo/uniseg"
)

const (
	DefaultColor = "#D88DC6"
	// Brightness slider range.
	MinUIBrightness = 0.1
	MaxUIBrightness = 1.0
)

// Selection is the caller owned state of the picker.
type Selection struct {
	Color      colormath.RGB
	Brightness float64 // multiplicative factor, 1 is unchanged
	Offsets    []int   // in order, for the similar colors
	Strategy   colormath.Strategy
	ClampUI    bool // restrict Brightness to [MinUIBrightness, MaxUIBrightness]
}

// NewSelection parses hex and uses full brightness and the default offsets.
func NewSelection(hex string) (Selection, error) {
	c, err := colormath.ParseHex(hex)
	if err != nil {
		return Selection{}, err
	}
	return Selection{
		Color:      c,
		Brightness: 1.,
		Offsets:    colormath.DefaultOffsets(colormath.ChannelShift),
	}, nil
}

type Info struct {
	Hex             string     `json:"hex"`
	RGB             [3]int     `json:"rgb"`
	Decimal         int        `json:"decimal"`
	HSV             [3]float64 `json:"hsv"` // hue in degrees, saturation and value in [0,1]
	TextColor       string     `json:"text_color"`
	Luminance       float64    `json:"luminance"`
	Brightness      float64    `json:"brightness"`
	Adjusted        string     `json:"adjusted"`
	AdjustedDecimal int        `json:"adjusted_decimal"`
	Strategy        string     `json:"strategy"`
	Offsets         []int      `json:"offsets"`
	Similar         []string   `json:"similar"`
}

// Compute derives everything displayed for the selection.
func Compute(sel Selection) Info {
	b := sel.Brightness
	if sel.ClampUI {
		b = min(MaxUIBrightness, max(MinUIBrightness, b))
		if b != sel.Brightness {
			log.LogVf("Brightness %g clamped to %g", sel.Brightness, b)
		}
	}
	c := sel.Color
	hsv := c.HSV()
	adjusted := c.Brightness(b)
	similar := colormath.Similar(c, sel.Offsets, sel.Strategy)
	info := Info{
		Hex:             c.Hex(),
		RGB:             [3]int{int(c.R), int(c.G), int(c.B)},
		Decimal:         c.Decimal(),
		HSV:             [3]float64{hsv.Degrees(), hsv.S, hsv.V},
		TextColor:       c.TextColor().String(),
		Luminance:       c.Luminance(),
		Brightness:      b,
		Adjusted:        adjusted.Hex(),
		AdjustedDecimal: adjusted.Decimal(),
		Strategy:        sel.Strategy.String(),
		Offsets:         append([]int{}, sel.Offsets...),
		Similar:         make([]string, len(similar)),
	}
	for i, s := range similar {
		info.Similar[i] = s.Hex()
	}
	return info
}

func mustParse(hex string) colormath.RGB {
	c, err := colormath.ParseHex(hex)
	if err != nil {
		// Info is built by Compute, only valid hex in there.
		log.Critf("Unexpected invalid color %q in panel info: %v", hex, err)
	}
	return c
}

func pad(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Render writes the panel as text with color swatches (unless out is disabled).
func Render(w io.Writer, info Info, out ansi.Output) error {
	base := mustParse(info.Hex)
	adjusted := mustParse(info.Adjusted)
	rows := [][2]string{
		{"Hex", info.Hex},
		{"Decimal", fmt.Sprintf("%d", info.Decimal)},
		{"RGB", fmt.Sprintf("%d, %d, %d", info.RGB[0], info.RGB[1], info.RGB[2])},
		{"HSV", base.HSV().String()},
		{"Text", fmt.Sprintf("%s (luminance %.1f)", info.TextColor, info.Luminance)},
		{"Brightness", fmt.Sprintf("%.0f%% %s %s (%d)", 100*info.Brightness,
			out.Swatch(adjusted, "      "), info.Adjusted, info.AdjustedDecimal)},
	}
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, uniseg.StringWidth(r[0]))
	}
	var sb strings.Builder
	sb.WriteString(out.Swatch(base, "  "+info.Hex+"  "))
	sb.WriteString("\n")
	for _, r := range rows {
		sb.WriteString(pad(r[0]+":", labelWidth+2))
		sb.WriteString(r[1])
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Similar colors (%s shift, offsets %v):\n", info.Strategy, info.Offsets)
	for i, s := range info.Similar {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(out.Swatch(mustParse(s), " "+s+" "))
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON writes the info as indented JSON.
func WriteJSON(w io.Writer, info Info) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
