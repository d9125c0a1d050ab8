package colormath

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"fortio.org/sets"
)

// Strategy for generating similar colors.
type Strategy uint8

const (
	// ChannelShift adds each offset to R, G and B independently (clamped).
	ChannelShift Strategy = iota
	// HueShift rotates the hue by each offset, in degrees, keeping S and V.
	HueShift
)

var strategyNames = map[string]Strategy{
	"channel": ChannelShift,
	"hue":     HueShift,
}

// StrategyHelp lists the valid strategy names, sorted.
var StrategyHelp = strings.Join(sets.Sort(sets.New(slices.Collect(maps.Keys(strategyNames))...)), ", ")

func (s Strategy) String() string {
	switch s {
	case ChannelShift:
		return "channel"
	case HueShift:
		return "hue"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}

// ParseStrategy is case-insensitive, empty means the default ([ChannelShift]).
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ChannelShift, nil
	}
	s, ok := strategyNames[name]
	if !ok {
		return ChannelShift, fmt.Errorf("unknown strategy %q, must be one of: %s", name, StrategyHelp)
	}
	return s, nil
}

// DefaultOffsets returns a fresh copy of the usual offsets for the strategy.
func DefaultOffsets(s Strategy) []int {
	if s == HueShift {
		return []int{-20, -10, 10, 20}
	}
	return []int{-20, 0, 20}
}

func (c RGB) shift(delta int) RGB {
	delta = min(255, max(-255, delta)) // no overflow and same result once clamped.
	return NewRGB(int(c.R)+delta, int(c.G)+delta, int(c.B)+delta)
}

func (c RGB) rotate(degrees int) RGB {
	hsv := c.HSV()
	hsv.H = wrap01(hsv.H + float64(degrees%360)/360.)
	return hsv.RGB()
}

// Similar returns one color per offset, in the same order as offsets.
func Similar(c RGB, offsets []int, s Strategy) []RGB {
	res := make([]RGB, 0, len(offsets))
	for _, o := range offsets {
		if s == HueShift {
			res = append(res, c.rotate(o))
		} else {
			res = append(res, c.shift(o))
		}
	}
	return res
}

// SimilarColors is [Similar] on and to hex color strings.
func SimilarColors(hex string, offsets []int, s Strategy) ([]string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return nil, err
	}
	colors := Similar(c, offsets, s)
	res := make([]string, len(colors))
	for i, sc := range colors {
		res[i] = sc.Hex()
	}
	return res, nil
}
