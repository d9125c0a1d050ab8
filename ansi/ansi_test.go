package ansi_test

import (
	"testing"

	"fortio.org/colorwheel/ansi"
	"fortio.org/colorwheel/colormath"
)

func TestTo216(t *testing.T) {
	tests := []struct {
		c        colormath.RGB
		expected uint8
	}{
		{colormath.RGB{}, 16},
		{colormath.RGB{R: 255, G: 255, B: 255}, 231},
		{colormath.RGB{R: 255}, 196},
		{colormath.RGB{G: 255}, 46},
		{colormath.RGB{B: 255}, 21},
		{colormath.RGB{R: 128, G: 128, B: 128}, 244},
	}
	for _, test := range tests {
		if got := ansi.To216(test.c); got != test.expected {
			t.Errorf("To216(%v) = %d, want %d", test.c, got, test.expected)
		}
	}
}

func TestOutput(t *testing.T) {
	c := colormath.RGB{R: 0xD8, G: 0x8D, B: 0xC6}
	tests := []struct {
		name   string
		out    ansi.Output
		fg, bg string
	}{
		{"truecolor", ansi.Output{TrueColor: true}, "\033[38;2;216;141;198m", "\033[48;2;216;141;198m"},
		{"256", ansi.Output{}, "\033[38;5;175m", "\033[48;5;175m"},
		{"disabled", ansi.Output{TrueColor: true, Disabled: true}, "", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.out.Foreground(c); got != test.fg {
				t.Errorf("Foreground = %q, want %q", got, test.fg)
			}
			if got := test.out.Background(c); got != test.bg {
				t.Errorf("Background = %q, want %q", got, test.bg)
			}
		})
	}
}

func TestSwatch(t *testing.T) {
	out := ansi.Output{TrueColor: true}
	got := out.Swatch(colormath.RGB{}, "x")
	expected := "\033[48;2;0;0;0m\033[38;2;255;255;255mx\033[0m"
	if got != expected {
		t.Errorf("Swatch = %q, want %q", got, expected)
	}
	out.Disabled = true
	if got := out.Swatch(colormath.RGB{}, "x"); got != "x" {
		t.Errorf("Disabled swatch = %q", got)
	}
	if out.Reset() != "" {
		t.Errorf("Disabled reset should be empty")
	}
}

func TestDetectTrueColor(t *testing.T) {
	for in, expected := range map[string]bool{"truecolor": true, "24bit": true, " TrueColor\n": true, "": false, "256": false} {
		if got := ansi.DetectTrueColor(in); got != expected {
			t.Errorf("DetectTrueColor(%q) = %t", in, got)
		}
	}
}
