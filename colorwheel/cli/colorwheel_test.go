package cli

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"fortio.org/colorwheel/ansi"
	"fortio.org/colorwheel/colormath"
)

func TestParseOffsets(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
		ok       bool
	}{
		{"", nil, true},
		{"  ", nil, true},
		{"-20,0,20", []int{-20, 0, 20}, true},
		{" 15 , -15,40", []int{15, -15, 40}, true},
		{"1,,2", nil, false},
		{"a", nil, false},
	}
	for _, test := range tests {
		got, err := ParseOffsets(test.input)
		if (err == nil) != test.ok {
			t.Errorf("ParseOffsets(%q) error = %v, want ok=%t", test.input, err, test.ok)
		}
		if !slices.Equal(got, test.expected) {
			t.Errorf("ParseOffsets(%q) = %v, want %v", test.input, got, test.expected)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("COLORWHEEL_COLOR", "#112233")
	t.Setenv("COLORWHEEL_BRIGHTNESS", "0.25")
	t.Setenv("COLORWHEEL_STRATEGY", "hue")
	cfg := DefaultConfig()
	if err := LoadEnv(&cfg); err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if cfg.Color != "#112233" || cfg.Brightness != 0.25 || cfg.Strategy != "hue" || cfg.Offsets != "" {
		t.Errorf("Unexpected config from env %+v", cfg)
	}
}

func TestSelectionDefaults(t *testing.T) {
	o := Options{Config: DefaultConfig()}
	o.Strategy = "hue"
	sel, err := o.Selection()
	if err != nil {
		t.Fatal(err)
	}
	if sel.Strategy != colormath.HueShift || !slices.Equal(sel.Offsets, colormath.DefaultOffsets(colormath.HueShift)) {
		t.Errorf("Unexpected selection %+v", sel)
	}
}

func TestSelectionErrors(t *testing.T) {
	for _, cfg := range []Config{
		{Color: "#12345", Brightness: 1},
		{Color: "#123456", Brightness: -1},
		{Color: "#123456", Brightness: 1, Strategy: "nope"},
		{Color: "#123456", Brightness: 1, Offsets: "x"},
	} {
		if _, err := (Options{Config: cfg}).Selection(); err == nil {
			t.Errorf("Expected error for %+v", cfg)
		}
	}
}

func TestRunJSON(t *testing.T) {
	var buf bytes.Buffer
	o := Options{Config: Config{Color: "d88dc6", Brightness: 0.5, Offsets: "20,-20"}, JSON: true}
	if code := Run(&buf, o); code != 0 {
		t.Fatalf("Run returned %d", code)
	}
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("Invalid json %q: %v", buf.String(), err)
	}
	sim, _ := m["similar"].([]any)
	if m["hex"] != "#D88DC6" || len(sim) != 2 || sim[0] != "#ECA1DA" || sim[1] != "#C479B2" {
		t.Errorf("Unexpected json output %v", m)
	}
}

func TestRunText(t *testing.T) {
	var buf bytes.Buffer
	o := Options{Config: DefaultConfig(), Wheel: true, Radius: 3, Out: ansi.Output{Disabled: true}}
	if code := Run(&buf, o); code != 0 {
		t.Fatalf("Run returned %d", code)
	}
	s := buf.String()
	if !strings.Contains(s, "+") || !strings.Contains(s, "Decimal:    14192070\n") {
		t.Errorf("Unexpected output:\n%s", s)
	}
}

func TestRunInvalidColor(t *testing.T) {
	var buf bytes.Buffer
	if code := Run(&buf, Options{Config: Config{Color: "zzzzzz", Brightness: 1}}); code != 1 {
		t.Errorf("Expected exit code 1 for invalid color, got %d", code)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestColorOutput(t *testing.T) {
	t.Setenv("COLORTERM", "")
	out, err := colorOutput("auto", false, false)
	if err != nil || !out.Disabled || out.TrueColor {
		t.Errorf("auto on non terminal: %+v %v", out, err)
	}
	out, err = colorOutput("always", false, true)
	if err != nil || out.Disabled || !out.TrueColor {
		t.Errorf("always: %+v %v", out, err)
	}
	out, err = colorOutput("never", true, false)
	if err != nil || !out.Disabled {
		t.Errorf("never: %+v %v", out, err)
	}
	if _, err = colorOutput("sometimes", true, false); err == nil {
		t.Errorf("Expected error for invalid mode")
	}
}

func TestFitRadius(t *testing.T) {
	tests := []struct{ w, h, expected int }{
		{80, 24, 14},
		{200, 100, MaxRadius},
		{21, 60, 10},
		{2, 2, 1},
	}
	for _, test := range tests {
		if got := FitRadius(test.w, test.h); got != test.expected {
			t.Errorf("FitRadius(%d, %d) = %d, want %d", test.w, test.h, got, test.expected)
		}
	}
}
