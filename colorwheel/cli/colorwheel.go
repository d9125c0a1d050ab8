// Package cli is the command line color picker: shows the hex, decimal, RGB and
// HSV values of a color, its brightness adjusted version, similar colors and
// optionally a color wheel.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/cli"
	"fortio.org/colorwheel/ansi"
	"fortio.org/colorwheel/colormath"
	"fortio.org/colorwheel/panel"
	"fortio.org/colorwheel/prompt"
	"fortio.org/colorwheel/wheel"
	"fortio.org/log"
	"fortio.org/safecast"
	"fortio.org/struct2env"
	"golang.org/x/term"
)

// EnvPrefix for the environment variables overriding the [Config] defaults,
// e.g. COLORWHEEL_COLOR, COLORWHEEL_BRIGHTNESS.
const EnvPrefix = "COLORWHEEL_"

const (
	DefaultRadius = 12
	MaxRadius     = 40
)

// Config holds the defaults for the flags.
type Config struct {
	Color      string
	Brightness float64
	Strategy   string
	Offsets    string // comma separated, empty for the strategy's default
}

func DefaultConfig() Config {
	return Config{
		Color:      panel.DefaultColor,
		Brightness: 1.,
		Strategy:   colormath.ChannelShift.String(),
	}
}

// LoadEnv overrides cfg fields from COLORWHEEL_* environment variables.
func LoadEnv(cfg *Config) error {
	return errors.Join(struct2env.SetFromEnv(EnvPrefix, cfg)...)
}

// ParseOffsets parses a comma separated list of integers, in order.
func ParseOffsets(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	res := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", p, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// Options for a single [Run].
type Options struct {
	Config
	JSON   bool
	Wheel  bool
	Radius int
	Out    ansi.Output
}

// Selection builds the panel selection from the options.
func (o Options) Selection() (panel.Selection, error) {
	sel, err := panel.NewSelection(o.Color)
	if err != nil {
		return sel, err
	}
	if o.Brightness < 0 {
		return sel, fmt.Errorf("brightness must be positive, got %g", o.Brightness)
	}
	sel.Brightness = o.Brightness
	sel.Strategy, err = colormath.ParseStrategy(o.Strategy)
	if err != nil {
		return sel, err
	}
	offsets, err := ParseOffsets(o.Offsets)
	if err != nil {
		return sel, err
	}
	if offsets == nil {
		offsets = colormath.DefaultOffsets(sel.Strategy)
	}
	sel.Offsets = offsets
	return sel, nil
}

// Show writes the json or text (and optional wheel) output for the selection.
func Show(w io.Writer, sel panel.Selection, o Options) error {
	info := panel.Compute(sel)
	log.LogVf("Selection %s brightness %g strategy %s offsets %v", info.Hex, sel.Brightness, sel.Strategy, sel.Offsets)
	if o.JSON {
		return panel.WriteJSON(w, info)
	}
	if o.Wheel {
		// show the wheel at the adjusted brightness with the adjusted color marked.
		adjusted := sel.Color.Brightness(info.Brightness)
		if err := wheel.Render(w, o.Radius, adjusted.HSV().V, &adjusted, o.Out); err != nil {
			return err
		}
	}
	return panel.Render(w, info, o.Out)
}

// Run computes and writes the output, returns the exit code.
func Run(w io.Writer, o Options) int {
	sel, err := o.Selection()
	if err != nil {
		if errors.Is(err, colormath.ErrInvalidFormat) {
			return log.FErrf("Invalid color %q, use #RRGGBB (e.g. %s): %v", o.Color, panel.DefaultColor, err)
		}
		return log.FErrf("Invalid arguments: %v", err)
	}
	if err = Show(w, sel, o); err != nil {
		return log.FErrf("Error writing output: %v", err)
	}
	return 0
}

// Lines used by the panel below the wheel.
const panelLines = 9

// FitRadius is the largest radius (up to MaxRadius) for which the wheel, 2*radius+1
// columns by radius+1 lines, and the panel fit in the terminal.
func FitRadius(width, height int) int {
	return max(1, min(MaxRadius, (width-1)/2, height-panelLines-1))
}

func terminalRadius(fd int) int {
	width, height, err := term.GetSize(fd)
	if err != nil {
		log.LogVf("Can't get terminal size, using default radius: %v", err)
		return DefaultRadius
	}
	return FitRadius(width, height)
}

func colorOutput(mode string, isTerm, trueColor bool) (ansi.Output, error) {
	out := ansi.Output{TrueColor: trueColor || ansi.DetectTrueColor(os.Getenv("COLORTERM"))}
	switch strings.ToLower(mode) {
	case "auto":
		out.Disabled = !isTerm
	case "always":
	case "never":
		out.Disabled = true
	default:
		return out, fmt.Errorf("invalid -color %q, must be one of auto, always, never", mode)
	}
	return out, nil
}

func Main() int {
	cfg := DefaultConfig()
	envErr := LoadEnv(&cfg)
	brightnessFlag := flag.Float64("brightness", cfg.Brightness,
		fmt.Sprintf("Brightness `factor`, the picker's range is %g to %g", panel.MinUIBrightness, panel.MaxUIBrightness))
	strategyFlag := flag.String("strategy", cfg.Strategy, "Similar colors `strategy`, one of: "+colormath.StrategyHelp)
	offsetsFlag := flag.String("offsets", cfg.Offsets,
		"Comma separated similar colors `offsets` (channel delta or hue degrees), default depends on -strategy")
	jsonFlag := flag.Bool("json", false, "Output json instead of text")
	wheelFlag := flag.Bool("wheel", false, "Also draw a color wheel with the color marked")
	radiusFlag := flag.Int("radius", 0, "Wheel `radius`, 0 to fit the terminal")
	colorFlag := flag.String("color", "auto", "Use colors: auto (if stdout is a terminal), always or never")
	trueColorFlag := flag.Bool("truecolor", false, "Force 24 bits colors instead of 256 (default from COLORTERM)")
	interactiveFlag := flag.Bool("i", false, "Interactive mode, type ? for the list of commands")
	cli.MinArgs = 0
	cli.MaxArgs = 1
	cli.ArgsHelp = " [#RRGGBB]\nShows the values and similar colors of the color (default " + cfg.Color +
		", or $" + EnvPrefix + "COLOR)\n"
	cli.Main()
	if envErr != nil {
		log.Warnf("Ignoring invalid environment: %v", envErr)
	}
	opts := Options{
		Config: Config{
			Color:      cfg.Color,
			Brightness: *brightnessFlag,
			Strategy:   *strategyFlag,
			Offsets:    *offsetsFlag,
		},
		JSON:   *jsonFlag,
		Wheel:  *wheelFlag,
		Radius: *radiusFlag,
	}
	if flag.NArg() == 1 {
		opts.Color = flag.Arg(0)
	}
	fd := safecast.MustConvert[int](os.Stdout.Fd())
	isTerm := term.IsTerminal(fd)
	var err error
	opts.Out, err = colorOutput(*colorFlag, isTerm, *trueColorFlag)
	if err != nil {
		return log.FErrf("%v", err)
	}
	if opts.Wheel && opts.Radius == 0 {
		if isTerm {
			opts.Radius = terminalRadius(fd)
		} else {
			opts.Radius = DefaultRadius
		}
	}
	if *interactiveFlag {
		return interactive(opts)
	}
	return Run(os.Stdout, opts)
}

func interactive(opts Options) int {
	p, err := prompt.Open()
	if err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer p.Close()
	p.LoggerSetup()
	return Interactive(p, opts)
}
