package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/colorwheel/colormath"
	"fortio.org/colorwheel/panel"
	"fortio.org/colorwheel/prompt"
	"fortio.org/log"
)

var SessionHelp = `Commands:
  #RRGGBB        select a color
  b <factor>     brightness factor (e.g. b 0.5)
  s <strategy>   similar colors strategy: ` + colormath.StrategyHelp + `
  o <offsets>    comma separated offsets, empty for the strategy's default
  w              toggle the color wheel
  j              toggle json output
  ?              this help
  q              quit
`

// Session is the interactive mode state: it owns the current selection.
type Session struct {
	Options
	Sel panel.Selection
	// offsets were set explicitly (otherwise follow the strategy's default).
	customOffsets bool
}

// NewSession starts from the options, falling back to the default color if the
// options' color is invalid.
func NewSession(o Options) (*Session, error) {
	sel, err := o.Selection()
	if errors.Is(err, colormath.ErrInvalidFormat) {
		log.Warnf("Invalid color %q, using %s: %v", o.Color, panel.DefaultColor, err)
		o.Color = panel.DefaultColor
		sel, err = o.Selection()
	}
	if err != nil {
		return nil, err
	}
	return &Session{Options: o, Sel: sel, customOffsets: strings.TrimSpace(o.Offsets) != ""}, nil
}

func (s *Session) Show(w io.Writer) error {
	return Show(w, s.Sel, s.Options)
}

// Apply executes one command line and shows the result on w. On error the
// selection is unchanged. Returns true when the user wants to quit.
func (s *Session) Apply(line string, w io.Writer) (bool, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "q", "quit", "exit":
		return true, nil
	case "?", "h", "help":
		_, err := io.WriteString(w, SessionHelp)
		return false, err
	case "":
		// redisplay
	case "b":
		b, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return false, fmt.Errorf("invalid brightness %q: %w", arg, err)
		}
		if b < 0 {
			return false, fmt.Errorf("brightness must be positive, got %g", b)
		}
		s.Sel.Brightness = b
	case "s":
		st, err := colormath.ParseStrategy(arg)
		if err != nil {
			return false, err
		}
		s.Sel.Strategy = st
		if !s.customOffsets {
			s.Sel.Offsets = colormath.DefaultOffsets(st)
		}
	case "o":
		offsets, err := ParseOffsets(arg)
		if err != nil {
			return false, err
		}
		s.customOffsets = offsets != nil
		if offsets == nil {
			offsets = colormath.DefaultOffsets(s.Sel.Strategy)
		}
		s.Sel.Offsets = offsets
	case "w":
		s.Wheel = !s.Wheel
		if s.Radius < 1 {
			s.Radius = DefaultRadius
		}
	case "j":
		s.JSON = !s.JSON
	default:
		c, err := colormath.ParseHex(cmd)
		if err != nil {
			return false, err
		}
		if arg != "" {
			return false, fmt.Errorf("unexpected %q after color %s", arg, cmd)
		}
		s.Sel.Color = c
	}
	return false, s.Show(w)
}

// Interactive reads commands until quit or end of input, returns the exit code.
// Invalid input is reported and asked again.
func Interactive(p *prompt.Prompt, o Options) int {
	s, err := NewSession(o)
	if err != nil {
		return log.FErrf("Invalid arguments: %v", err)
	}
	p.SetPrompt("color> ")
	if err = s.Show(p.Out); err != nil {
		return log.FErrf("Error writing output: %v", err)
	}
	for {
		l, err := p.ReadLine()
		if errors.Is(err, io.EOF) {
			log.LogVf("EOF received, exiting.")
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		quit, err := s.Apply(l, p.Out)
		if quit {
			return 0
		}
		if err != nil {
			log.Errf("%v (? for help)", err)
		}
	}
}
