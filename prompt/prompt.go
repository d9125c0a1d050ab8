// Package prompt reads command lines from the user, with line editing when
// stdin is a terminal.
package prompt // import "fortio.org/colorwheel/prompt"

import (
	"bufio"
	"errors"
	"io"
	"os"

	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/term"
)

type Prompt struct {
	fd       int
	oldState *term.State
	term     *term.Terminal // nil when not reading from a terminal
	scanner  *bufio.Scanner
	// Out adds the needed \r for each \n when in raw mode.
	Out io.Writer
}

// Open opens stdin as a terminal, do `defer p.Close()`
// to restore the terminal to its original state upon exit.
func Open() (*Prompt, error) {
	fd := safecast.MustConvert[int](os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return New(os.Stdin, os.Stdout), nil
	}
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	p := &Prompt{
		fd:   fd,
		term: term.NewTerminal(rw, ""),
	}
	p.Out = p.term
	var err error
	p.oldState, err = term.MakeRaw(p.fd)
	if err != nil {
		return nil, err
	}
	p.term.SetBracketedPasteMode(true)
	return p, nil
}

// New reads plain lines, without prompt nor echo, from something else than a
// terminal (pipes, tests).
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{fd: -1, scanner: bufio.NewScanner(in), Out: out}
}

func (p *Prompt) IsTerminal() bool {
	return p.term != nil
}

// LoggerSetup makes the fortio logger write through the terminal so the prompt is preserved.
// No-op when not a terminal.
func (p *Prompt) LoggerSetup() {
	if p.term == nil {
		return
	}
	// Keep same color logic as fortio logger, so flags like -logger-no-color work.
	colormode := log.ColorMode()
	log.SetOutput(p.Out)
	log.Config.ForceColor = colormode
	log.SetColorMode()
}

func (p *Prompt) SetPrompt(s string) {
	if p.term != nil {
		p.term.SetPrompt(s)
	}
}

// ReadLine returns io.EOF at the end of the input (or ^D in a terminal).
func (p *Prompt) ReadLine() (string, error) {
	if p.term == nil {
		if p.scanner.Scan() {
			return p.scanner.Text(), nil
		}
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	l, err := p.term.ReadLine()
	// Not an actual error, just signals pasted input.
	if errors.Is(err, term.ErrPasteIndicator) {
		return l, nil
	}
	return l, err
}

// Close restores the terminal state, if changed by Open.
func (p *Prompt) Close() error {
	if p.oldState == nil {
		return nil
	}
	p.term.SetPrompt("")
	err := term.Restore(p.fd, p.oldState)
	p.oldState = nil
	p.Out = os.Stdout
	log.SetOutput(os.Stderr)
	return err
}
