package prompt_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"fortio.org/colorwheel/prompt"
)

func TestReadLines(t *testing.T) {
	var out strings.Builder
	p := prompt.New(strings.NewReader("#D88DC6\r\nb 0.5\n\nlast"), &out)
	if p.IsTerminal() {
		t.Fatalf("Should not be a terminal")
	}
	p.SetPrompt("color> ") // no-op
	p.LoggerSetup()        // no-op
	expected := []string{"#D88DC6", "b 0.5", "", "last"}
	for _, e := range expected {
		l, err := p.ReadLine()
		if err != nil {
			t.Fatalf("Unexpected error %v", err)
		}
		if l != e {
			t.Errorf("Got %q, want %q", l, e)
		}
	}
	if _, err := p.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected EOF, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Nothing should be echoed, got %q", out.String())
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
}
