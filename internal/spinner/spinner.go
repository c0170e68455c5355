// Package spinner shows an animated progress line while a request is in
// flight. It only animates when writing to a terminal; for any other writer
// New returns nil and every method is a no-op.
package spinner

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

type T struct {
	*yacspin.Spinner

	file *os.File
	// prefixWidth is the width of the fixed prefix before each message line.
	prefixWidth int
}

func New(out io.Writer, title string) *T {
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}
	cfg := yacspin.Config{
		Writer:            out,
		Frequency:         100 * time.Millisecond,
		CharSet:           yacspin.CharSets[14],
		StopCharacter:     "✓",
		StopColors:        []string{"fgGreen"},
		StopFailCharacter: "✗",
		StopFailColors:    []string{"fgRed"},
		Message:           "...",
		Suffix:            fmt.Sprintf(" %s: ", title),
	}
	s, err := yacspin.New(cfg)
	if err != nil {
		return nil
	}
	return &T{
		Spinner:     s,
		file:        file,
		prefixWidth: utf8.RuneCountInString(cfg.CharSet[0] + cfg.Suffix),
	}
}

// Start creates a new spinner and starts it immediately.
func Start(out io.Writer, title string) *T {
	s := New(out, title)
	if s == nil {
		return nil
	}
	if err := s.Spinner.Start(); err != nil {
		return nil
	}
	return s
}

func (t *T) Message(msg string) {
	if t == nil {
		return
	}
	// Show the latest message if we end up failing.
	t.Spinner.StopFailMessage(msg)

	// The spinner can't wrap to a second line.
	if width := t.termWidth(); width > t.prefixWidth {
		msg = truncate(msg, width-t.prefixWidth)
	}
	t.Spinner.Message(msg)
}

func (t *T) Stop(msg string) {
	if t == nil {
		return
	}
	t.Spinner.StopMessage(msg)
	t.Spinner.Stop()
}

func (t *T) StopFail(msg string) {
	if t == nil {
		return
	}
	t.Spinner.StopFailMessage(msg)
	t.Spinner.StopFail()
}

// termWidth returns the terminal width, if known, or 0 if unknown.
func (t *T) termWidth() int {
	width, _, err := term.GetSize(int(t.file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}
