// Package console is the dialect's Screen collaborator (spec.md §5):
// the one place that writes user-visible error text and status lines.
// Styled on gmofishsauce-wut4's kryptco-kr sibling pack's color.go and
// logging.go — a handful of color-wrapped print helpers over a
// terminal-aware backend — adapted from ssh-agent diagnostics to the
// BASIC interpreter's error/status surface.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Screen is the output boundary internal/floaterr writes through; a
// test double can substitute a plain buffer.
type Screen interface {
	Error(msg string)
	Status(msg string)
}

// Term is the default Screen: colored output when stdout is a real
// terminal, plain text otherwise (spec.md §6 "external interfaces").
type Term struct {
	out      io.Writer
	colorize bool
}

// NewTerm inspects fd 1 with golang.org/x/term to decide whether to
// colorize; redirected output (a file, a pipe) never gets escape codes.
func NewTerm() *Term {
	return &Term{
		out:      os.Stdout,
		colorize: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (t *Term) Error(msg string) {
	if t.colorize {
		red := color.New(color.FgHiRed)
		red.EnableColor()
		fmt.Fprintln(t.out, red.SprintFunc()(msg))
		return
	}
	fmt.Fprintln(t.out, msg)
}

func (t *Term) Status(msg string) {
	if t.colorize {
		cyan := color.New(color.FgHiCyan)
		cyan.EnableColor()
		fmt.Fprintln(t.out, cyan.SprintFunc()(msg))
		return
	}
	fmt.Fprintln(t.out, msg)
}

// Buffer is a non-terminal Screen for tests: it never colorizes and
// records every line written.
type Buffer struct {
	Errors   []string
	Statuses []string
}

func (b *Buffer) Error(msg string)  { b.Errors = append(b.Errors, msg) }
func (b *Buffer) Status(msg string) { b.Statuses = append(b.Statuses, msg) }
