// Package cli holds helpers for the non-interactive commands' output.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

var (
	bold = color.New(color.Bold).SprintfFunc()
	key  = color.New(color.FgCyan).SprintfFunc()
)

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out: out,
	}
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.out, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) {
	p.Printf("❌ %s\n", err)
}

// PrintHeader prints a bold section title.
func (p *Printer) PrintHeader(title string) {
	p.Println(bold(title))
}

// PrintSetting prints one "name: value" line, with an indicator for values
// that come from the defaults.
func (p *Printer) PrintSetting(name string, value any, isDefault bool) {
	line := fmt.Sprintf("  %s: %v", key(name), value)
	if isDefault {
		line += color.New(color.Faint).Sprint(" (default)")
	}
	p.Println(line)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth returns the width of the terminal behind w, or fallback when
// w is not a terminal.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(w) {
		return fallback
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
