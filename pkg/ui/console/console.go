// Package console prints check results to the terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/katexprobe/pkg/types"
	"github.com/arthur-debert/katexprobe/pkg/ui/styles"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer writes check lines to stdout and stderr
type Printer struct {
	Stdout io.Writer
	Stderr io.Writer

	// Styled enables lipgloss styling; text is unchanged when false
	Styled bool
}

// New creates a printer that styles output only when both streams are
// color-capable terminals.
func New(stdout, stderr io.Writer) *Printer {
	return &Printer{
		Stdout: stdout,
		Stderr: stderr,
		Styled: SupportsColor(stdout) && SupportsColor(stderr),
	}
}

// SupportsColor reports whether w is a terminal that should receive colors
func SupportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).Profile != termenv.Ascii
}

// Print writes every line of r to its stream, in order
func (p *Printer) Print(r types.CheckResult) error {
	for _, line := range r.Lines {
		if err := p.PrintLine(line); err != nil {
			return err
		}
	}
	return nil
}

// PrintLine writes a single line
func (p *Printer) PrintLine(line types.Line) error {
	w := p.Stdout
	if line.Stream == types.Stderr {
		w = p.Stderr
	}

	text := line.Text
	if p.Styled {
		text = styles.ForKind(line.Kind).Render(text)
	}

	_, err := fmt.Fprintln(w, text)
	return err
}

// Warn writes a warning line to stderr
func (p *Printer) Warn(format string, args ...interface{}) {
	text := fmt.Sprintf(format, args...)
	if p.Styled {
		text = styles.Get(styles.Warning).Render(text)
	}
	_, _ = fmt.Fprintln(p.Stderr, text)
}
