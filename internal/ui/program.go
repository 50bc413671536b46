package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer provides methods for printing UI components to a writer.
// Commands should output styled content through a Printer so tests can
// capture it.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintSuccess prints a styled success result
func (p *Printer) PrintSuccess(title string, details map[string]string) {
	result := NewSuccessResult(title, details)
	result.SetWidth(p.width)
	p.Newline()
	p.Println(result.Render())
}

// PrintFailure prints a styled failure result. The diagnostic, when
// non-empty, is rendered inside the failure box.
func (p *Printer) PrintFailure(title string, err error, diagnostic string, troubleshooting []string) {
	result := NewFailureResult(title, err, troubleshooting)
	result.SetDiagnostic(diagnostic)
	result.SetWidth(p.width)
	p.Newline()
	p.Println(result.Render())
}
