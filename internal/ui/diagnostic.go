package ui

import (
	"strings"
)

// DiagnosticBox wraps a pre-formatted diagnostic report (such as the
// rate-limit report produced by the github package) in a muted rounded
// border so it reads as quoted remote-API context rather than CLI output.
type DiagnosticBox struct {
	Content string
	Width   int
}

// NewDiagnosticBox creates a diagnostic box for the given content
func NewDiagnosticBox(content string) *DiagnosticBox {
	return &DiagnosticBox{
		Content: content,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (d *DiagnosticBox) SetWidth(width int) *DiagnosticBox {
	d.Width = width
	return d
}

// Render returns the styled diagnostic box as a string
func (d *DiagnosticBox) Render() string {
	width := d.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	content := strings.TrimRight(d.Content, "\n")
	return DiagnosticBoxStyle(width).Render(content)
}
