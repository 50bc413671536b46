package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the forgeloop CLI
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#00B7C3") // Cyan - banner, tree title, running steps
	SuccessColor = lipgloss.Color("#43BF6D") // Green - completed steps, success boxes
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, failure boxes
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings, skipped steps
	MutedColor   = lipgloss.Color("#626262") // Gray - pending steps, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for forgeloop output
var (
	// BannerStyle is for the ASCII-art banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// TaglineStyle is for the tagline under the banner
	TaglineStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// TreeTitleStyle is for the step tree title line
	TreeTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// TreeGuideStyle is for the tree guide characters
	TreeGuideStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// StepDoneStyle is for completed step markers
	StepDoneStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// StepRunningStyle is for currently running step markers
	StepRunningStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor)

	// StepPendingStyle is for pending step markers and labels
	StepPendingStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// StepErrorStyle is for failed step markers
	StepErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// StepSkippedStyle is for skipped step markers
	StepSkippedStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	// StepLabelStyle is for active step labels
	StepLabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// StepDetailStyle is for step detail text in parentheses
	StepDetailStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for the warning result title
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// SectionHeaderStyle is for emphasized section headers inside
	// diagnostics ("Rate Limit Information:", "Troubleshooting Tips:")
	SectionHeaderStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)

	// HeaderTitleStyle is for the init command title
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the invoked command path
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Agent:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Step status markers. Filled dots for terminal states that did work,
// hollow dots for states that have not (or did not) run.
const (
	MarkerDone    = "●"
	MarkerPending = "○"
	MarkerRunning = "○"
	MarkerError   = "●"
	MarkerSkipped = "○"
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "!"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal. The init
// command uses this to decide between the live display and plain output.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// SuccessBoxStyle returns the border style for success result boxes
func SuccessBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width - 2).
		Padding(0, 2)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, 2)
}

// WarningBoxStyle returns the border style for warning result boxes
func WarningBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Width(width - 2).
		Padding(0, 2)
}

// DiagnosticBoxStyle returns the border style for API diagnostic boxes
func DiagnosticBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width - 4).
		Padding(0, 1)
}

// TroubleshootingBoxStyle returns the border style for troubleshooting sections
func TroubleshootingBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width - 8). // Indented within error box
		Padding(0, 1)
}
