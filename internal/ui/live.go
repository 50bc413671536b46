package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RefreshMsg carries a freshly rendered frame to the live display. The
// workflow goroutine renders the frame itself (it owns the state being
// projected) and sends only the resulting string; the display never reads
// workflow state. Bubble Tea's event loop coalesces bursts into single
// repaints, so the sender never needs to rate-limit itself.
type RefreshMsg struct {
	Frame string
}

// DoneMsg tells the live display the workflow has finished, carrying the
// final frame. The display renders it once more and exits.
type DoneMsg struct {
	Frame string
}

// LiveModel is a Bubble Tea model that shows the most recently received
// frame while a workflow runs on another goroutine. The model holds only
// strings handed to it through messages; it shares no state with the
// workflow.
type LiveModel struct {
	frame string
	spin  spinner.Model
	done  bool
	width int
}

// NewLiveModel creates a live display starting from an initial frame.
func NewLiveModel(initialFrame string) LiveModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(PrimaryColor)

	width, _ := GetTerminalSize()
	return LiveModel{
		frame: initialFrame,
		spin:  s,
		width: width,
	}
}

// Init implements tea.Model
func (m LiveModel) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.frame = msg.Frame
		return m, nil
	case DoneMsg:
		m.frame = msg.Frame
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// Input is ignored while the workflow runs; Ctrl+C still asks
		// Bubble Tea to tear the display down. The workflow goroutine
		// keeps running until its blocking call returns.
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m LiveModel) View() string {
	if m.done {
		return m.frame + "\n"
	}

	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(m.spin.View())
	b.WriteString(StepDetailStyle.Render(" working..."))
	b.WriteString("\n")
	return b.String()
}

// RunLive runs the live display until the workflow signals completion.
// The workflow runs on its own goroutine with the notify function attached
// as the tracker's refresh callback. Each notify call renders the frame on
// the workflow goroutine, where all mutations happen, and sends the string
// across; the display goroutine never touches the tracker.
func RunLive(render func() string, workflow func(notify func())) error {
	model := NewLiveModel(render())
	p := tea.NewProgram(model)

	go func() {
		workflow(func() {
			p.Send(RefreshMsg{Frame: render()})
		})
		p.Send(DoneMsg{Frame: render()})
	}()

	_, err := p.Run()
	return err
}
