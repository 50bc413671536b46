package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLiveModelShowsInitialFrame(t *testing.T) {
	m := NewLiveModel("step tree v1")

	view := m.View()
	if !strings.Contains(view, "step tree v1") {
		t.Errorf("View() = %q, want it to contain the initial frame", view)
	}
	if !strings.Contains(view, "working") {
		t.Errorf("View() = %q, want the in-progress indicator while running", view)
	}
}

func TestLiveModelAdoptsRefreshFrame(t *testing.T) {
	m := NewLiveModel("step tree v1")

	updated, _ := m.Update(RefreshMsg{Frame: "step tree v2"})
	m = updated.(LiveModel)

	view := m.View()
	if strings.Contains(view, "step tree v1") {
		t.Errorf("View() = %q, still shows the stale frame", view)
	}
	if !strings.Contains(view, "step tree v2") {
		t.Errorf("View() = %q, want the refreshed frame", view)
	}
}

func TestLiveModelDoneRendersFinalFrameOnly(t *testing.T) {
	m := NewLiveModel("step tree v1")

	updated, cmd := m.Update(DoneMsg{Frame: "final tree"})
	m = updated.(LiveModel)

	if cmd == nil {
		t.Error("Update(DoneMsg) returned no command, want quit")
	}
	view := m.View()
	if view != "final tree\n" {
		t.Errorf("View() after done = %q, want the final frame with no spinner", view)
	}
}

func TestLiveModelCtrlCQuits(t *testing.T) {
	m := NewLiveModel("step tree")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(LiveModel)

	if cmd == nil {
		t.Error("Update(ctrl+c) returned no command, want quit")
	}
	if !m.done {
		t.Error("ctrl+c did not mark the display done")
	}
}
