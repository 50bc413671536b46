package tracker

import (
	"strings"

	"github.com/Soft-wa-re/forge-loop/internal/logging"
	"github.com/Soft-wa-re/forge-loop/internal/ui"
)

// Status is the display state of a single step.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusDone
	StatusError
	StatusSkipped
)

// String returns the lowercase name of the status
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Step is one named unit of orchestrated work with a displayable status.
type Step struct {
	Key    string // Unique identifier within the tracker
	Label  string // Display name
	Status Status // Current display state
	Detail string // Free-text detail shown after the label
}

// Tracker maintains an ordered list of named steps and renders them as a
// tree. It is a passive state holder: any transition call may set any state
// at any time, and transitions on unknown keys create the step on the fly.
// Ordering and validity of the underlying real-world sequence is the
// caller's responsibility.
//
// A Tracker is not safe for concurrent mutation; one workflow goroutine
// must own it. The attached refresh callback runs synchronously after each
// mutation and must be fast and non-blocking.
type Tracker struct {
	title   string
	steps   []*Step
	index   map[string]*Step
	refresh func()
}

// New creates an empty tracker with the given display title.
func New(title string) *Tracker {
	return &Tracker{
		title: title,
		index: make(map[string]*Step),
	}
}

// AttachRefresh stores a callback invoked after every state mutation,
// typically bound to a live display repaint. The tracker holds the callback
// but never owns the display resource behind it.
func (t *Tracker) AttachRefresh(cb func()) {
	t.refresh = cb
}

// Add registers a step in pending status with empty detail. Adding an
// existing key is a no-op: it does not reorder and does not reset status.
func (t *Tracker) Add(key, label string) {
	if _, ok := t.index[key]; ok {
		return
	}
	step := &Step{Key: key, Label: label, Status: StatusPending}
	t.steps = append(t.steps, step)
	t.index[key] = step
	t.notifyBestEffort()
}

// Start transitions the named step to running.
func (t *Tracker) Start(key, detail string) {
	t.update(key, StatusRunning, detail)
}

// Complete transitions the named step to done.
func (t *Tracker) Complete(key, detail string) {
	t.update(key, StatusDone, detail)
}

// Error transitions the named step to error.
func (t *Tracker) Error(key, detail string) {
	t.update(key, StatusError, detail)
}

// Skip transitions the named step to skipped.
func (t *Tracker) Skip(key, detail string) {
	t.update(key, StatusSkipped, detail)
}

// update applies a status transition with upsert semantics: an unknown key
// creates the step on the fly with label=key rather than failing. A
// non-empty detail replaces the stored detail; an empty one preserves it.
func (t *Tracker) update(key string, status Status, detail string) {
	if step, ok := t.index[key]; ok {
		step.Status = status
		if detail != "" {
			step.Detail = detail
		}
		t.notifyBestEffort()
		return
	}

	// Auto-creation keeps transition calls infallible; log it so caller
	// mistakes (a transition on a never-registered key) stay visible.
	logging.LogStepAutoCreated(key, status.String())
	step := &Step{Key: key, Label: key, Status: status, Detail: detail}
	t.steps = append(t.steps, step)
	t.index[key] = step
	t.notifyBestEffort()
}

// notifyBestEffort invokes the refresh callback, discarding any panic it
// raises. Display failures must never corrupt tracker state or interrupt
// the workflow driving it.
func (t *Tracker) notifyBestEffort() {
	if t.refresh == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	t.refresh()
}

// Steps returns a snapshot copy of the current steps in display order.
func (t *Tracker) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i, step := range t.steps {
		out[i] = *step
	}
	return out
}

// Render produces the tree-shaped textual representation of the steps, one
// line per step in insertion order. It is a pure projection with no side
// effects and is safe to call at arbitrary rate from the goroutine that
// owns the tracker; a display on another goroutine must consume rendered
// frames (for example via the refresh callback), not call Render itself.
func (t *Tracker) Render() string {
	var b strings.Builder
	b.WriteString(ui.TreeTitleStyle.Render(t.title))

	for i, step := range t.steps {
		guide := "├─"
		if i == len(t.steps)-1 {
			guide = "└─"
		}
		b.WriteString("\n")
		b.WriteString(ui.TreeGuideStyle.Render(guide))
		b.WriteString(" ")
		b.WriteString(renderStep(step))
	}

	return b.String()
}

// renderStep produces the marker, label, and detail for one step line.
func renderStep(step *Step) string {
	detail := strings.TrimSpace(step.Detail)

	var marker string
	switch step.Status {
	case StatusDone:
		marker = ui.StepDoneStyle.Render(ui.MarkerDone)
	case StatusRunning:
		marker = ui.StepRunningStyle.Render(ui.MarkerRunning)
	case StatusError:
		marker = ui.StepErrorStyle.Render(ui.MarkerError)
	case StatusSkipped:
		marker = ui.StepSkippedStyle.Render(ui.MarkerSkipped)
	default:
		marker = ui.StepPendingStyle.Render(ui.MarkerPending)
	}

	// Pending steps render fully muted; active ones get a bright label
	// with the detail in muted parentheses.
	if step.Status == StatusPending {
		text := step.Label
		if detail != "" {
			text += " (" + detail + ")"
		}
		return marker + " " + ui.StepPendingStyle.Render(text)
	}

	line := marker + " " + ui.StepLabelStyle.Render(step.Label)
	if detail != "" {
		line += " " + ui.StepDetailStyle.Render("("+detail+")")
	}
	return line
}
