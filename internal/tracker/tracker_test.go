package tracker

import (
	"strings"
	"testing"
)

func TestAddRegistersPendingStep(t *testing.T) {
	trk := New("Test run")
	trk.Add("fetch", "Fetch template")

	steps := trk.Steps()
	if len(steps) != 1 {
		t.Fatalf("Steps() len = %d, want 1", len(steps))
	}
	if steps[0].Key != "fetch" {
		t.Errorf("Key = %s, want fetch", steps[0].Key)
	}
	if steps[0].Status != StatusPending {
		t.Errorf("Status = %s, want pending", steps[0].Status)
	}
	if steps[0].Detail != "" {
		t.Errorf("Detail = %q, want empty", steps[0].Detail)
	}
}

func TestAddDuplicateKeyIsNoOp(t *testing.T) {
	trk := New("Test run")
	trk.Add("fetch", "Fetch template")
	trk.Start("fetch", "in progress")
	trk.Add("fetch", "Some other label")

	steps := trk.Steps()
	if len(steps) != 1 {
		t.Fatalf("Steps() len = %d, want 1", len(steps))
	}
	// First add wins; re-add must not reset status or label
	if steps[0].Label != "Fetch template" {
		t.Errorf("Label = %q, want %q", steps[0].Label, "Fetch template")
	}
	if steps[0].Status != StatusRunning {
		t.Errorf("Status = %s, want running", steps[0].Status)
	}
}

func TestTransitionsSetStatus(t *testing.T) {
	trk := New("Test run")
	trk.Add("a", "Step A")

	trk.Start("a", "")
	if trk.Steps()[0].Status != StatusRunning {
		t.Errorf("after Start: Status = %s, want running", trk.Steps()[0].Status)
	}

	trk.Complete("a", "all good")
	if trk.Steps()[0].Status != StatusDone {
		t.Errorf("after Complete: Status = %s, want done", trk.Steps()[0].Status)
	}

	trk.Error("a", "")
	if trk.Steps()[0].Status != StatusError {
		t.Errorf("after Error: Status = %s, want error", trk.Steps()[0].Status)
	}

	trk.Skip("a", "")
	if trk.Steps()[0].Status != StatusSkipped {
		t.Errorf("after Skip: Status = %s, want skipped", trk.Steps()[0].Status)
	}
}

func TestEmptyDetailPreservesStored(t *testing.T) {
	trk := New("Test run")
	trk.Add("a", "Step A")
	trk.Start("a", "release v1.2")
	trk.Complete("a", "")

	if got := trk.Steps()[0].Detail; got != "release v1.2" {
		t.Errorf("Detail = %q, want %q", got, "release v1.2")
	}
}

func TestUnknownKeyTransitionCreatesStep(t *testing.T) {
	trk := New("Test run")
	trk.Add("known", "Known")
	trk.Complete("surprise", "auto")

	steps := trk.Steps()
	if len(steps) != 2 {
		t.Fatalf("Steps() len = %d, want 2", len(steps))
	}
	created := steps[1]
	if created.Key != "surprise" {
		t.Errorf("Key = %s, want surprise", created.Key)
	}
	// Auto-created steps fall back to label=key
	if created.Label != "surprise" {
		t.Errorf("Label = %q, want %q", created.Label, "surprise")
	}
	if created.Status != StatusDone {
		t.Errorf("Status = %s, want done", created.Status)
	}
	if created.Detail != "auto" {
		t.Errorf("Detail = %q, want auto", created.Detail)
	}

	if !strings.Contains(trk.Render(), "surprise") {
		t.Error("Render() should include the auto-created step")
	}
}

func TestRenderIsPure(t *testing.T) {
	trk := New("Test run")
	trk.Add("a", "Step A")
	trk.Add("b", "Step B")
	trk.Start("a", "working")

	first := trk.Render()
	for i := 0; i < 10; i++ {
		if got := trk.Render(); got != first {
			t.Fatalf("Render() call %d differs from first call", i+2)
		}
	}
}

func TestRenderOrderAndShape(t *testing.T) {
	trk := New("Initialize demo")
	trk.Add("first", "First step")
	trk.Add("second", "Second step")
	trk.Add("third", "Third step")

	out := trk.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("Render() lines = %d, want 4 (title + 3 steps)", len(lines))
	}
	if !strings.Contains(lines[0], "Initialize demo") {
		t.Errorf("title line = %q, should contain tracker title", lines[0])
	}

	// Insertion order is display order
	order := []string{"First step", "Second step", "Third step"}
	for i, label := range order {
		if !strings.Contains(lines[i+1], label) {
			t.Errorf("line %d = %q, should contain %q", i+1, lines[i+1], label)
		}
	}

	// Middle lines use a branch guide, the last one a corner
	if !strings.Contains(lines[1], "├─") {
		t.Errorf("line 1 = %q, should use branch guide", lines[1])
	}
	if !strings.Contains(lines[3], "└─") {
		t.Errorf("last line = %q, should use corner guide", lines[3])
	}
}

func TestRefreshCallbackFiresOnMutation(t *testing.T) {
	trk := New("Test run")
	calls := 0
	trk.AttachRefresh(func() { calls++ })

	trk.Add("a", "Step A") // insert fires
	trk.Add("a", "Step A") // duplicate does not
	trk.Start("a", "")
	trk.Complete("a", "")

	if calls != 3 {
		t.Errorf("refresh calls = %d, want 3", calls)
	}
}

func TestRefreshCallbackPanicIsContained(t *testing.T) {
	trk := New("Test run")
	trk.AttachRefresh(func() { panic("display exploded") })

	// Must not panic, and state must stay intact
	trk.Add("a", "Step A")
	trk.Start("a", "working")

	steps := trk.Steps()
	if len(steps) != 1 || steps[0].Status != StatusRunning {
		t.Errorf("state corrupted by panicking callback: %+v", steps)
	}
}

// TestFramesCrossGoroutinesAsStrings replicates the live-display wiring:
// the goroutine that owns the tracker renders inside the refresh callback
// and ships the finished frame string to a consumer on another goroutine.
// Only strings cross; the consumer never touches the tracker. Run with
// -race to verify.
func TestFramesCrossGoroutinesAsStrings(t *testing.T) {
	trk := New("Test run")

	frames := make(chan string, 64)
	trk.AttachRefresh(func() {
		frames <- trk.Render()
	})

	consumed := make(chan int)
	go func() {
		n := 0
		for frame := range frames {
			if frame != "" {
				n++
			}
		}
		consumed <- n
	}()

	trk.Add("fetch", "Fetch template")
	trk.Add("extract", "Extract files")
	for i := 0; i < 50; i++ {
		trk.Start("fetch", "requesting")
		trk.Complete("fetch", "done")
		trk.Start("extract", "")
		trk.Complete("extract", "")
		trk.Error("surprise", "upserted") // unknown key, auto-created
	}
	trk.AttachRefresh(nil)
	close(frames)

	if n := <-consumed; n != 2+50*5 {
		t.Errorf("consumed %d frames, want %d", n, 2+50*5)
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusPending: "pending",
		StatusRunning: "running",
		StatusDone:    "done",
		StatusError:   "error",
		StatusSkipped: "skipped",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
