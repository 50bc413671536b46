package scaffold

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Soft-wa-re/forge-loop/internal/agents"
	"github.com/Soft-wa-re/forge-loop/internal/github"
	"github.com/Soft-wa-re/forge-loop/internal/tracker"
)

// templateServer serves a release with one claude/sh template asset whose
// zip contains a README and the agent folder.
func templateServer(t *testing.T) *httptest.Server {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"forgeloop-template/README.md":           "# scaffolded",
		"forgeloop-template/.claude/settings.md": "agent settings",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry: %v", err)
		}
		w.Write([]byte(content))
	}
	zw.Close()
	archive := buf.Bytes()

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/repos/acme/templates/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name":"v0.4.0","assets":[{"name":"forgeloop-template-claude-sh.zip","size":%d,"browser_download_url":"%s/download/forgeloop-template-claude-sh.zip"}]}`,
			len(archive), server.URL)
	})
	mux.HandleFunc("/download/forgeloop-template-claude-sh.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	})

	server = httptest.NewServer(mux)
	return server
}

func newTestClient(t *testing.T, baseURL string) *github.Client {
	t.Helper()
	t.Setenv(github.TokenEnvVar, "")
	t.Setenv(github.TokenEnvVarAlt, "")

	client, err := github.NewClient("")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	client.BaseURL = baseURL
	return client
}

func claudeAgent(t *testing.T) agents.Agent {
	t.Helper()
	agent, err := agents.Lookup("claude")
	if err != nil {
		t.Fatalf("Lookup(claude) error = %v", err)
	}
	return agent
}

func TestRunScaffoldsProject(t *testing.T) {
	server := templateServer(t)
	defer server.Close()

	client := newTestClient(t, server.URL)
	trk := tracker.New("test")
	RegisterSteps(trk)

	projectDir := filepath.Join(t.TempDir(), "my-project")
	result, err := Run(context.Background(), client, trk, Options{
		ProjectDir: projectDir,
		Agent:      claudeAgent(t),
		Script:     "sh",
		Repo:       "acme/templates",
		NoGit:      true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.ReleaseTag != "v0.4.0" {
		t.Errorf("ReleaseTag = %q, want v0.4.0", result.ReleaseTag)
	}
	if result.FilesExtracted != 2 {
		t.Errorf("FilesExtracted = %d, want 2", result.FilesExtracted)
	}
	if result.GitInitialized {
		t.Error("GitInitialized = true with NoGit set")
	}

	if _, err := os.Stat(filepath.Join(projectDir, "README.md")); err != nil {
		t.Errorf("README.md not scaffolded: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, ".claude", "settings.md")); err != nil {
		t.Errorf(".claude folder not scaffolded: %v", err)
	}

	// Step states reflect the run
	wantStatus := map[string]tracker.Status{
		StepPrecheck: tracker.StatusDone,
		StepFetch:    tracker.StatusDone,
		StepDownload: tracker.StatusDone,
		StepExtract:  tracker.StatusDone,
		StepAgent:    tracker.StatusDone,
		StepGit:      tracker.StatusSkipped,
		StepFinal:    tracker.StatusDone,
	}
	for _, step := range trk.Steps() {
		want, ok := wantStatus[step.Key]
		if !ok {
			t.Errorf("unexpected step %s", step.Key)
			continue
		}
		if step.Status != want {
			t.Errorf("step %s status = %s, want %s", step.Key, step.Status, want)
		}
	}
}

func TestRunMissingAssetFailsDownloadStep(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v0.4.0","assets":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	trk := tracker.New("test")
	RegisterSteps(trk)

	_, err := Run(context.Background(), client, trk, Options{
		ProjectDir: filepath.Join(t.TempDir(), "p"),
		Agent:      claudeAgent(t),
		Script:     "sh",
		Repo:       "acme/templates",
		NoGit:      true,
	})
	if err == nil {
		t.Fatal("Run() should fail when the release has no matching asset")
	}

	for _, step := range trk.Steps() {
		if step.Key == StepDownload && step.Status != tracker.StatusError {
			t.Errorf("download step status = %s, want error", step.Status)
		}
		if step.Key == StepExtract && step.Status != tracker.StatusPending {
			t.Errorf("extract step status = %s, want pending (never reached)", step.Status)
		}
	}
}

func TestRunAPIRejectionPropagatesStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	trk := tracker.New("test")
	RegisterSteps(trk)

	_, err := Run(context.Background(), client, trk, Options{
		ProjectDir: filepath.Join(t.TempDir(), "p"),
		Agent:      claudeAgent(t),
		Script:     "sh",
		Repo:       "acme/templates",
		NoGit:      true,
	})

	statusErr, ok := err.(*github.StatusError)
	if !ok {
		t.Fatalf("error type = %T, want *github.StatusError propagated unmodified", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", statusErr.StatusCode)
	}

	for _, step := range trk.Steps() {
		if step.Key == StepFetch && step.Status != tracker.StatusError {
			t.Errorf("fetch step status = %s, want error", step.Status)
		}
	}
}
