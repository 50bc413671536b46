package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Soft-wa-re/forge-loop/internal/agents"
	"github.com/Soft-wa-re/forge-loop/internal/github"
	"github.com/Soft-wa-re/forge-loop/internal/tracker"
)

// Step keys driven through the tracker, in workflow order.
const (
	StepPrecheck = "precheck"
	StepFetch    = "fetch"
	StepDownload = "download"
	StepExtract  = "extract"
	StepAgent    = "agent"
	StepGit      = "git"
	StepFinal    = "final"
)

// Options configures one scaffold run.
type Options struct {
	ProjectDir string       // Target directory (created if missing)
	Agent      agents.Agent // Chosen agent integration
	Script     string       // Script type ("sh" or "ps")
	Repo       string       // owner/repo hosting template releases
	Tag        string       // Release tag; empty means latest
	NoGit      bool         // Skip git initialization
}

// Result summarizes a completed scaffold run.
type Result struct {
	ProjectDir     string
	ReleaseTag     string
	AssetName      string
	BytesWritten   int64
	FilesExtracted int
	GitInitialized bool
}

// AssetName is the release asset filename for an agent and script type,
// e.g. "forgeloop-template-claude-sh.zip".
func AssetName(agentKey, script string) string {
	return fmt.Sprintf("forgeloop-template-%s-%s.zip", agentKey, script)
}

// RegisterSteps adds the workflow steps to the tracker in display order,
// all pending, before the run starts.
func RegisterSteps(trk *tracker.Tracker) {
	trk.Add(StepPrecheck, "Check target directory")
	trk.Add(StepFetch, "Fetch template release")
	trk.Add(StepDownload, "Download template")
	trk.Add(StepExtract, "Extract template")
	trk.Add(StepAgent, "Configure agent folder")
	trk.Add(StepGit, "Initialize git repository")
	trk.Add(StepFinal, "Finalize")
}

// Run executes the scaffold workflow, driving the tracker one step at a
// time on the calling goroutine. Failures mark the current step as error
// with a short detail and are returned to the caller, which owns the
// decision to retry or abort; a *github.StatusError carries the full
// diagnostic for display.
func Run(ctx context.Context, client *github.Client, trk *tracker.Tracker, opts Options) (*Result, error) {
	result := &Result{ProjectDir: opts.ProjectDir}

	// Target directory
	trk.Start(StepPrecheck, "")
	if err := os.MkdirAll(opts.ProjectDir, 0o755); err != nil {
		trk.Error(StepPrecheck, "cannot create directory")
		return nil, fmt.Errorf("creating project directory %s: %w", opts.ProjectDir, err)
	}
	trk.Complete(StepPrecheck, opts.ProjectDir)

	// Release metadata
	trk.Start(StepFetch, releaseLabel(opts.Tag))
	release, err := fetchRelease(ctx, client, opts)
	if err != nil {
		trk.Error(StepFetch, "release lookup failed")
		return nil, err
	}
	result.ReleaseTag = release.TagName
	trk.Complete(StepFetch, release.TagName)

	// Asset download
	assetName := AssetName(opts.Agent.Key, opts.Script)
	result.AssetName = assetName
	trk.Start(StepDownload, assetName)
	asset := release.FindAsset(assetName)
	if asset == nil {
		trk.Error(StepDownload, "no matching asset")
		return nil, fmt.Errorf("release %s has no asset %s", release.TagName, assetName)
	}

	tmpFile, err := os.CreateTemp("", "forgeloop-template-*.zip")
	if err != nil {
		trk.Error(StepDownload, "temp file failed")
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	written, err := client.DownloadAsset(ctx, asset, tmpPath)
	if err != nil {
		trk.Error(StepDownload, "download failed")
		return nil, err
	}
	result.BytesWritten = written
	trk.Complete(StepDownload, formatBytes(written))

	// Extraction
	trk.Start(StepExtract, "")
	files, err := ExtractZip(tmpPath, opts.ProjectDir)
	if err != nil {
		trk.Error(StepExtract, "extraction failed")
		return nil, fmt.Errorf("extracting template: %w", err)
	}
	result.FilesExtracted = files
	trk.Complete(StepExtract, fmt.Sprintf("%d files", files))

	// Agent folder check
	trk.Start(StepAgent, opts.Agent.Name)
	agentDir := filepath.Join(opts.ProjectDir, filepath.FromSlash(opts.Agent.Folder))
	if _, err := os.Stat(agentDir); err != nil {
		trk.Skip(StepAgent, opts.Agent.Folder+" not in template")
	} else {
		trk.Complete(StepAgent, opts.Agent.Folder)
	}

	// Git
	switch {
	case opts.NoGit:
		trk.Skip(StepGit, "--no-git")
	case IsRepo(opts.ProjectDir):
		trk.Skip(StepGit, "existing repository")
	case !GitAvailable():
		trk.Skip(StepGit, "git not found")
	default:
		trk.Start(StepGit, "")
		if err := InitRepo(opts.ProjectDir); err != nil {
			// Scaffolding succeeded; a git failure is not worth
			// failing the whole run over.
			trk.Error(StepGit, "git init failed")
		} else {
			result.GitInitialized = true
			trk.Complete(StepGit, "initial commit")
		}
	}

	trk.Complete(StepFinal, "project ready")
	return result, nil
}

func fetchRelease(ctx context.Context, client *github.Client, opts Options) (*github.Release, error) {
	if opts.Tag != "" {
		return client.FetchReleaseByTag(ctx, opts.Repo, opts.Tag)
	}
	return client.FetchLatestRelease(ctx, opts.Repo)
}

func releaseLabel(tag string) string {
	if tag == "" {
		return "latest"
	}
	return tag
}

// formatBytes renders a byte count in a compact human form.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
