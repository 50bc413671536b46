package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Soft-wa-re/forge-loop/internal/logging"
)

// Release represents the GitHub release JSON response.
type Release struct {
	TagName string  `json:"tag_name"` // The release tag (e.g., v1.0.0)
	Name    string  `json:"name"`     // Human-readable release name
	Assets  []Asset `json:"assets"`   // Downloadable assets
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`                 // Asset filename
	Size        int64  `json:"size"`                 // Size in bytes
	DownloadURL string `json:"browser_download_url"` // Direct download URL
}

// FetchLatestRelease fetches the latest release of the given owner/repo.
func (c *Client) FetchLatestRelease(ctx context.Context, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.BaseURL, repo)
	return c.fetchRelease(ctx, url)
}

// FetchReleaseByTag fetches a release by tag. A missing "v" prefix is
// added for convenience.
func (c *Client) FetchReleaseByTag(ctx context.Context, repo, tag string) (*Release, error) {
	if !strings.HasPrefix(tag, "v") {
		tag = "v" + tag
	}
	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", c.BaseURL, repo, tag)
	return c.fetchRelease(ctx, url)
}

func (c *Client) fetchRelease(ctx context.Context, url string) (*Release, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}

	return &release, nil
}

// FindAsset returns the release asset with the exact name, or nil when the
// release carries no such asset.
func (r *Release) FindAsset(name string) *Asset {
	for i := range r.Assets {
		if r.Assets[i].Name == name {
			return &r.Assets[i]
		}
	}
	return nil
}

// DownloadAsset streams an asset to the given path and returns the number
// of bytes written. Like every other call it is single-attempt; a partial
// file is removed on failure.
func (c *Client) DownloadAsset(ctx context.Context, asset *Asset, destPath string) (int64, error) {
	resp, err := c.Get(ctx, asset.DownloadURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", destPath, err)
	}

	written, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(destPath)
		return 0, fmt.Errorf("downloading %s: %w", asset.Name, err)
	}

	logging.LogDownload(asset.DownloadURL, written, destPath)
	return written, nil
}
