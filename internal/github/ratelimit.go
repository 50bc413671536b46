package github

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Soft-wa-re/forge-loop/internal/ui"
)

// Rate-limit headers sent by the GitHub API.
const (
	headerRateLimit     = "X-RateLimit-Limit"
	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
	headerRetryAfter    = "Retry-After"
)

// RateLimitInfo is the structured rate-limit metadata parsed from a
// response. Every field is optional: a nil pointer (or empty string) means
// the corresponding header was absent or unusable, never a defaulted zero.
// The value is derived, read-only, and rebuilt fresh per failed response.
type RateLimitInfo struct {
	Limit             *int       // X-RateLimit-Limit (requests/hour)
	Remaining         *int       // X-RateLimit-Remaining
	ResetEpoch        *int64     // X-RateLimit-Reset (epoch seconds)
	ResetTime         *time.Time // Reset as UTC time
	RetryAfterSeconds *int       // Retry-After when numeric
	RetryAfterRaw     string     // Retry-After verbatim when non-numeric
}

// HasData reports whether any rate-limit fact was parsed.
func (info RateLimitInfo) HasData() bool {
	return info.Limit != nil ||
		info.Remaining != nil ||
		info.ResetEpoch != nil ||
		info.RetryAfterSeconds != nil ||
		info.RetryAfterRaw != ""
}

// ParseRateLimit extracts rate-limit metadata from response headers.
// Header lookup is case-insensitive (http.Header canonicalizes keys).
// A reset epoch of zero is treated as absent rather than the epoch origin,
// and a non-numeric Retry-After degrades to the raw string instead of
// failing the whole parse.
func ParseRateLimit(headers http.Header) RateLimitInfo {
	var info RateLimitInfo

	if v := headers.Get(headerRateLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.Limit = &n
		}
	}

	if v := headers.Get(headerRateRemaining); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.Remaining = &n
		}
	}

	if v := headers.Get(headerRateReset); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil && epoch != 0 {
			reset := time.Unix(epoch, 0).UTC()
			info.ResetEpoch = &epoch
			info.ResetTime = &reset
		}
	}

	if v := headers.Get(headerRetryAfter); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			info.RetryAfterSeconds = &n
		} else {
			info.RetryAfterRaw = v
		}
	}

	return info
}

// FormatDiagnostic produces the human-readable report for a rejected API
// response: the failing status and URL, the parsed rate-limit facts when
// any were found, and fixed troubleshooting suggestions. It never fails;
// with no rate-limit headers the middle section is simply omitted.
//
// Section headers carry bold styling; callers writing to non-terminal
// sinks must strip or translate it.
func FormatDiagnostic(statusCode int, headers http.Header, url string) string {
	info := ParseRateLimit(headers)

	lines := []string{
		fmt.Sprintf("GitHub API returned status %d for %s", statusCode, url),
		"",
	}

	if info.HasData() {
		lines = append(lines, ui.SectionHeaderStyle.Render("Rate Limit Information:"))
		if info.Limit != nil {
			lines = append(lines, fmt.Sprintf("  • Rate Limit: %d requests/hour", *info.Limit))
		}
		if info.Remaining != nil {
			lines = append(lines, fmt.Sprintf("  • Remaining: %d", *info.Remaining))
		}
		if info.ResetTime != nil {
			resetLocal := info.ResetTime.Local()
			lines = append(lines, fmt.Sprintf("  • Resets at: %s", resetLocal.Format("2006-01-02 15:04:05 MST")))
		}
		if info.RetryAfterSeconds != nil {
			lines = append(lines, fmt.Sprintf("  • Retry after: %d seconds", *info.RetryAfterSeconds))
		} else if info.RetryAfterRaw != "" {
			lines = append(lines, fmt.Sprintf("  • Retry after: %s", info.RetryAfterRaw))
		}
		lines = append(lines, "")
	}

	lines = append(lines, ui.SectionHeaderStyle.Render("Troubleshooting Tips:"))
	lines = append(lines,
		"  • If you're on a shared CI or corporate environment, you may be rate-limited.",
		"  • Consider using a GitHub token via --github-token or the GH_TOKEN/GITHUB_TOKEN environment variable.",
		"  • Authenticated requests have a limit of 5,000/hour vs 60/hour for unauthenticated.",
	)

	return strings.Join(lines, "\n")
}
