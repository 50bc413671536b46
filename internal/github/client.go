package github

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Soft-wa-re/forge-loop/internal/logging"
)

const (
	// DefaultAPIBase is the GitHub REST API endpoint
	DefaultAPIBase = "https://api.github.com"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies forgeloop to the API
	DefaultUserAgent = "forgeloop-cli"
)

// Environment variables checked for an API token, in precedence order
// after the explicit flag value.
const (
	TokenEnvVar    = "GH_TOKEN"
	TokenEnvVarAlt = "GITHUB_TOKEN"
)

// Client is the long-lived HTTPS client for release API calls. Server
// certificates are verified against the operating system trust store, not
// a bundled certificate file, which matters in locked-down corporate/CI
// environments where a vendored CA bundle is routinely rejected or missing.
//
// One Client is constructed per run and reused for every request; after
// construction it is read-only configuration state, so no locking is
// needed around it. Requests are blocking, synchronous, single-attempt:
// retry policy, if any, belongs to the caller.
type Client struct {
	// BaseURL is the API endpoint (default: https://api.github.com)
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string

	// token is the resolved bearer token; empty means anonymous.
	// Never logged or echoed.
	token string
}

// NewClient creates a release API client. The explicit token argument
// takes precedence over the GH_TOKEN and GITHUB_TOKEN environment
// variables; when none yields a non-empty value the client proceeds
// anonymous, which is not an error.
func NewClient(explicitToken string) (*Client, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		return nil, fmt.Errorf("loading system trust store: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{RootCAs: pool}

	return &Client{
		BaseURL: DefaultAPIBase,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   DefaultTimeout,
		},
		UserAgent: DefaultUserAgent,
		token:     ResolveToken(explicitToken),
	}, nil
}

// ResolveToken resolves an API token by precedence: explicit argument,
// then GH_TOKEN, then GITHUB_TOKEN. Whitespace-only values count as
// absent. An empty result means anonymous access.
func ResolveToken(explicit string) string {
	for _, candidate := range []string{explicit, os.Getenv(TokenEnvVar), os.Getenv(TokenEnvVarAlt)} {
		if token := strings.TrimSpace(candidate); token != "" {
			return token
		}
	}
	return ""
}

// Authenticated reports whether the client resolved a token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// AuthHeaders returns the Authorization header for the resolved token, or
// an empty map when the client is anonymous.
func (c *Client) AuthHeaders() map[string]string {
	if c.token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + c.token}
}

// Get performs a single GET request. Non-2xx responses are returned as a
// *StatusError carrying the status code, the URL, and a classified
// diagnostic; the response is fully consumed and closed in that case.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.UserAgent)
	for key, value := range c.AuthHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}

	logging.LogRequest(http.MethodGet, url, resp.StatusCode, c.Authenticated())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := classify(resp.StatusCode, resp.Header, url)
		resp.Body.Close()
		return nil, statusErr
	}

	return resp, nil
}

// StatusError is a non-2xx API response. Diagnostic always contains the
// raw status code and URL; when the rejection looked like rate limiting it
// additionally carries the parsed rate-limit report.
type StatusError struct {
	StatusCode int
	URL        string
	Diagnostic string
	RateLimit  RateLimitInfo
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d for %s", e.StatusCode, e.URL)
}

// classify builds the StatusError for a rejected response. A 403 or 429
// accompanied by rate-limit headers gets the full rate-limit diagnostic;
// everything else gets the generic status/URL message. The presence of the
// headers, not just the status code, decides which message is shown.
func classify(statusCode int, headers http.Header, url string) *StatusError {
	info := ParseRateLimit(headers)

	if isRateLimitStatus(statusCode) && info.HasData() {
		remaining := headers.Get(headerRateRemaining)
		var resetEpoch int64
		if info.ResetEpoch != nil {
			resetEpoch = *info.ResetEpoch
		}
		logging.LogRateLimit(url, remaining, resetEpoch)

		return &StatusError{
			StatusCode: statusCode,
			URL:        url,
			Diagnostic: FormatDiagnostic(statusCode, headers, url),
			RateLimit:  info,
		}
	}

	return &StatusError{
		StatusCode: statusCode,
		URL:        url,
		Diagnostic: fmt.Sprintf("request failed with status %d for %s", statusCode, url),
	}
}

// isRateLimitStatus reports whether the status code is characteristic of
// rate limiting. GitHub uses 403 for primary limits and 429 for secondary.
func isRateLimitStatus(statusCode int) bool {
	return statusCode == http.StatusForbidden || statusCode == http.StatusTooManyRequests
}
