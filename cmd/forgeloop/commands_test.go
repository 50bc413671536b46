package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Soft-wa-re/forge-loop/internal/github"
	"github.com/Soft-wa-re/forge-loop/internal/ui"
	"github.com/Soft-wa-re/forge-loop/internal/urls"
)

func TestInitFailureRateLimitTipsLinkDocs(t *testing.T) {
	var buf bytes.Buffer
	printer := ui.NewPrinter(&buf)

	statusErr := &github.StatusError{
		StatusCode: 403,
		URL:        "https://api.github.com/repos/o/r/releases/latest",
		Diagnostic: "rate limit exceeded",
	}
	printInitFailure(printer, fmt.Errorf("fetching release: %w", statusErr))

	out := buf.String()
	if !strings.Contains(out, statusErr.Diagnostic) {
		t.Errorf("failure output missing diagnostic:\n%s", out)
	}
	if !strings.Contains(out, "5,000") {
		t.Errorf("failure output missing quota tip:\n%s", out)
	}
	if !strings.Contains(out, urls.TokenDocs) {
		t.Errorf("failure output missing token docs link:\n%s", out)
	}
	if !strings.Contains(out, urls.RateLimitDocs) {
		t.Errorf("failure output missing rate limit docs link:\n%s", out)
	}
}

func TestInitFailureGenericTipsWithoutStatusError(t *testing.T) {
	var buf bytes.Buffer
	printer := ui.NewPrinter(&buf)

	printInitFailure(printer, errors.New("dial tcp: connection refused"))

	out := buf.String()
	if !strings.Contains(out, "connection refused") {
		t.Errorf("failure output missing error text:\n%s", out)
	}
	if !strings.Contains(out, "FORGELOOP_LOG_LEVEL") {
		t.Errorf("failure output missing debug logging tip:\n%s", out)
	}
	if strings.Contains(out, urls.TokenDocs) {
		t.Errorf("generic failure should not carry rate limit tips:\n%s", out)
	}
}

func TestCheckWarningListsMissingTools(t *testing.T) {
	var buf bytes.Buffer
	printer := ui.NewPrinter(&buf)

	printCheckWarning(printer, []string{"claude", "gemini"}, 5)

	out := buf.String()
	if !strings.Contains(out, "WARNING") {
		t.Errorf("warning output missing banner:\n%s", out)
	}
	if !strings.Contains(out, "claude, gemini") {
		t.Errorf("warning output missing tool list:\n%s", out)
	}
	if !strings.Contains(out, "3 of 5") {
		t.Errorf("warning output missing found count:\n%s", out)
	}
}
