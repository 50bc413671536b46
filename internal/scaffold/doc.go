// Package scaffold downloads and extracts template bundles into new
// projects.
//
// The workflow runs one step at a time on the caller's goroutine, driving
// a step tracker through precheck, release lookup, download, extraction,
// agent folder verification, and git initialization. Network failures are
// surfaced unmodified to the caller; only the failing step's display state
// is updated here.
package scaffold
