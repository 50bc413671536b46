// Package ui provides terminal UI components for the forgeloop CLI.
//
// This package uses Bubble Tea and Lipgloss to render polished terminal
// output. Most components follow a "run once and exit" pattern; the one
// exception is the live display, which repaints the step tree while the
// init workflow runs on another goroutine.
//
// # Architecture
//
// The UI package provides these component types:
//
//   - Banner: ASCII-art banner printed by the root command
//   - Header: Command banner showing operation name and parameters
//   - LiveModel: Bubble Tea model repainting received frames
//   - Result: Success/failure/warning boxes with styled information
//   - DiagnosticBox: Quoted remote-API diagnostic output
//
// # Live Display
//
// The init command owns a step tracker and runs its workflow on a
// goroutine while RunLive drives the display:
//
//	err := ui.RunLive(trk.Render, func(notify func()) {
//	    trk.AttachRefresh(notify)
//	    // ... drive steps ...
//	})
//
// Each notify call renders the frame on the workflow goroutine — the one
// that owns the tracker — and sends only the resulting string to the
// display. Bubble Tea coalesces repaints, so callers never rate-limit
// their own updates.
//
// # Logging Integration
//
// This package expects logging to be controlled via the FORGELOOP_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
