// Package logging provides structured logging for the forgeloop CLI.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the tool. It provides both general logging
// functions and specialized functions for API-request and step-tracking
// logging needs.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (auto-created steps, asset matching)
//   - Info: Normal operations (API requests, downloads, extraction)
//   - Warn: Non-fatal issues (rate limits, missing optional tools)
//   - Error: Fatal issues (download failures, extraction errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Downloaded asset",
//	    zap.String("url", assetURL),
//	    zap.Int64("bytes", written),
//	)
//
// # Configuration
//
// Logging is controlled by the FORGELOOP_LOG_LEVEL environment variable.
// When unset, logging is silent so the styled terminal output is not
// interleaved with log lines:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
