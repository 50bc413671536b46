package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output) so the curated CLI
// output stays clean.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "FORGELOOP_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks FORGELOOP_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the FORGELOOP_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected log output in CLI commands
		logger = zap.NewNop()
	}
	return logger
}

// Sync flushes any buffered log entries
func Sync() {
	_ = GetLogger().Sync()
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogRequest logs an outbound API request and its result status.
// The bearer token, when one was attached, is never logged.
func LogRequest(method string, url string, statusCode int, authenticated bool) {
	Info("API request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Bool("authenticated", authenticated),
	)
}

// LogRateLimit logs parsed rate-limit metadata from a rejected response.
func LogRateLimit(url string, remaining string, resetEpoch int64) {
	Warn("Rate limit encountered",
		zap.String("url", url),
		zap.String("remaining", remaining),
		zap.Int64("reset_epoch", resetEpoch),
	)
}

// LogStepAutoCreated logs a step that was created on the fly by a status
// transition rather than registered up front. This keeps the permissive
// upsert behavior of the tracker observable.
func LogStepAutoCreated(key string, status string) {
	Debug("Step auto-created on transition",
		zap.String("step", key),
		zap.String("status", status),
	)
}

// LogDownload logs a completed template download.
func LogDownload(url string, bytes int64, dest string) {
	Info("Downloaded asset",
		zap.String("url", url),
		zap.Int64("bytes", bytes),
		zap.String("dest", dest),
	)
}
