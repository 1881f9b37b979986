// Package logger provides structured logging for jsettings.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the process-wide default
//   - context.go: Context-aware logging with load IDs
//   - redact.go: Sensitive data redaction for log attributes and settings maps
//
// SetDefault also installs the handler as slog.Default(), which is where the
// settings loader sends diagnostics when no console or logger is configured.
package logger
