package jsettings

import (
	"fmt"
	"io"
)

// Sink receives leveled diagnostic messages.
type Sink interface {
	Emit(level Level, message string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(level Level, message string)

// Emit calls f(level, message).
func (f SinkFunc) Emit(level Level, message string) {
	f(level, message)
}

// Logger is the leveled logger a LoggerSink dispatches to.
// *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ConsoleSink writes "{level}: {message}" lines.
type ConsoleSink struct {
	W io.Writer
}

// Emit implements Sink.
func (s ConsoleSink) Emit(level Level, message string) {
	fmt.Fprintf(s.W, "%s: %s\n", level, message)
}

// LoggerSink dispatches messages to a leveled logger.
type LoggerSink struct {
	L Logger
}

// Emit implements Sink.
func (s LoggerSink) Emit(level Level, message string) {
	switch level {
	case LevelWarning:
		s.L.Warn(message)
	case LevelError:
		s.L.Error(message)
	default:
		s.L.Info(message)
	}
}

// Report routes message through the diagnostic sink at the given level.
//
// An unsupported level returns ErrUnsupportedLevel without emitting anything.
// Level "error" emits and then returns an error carrying the message, so a
// non-nil result must be treated as raised. message may be a string, an error
// or any value printable with fmt.Sprint.
func (l *Loader) Report(message any, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	return l.report(&Error{Kind: KindReported, Message: messageText(message)}, lvl)
}

// report emits e.Message and returns e when lvl is LevelError.
func (l *Loader) report(e *Error, lvl Level) error {
	l.sink().Emit(lvl, e.Message)
	if lvl == LevelError {
		return e
	}
	return nil
}

// fail reports an error of the given kind.
func (l *Loader) fail(kind Kind, path string, cause error, message string) error {
	return l.report(&Error{Kind: kind, Message: message, Path: path, Cause: cause}, LevelError)
}

func messageText(message any) string {
	switch m := message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}
