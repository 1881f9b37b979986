package logger

import "context"

type contextKey string

const (
	loggerKey contextKey = "jsettings.logger"
	loadIDKey contextKey = "jsettings.load_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithLoadID tags the context with the ID of one settings load.
func WithLoadID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, loadIDKey, id)
}

// LoadIDFromContext extracts the load ID from context.
func LoadIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(loadIDKey).(string); ok {
		return id
	}
	return ""
}

// L is a shorthand for FromContext that also adds the load ID, if any.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if id := LoadIDFromContext(ctx); id != "" {
		l = l.With("load_id", id)
	}
	return l
}
