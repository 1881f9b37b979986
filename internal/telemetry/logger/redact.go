package logger

import (
	"log/slog"
	"strings"
)

// Sensitive key patterns that should be redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"key",
	"credential",
	"auth",
	"bearer",
	"dsn",
}

// RedactedValue is the placeholder for redacted sensitive data.
const RedactedValue = "***REDACTED***"

// redactSensitive redacts non-empty string attributes whose key looks
// sensitive. Groups are handled recursively.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if a.Value.String() != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, RedactedValue)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// RedactMap returns a deep copy of m where every scalar value under a
// sensitive key is replaced by RedactedValue. Objects and arrays under a
// sensitive key are walked, not replaced.
func RedactMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = redactValue(v, IsSensitiveKey(k))
	}
	return out
}

func redactValue(v any, sensitive bool) any {
	switch val := v.(type) {
	case map[string]any:
		return RedactMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = redactValue(item, sensitive)
		}
		return out
	case nil:
		return nil
	case string:
		if sensitive && val != "" {
			return RedactedValue
		}
		return val
	default:
		if sensitive {
			return RedactedValue
		}
		return val
	}
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
