package jsettings

import "fmt"

// Level is the severity of a diagnostic message.
type Level string

// Supported levels.
const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelInfo, LevelWarning, LevelError:
		return Level(s), nil
	}
	return "", &Error{
		Kind:    KindUnsupportedLevel,
		Message: fmt.Sprintf("Log level %s not in supported levels list (info, warning, error)", s),
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}
