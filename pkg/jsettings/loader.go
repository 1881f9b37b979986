package jsettings

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/v2"
)

// Default file names.
const (
	DefaultSettingsFile = "settings.json"
	DefaultSchemaFile   = "settings_schema.json"
)

// Policy selects how strictly LoadSettings treats its inputs.
type Policy string

const (
	// PolicyStrict raises on every file or validation problem and projects
	// the validated settings after a collision check.
	PolicyStrict Policy = "strict"
	// PolicyLenient warns and skips validation when a document is empty,
	// and performs no projection.
	PolicyLenient Policy = "lenient"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(s)); p {
	case PolicyStrict, PolicyLenient:
		return p, nil
	}
	return "", fmt.Errorf("unsupported policy %q (strict, lenient)", s)
}

// Loader loads and validates a settings document.
type Loader struct {
	settingsFile string
	schemaFile   string
	console      bool
	policy       Policy

	consoleOut io.Writer
	logger     Logger
	custom     Sink

	reserved map[string]struct{}

	// settings is nil until a load succeeds.
	settings any
	attrs    *koanf.Koanf
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithSettingsFile sets the settings document path.
func WithSettingsFile(path string) Option {
	return func(l *Loader) {
		l.settingsFile = path
	}
}

// WithSchemaFile sets the schema document path.
func WithSchemaFile(path string) Option {
	return func(l *Loader) {
		l.schemaFile = path
	}
}

// WithConsole routes diagnostics to the console instead of the logger.
func WithConsole(console bool) Option {
	return func(l *Loader) {
		l.console = console
	}
}

// WithConsoleWriter sets the console destination (stdout by default).
func WithConsoleWriter(w io.Writer) Option {
	return func(l *Loader) {
		l.consoleOut = w
	}
}

// WithLogger sets the logger used when console mode is off.
// Defaults to slog.Default() at emit time.
func WithLogger(logger Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithSink replaces console and logger routing with sink.
func WithSink(sink Sink) Option {
	return func(l *Loader) {
		l.custom = sink
	}
}

// WithPolicy sets the load policy.
func WithPolicy(p Policy) Option {
	return func(l *Loader) {
		l.policy = p
	}
}

// WithReservedNames adds names that settings keys must not use.
func WithReservedNames(names ...string) Option {
	return func(l *Loader) {
		for _, n := range names {
			l.reserved[n] = struct{}{}
		}
	}
}

// New creates a loader. It does not touch the filesystem.
func New(opts ...Option) *Loader {
	l := &Loader{
		settingsFile: DefaultSettingsFile,
		schemaFile:   DefaultSchemaFile,
		policy:       PolicyStrict,
		reserved:     make(map[string]struct{}, len(ReservedNames)),
	}
	for _, n := range ReservedNames {
		l.reserved[n] = struct{}{}
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// sink resolves the diagnostic sink for the current configuration.
func (l *Loader) sink() Sink {
	if l.custom != nil {
		return l.custom
	}
	if l.console {
		w := l.consoleOut
		if w == nil {
			w = os.Stdout
		}
		return ConsoleSink{W: w}
	}
	if l.logger != nil {
		return LoggerSink{L: l.logger}
	}
	return LoggerSink{L: slog.Default()}
}

// SettingsFile returns the settings document path.
func (l *Loader) SettingsFile() string { return l.settingsFile }

// SchemaFile returns the schema document path.
func (l *Loader) SchemaFile() string { return l.schemaFile }

// Console reports whether diagnostics go to the console.
func (l *Loader) Console() bool { return l.console }

// Policy returns the load policy.
func (l *Loader) Policy() Policy { return l.policy }

// LoadSettings reads both documents, validates the settings against the
// schema and, on success, stores and projects the settings.
//
// The stored settings are reset first and stay empty on any failure.
func (l *Loader) LoadSettings() error {
	l.reset()

	settings, err := l.loadJSONFile(l.settingsFile)
	if err != nil {
		return err
	}
	schema, err := l.loadJSONFile(l.schemaFile)
	if err != nil {
		return err
	}

	if l.policy == PolicyLenient && (isEmptyDocument(settings) || isEmptyDocument(schema)) {
		return l.report(&Error{
			Kind: KindReported,
			Message: fmt.Sprintf("Settings file %s or schema file %s is empty, nothing to validate",
				l.settingsFile, l.schemaFile),
		}, LevelWarning)
	}

	if err := l.validate(settings, schema); err != nil {
		return err
	}

	if l.policy == PolicyLenient {
		l.settings = settings
		return nil
	}

	if err := l.project(settings); err != nil {
		return err
	}
	l.settings = settings
	return nil
}

func (l *Loader) reset() {
	l.settings = nil
	l.attrs = nil
}

// Document returns the last validated document, or nil.
func (l *Loader) Document() any {
	return l.settings
}

// Settings returns a shallow copy of the validated settings object.
// It is empty when nothing is loaded or the document is not an object.
func (l *Loader) Settings() map[string]any {
	obj, _ := l.settings.(map[string]any)
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	return out
}
