// Package jsettings loads a JSON settings document, validates it against a
// JSON Schema document and exposes the validated values.
//
// The package is organized as:
//
//   - loader.go: Loader construction, options and LoadSettings
//   - document.go: Reading and decoding settings/schema files
//   - validate.go: JSON Schema compilation and validation
//   - project.go: Projection of top-level keys onto accessors
//   - sink.go: Diagnostic sinks (console, logger) and Report
//   - errors.go: Error kinds and sentinel errors
//
// Usage:
//
//	l := jsettings.New(
//		jsettings.WithSettingsFile("settings.json"),
//		jsettings.WithSchemaFile("settings_schema.json"),
//	)
//	if err := l.LoadSettings(); err != nil {
//		return err
//	}
//	port, _ := l.Lookup("server.port")
//
// Every failure is emitted through the configured diagnostic sink before it is
// returned, so callers never need to log loader errors themselves.
//
// A Loader is not safe for concurrent use. Callers sharing one across
// goroutines must serialize calls.
package jsettings
