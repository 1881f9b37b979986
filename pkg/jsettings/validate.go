package jsettings

import (
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// validate compiles schema and validates settings against it.
//
// Compilation failures are InvalidSchema; non-conformance is
// SchemaValidationError. Both carry the engine's message unchanged.
func (l *Loader) validate(settings, schema any) error {
	url := l.schemaFile
	if abs, err := filepath.Abs(url); err == nil {
		url = abs
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, schema); err != nil {
		return l.fail(KindInvalidSchema, l.schemaFile, err, err.Error())
	}
	sch, err := c.Compile(url)
	if err != nil {
		return l.fail(KindInvalidSchema, l.schemaFile, err, err.Error())
	}

	if err := sch.Validate(settings); err != nil {
		return l.fail(KindSchemaValidation, l.settingsFile, err, err.Error())
	}
	return nil
}
