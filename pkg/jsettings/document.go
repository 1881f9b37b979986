package jsettings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
)

// loadJSONFile reads and decodes the document at path.
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
// On failure the error has already been emitted and the document is nil.
func (l *Loader) loadJSONFile(path string) (any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, l.fail(KindFileAccess, path, err,
			fmt.Sprintf("No such file or directory: %s", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, l.fail(KindFileAccess, path, err,
			fmt.Sprintf("Can't open file %s", path))
	}

	if isYAML(path) {
		doc, err := decodeYAML(data)
		if err != nil {
			return nil, l.fail(KindMalformedJSON, path, err,
				fmt.Sprintf("File %s is not a yaml file", path))
		}
		return doc, nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, l.fail(KindMalformedJSON, path, err,
			fmt.Sprintf("File %s is not a json file", path))
	}
	return doc, nil
}

// decodeYAML parses a YAML document and re-encodes it through JSON so the
// result has the same value types as a JSON document: timestamps become
// RFC 3339 strings and every number becomes a float64.
func decodeYAML(data []byte) (any, error) {
	m, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// isEmptyDocument reports whether v carries no data: null, false, zero,
// an empty string, an empty object or an empty array.
func isEmptyDocument(v any) bool {
	switch d := v.(type) {
	case nil:
		return true
	case bool:
		return !d
	case float64:
		return d == 0
	case int:
		return d == 0
	case string:
		return d == ""
	case map[string]any:
		return len(d) == 0
	case []any:
		return len(d) == 0
	}
	return false
}
