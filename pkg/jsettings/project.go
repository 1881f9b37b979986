package jsettings

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/spaolacci/murmur3"
)

// ReservedNames lists the Loader's field names, their snake_case spellings
// and its method names. A top-level settings key equal to one of them
// cannot be projected.
var ReservedNames = []string{
	// fields
	"settingsFile",
	"schemaFile",
	"console",
	"policy",
	"consoleOut",
	"logger",
	"custom",
	"reserved",
	"settings",
	"attrs",
	"settings_file",
	"schema_file",
	"console_out",
	"sink",
	// methods
	"Report",
	"LoadSettings",
	"Settings",
	"Document",
	"SettingsFile",
	"SchemaFile",
	"Console",
	"Policy",
	"Attr",
	"Lookup",
	"Keys",
	"Unmarshal",
	"Fingerprint",
}

// keyDelim separates the levels of a projected path.
const keyDelim = "."

// project checks doc's keys and loads the object into the accessor store.
// Non-object documents have nothing to project.
func (l *Loader) project(doc any) error {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}

	var bad []string
	for key := range obj {
		if _, reserved := l.reserved[key]; reserved {
			bad = append(bad, key)
		}
	}
	bad = append(bad, ambiguousPaths(obj)...)
	if len(bad) > 0 {
		sort.Strings(bad)
		return l.fail(KindAttributeCollision, l.settingsFile, nil,
			fmt.Sprintf("Attributes %v can't be imported.", bad))
	}

	k := koanf.New(keyDelim)
	if err := k.Load(confmap.Provider(obj, ""), nil); err != nil {
		return l.fail(KindAttributeCollision, l.settingsFile, err,
			fmt.Sprintf("Attributes can't be imported: %v", err))
	}
	l.attrs = k
	return nil
}

// ambiguousPaths returns the dotted paths that more than one key of obj
// resolves to, such as "a.b" for {"a.b": 1, "a": {"b": 2}}.
func ambiguousPaths(obj map[string]any) []string {
	seen := make(map[string]struct{})
	dup := make(map[string]struct{})

	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			path := k
			if prefix != "" {
				path = prefix + keyDelim + k
			}
			if _, ok := seen[path]; ok {
				dup[path] = struct{}{}
			}
			seen[path] = struct{}{}
			if child, ok := v.(map[string]any); ok {
				walk(path, child)
			}
		}
	}
	walk("", obj)

	paths := make([]string, 0, len(dup))
	for p := range dup {
		paths = append(paths, p)
	}
	return paths
}

// Attr returns the projected value of a top-level settings key.
func (l *Loader) Attr(name string) (any, bool) {
	if l.attrs == nil {
		return nil, false
	}
	obj, _ := l.settings.(map[string]any)
	v, ok := obj[name]
	return v, ok
}

// Lookup returns the projected value at a dotted path, e.g. "server.http.port".
func (l *Loader) Lookup(path string) (any, bool) {
	if l.attrs == nil || !l.attrs.Exists(path) {
		return nil, false
	}
	return l.attrs.Get(path), true
}

// Keys returns every projected dotted path that holds a leaf value.
func (l *Loader) Keys() []string {
	if l.attrs == nil {
		return nil
	}
	return l.attrs.Keys()
}

// Unmarshal decodes the projected settings into target using json tags.
func (l *Loader) Unmarshal(target any) error {
	if l.attrs == nil {
		return fmt.Errorf("jsettings: no projected settings")
	}
	return l.attrs.UnmarshalWithConf("", target, koanf.UnmarshalConf{Tag: "json"})
}

// Fingerprint hashes the canonical JSON encoding of the stored document.
// It is 0 when nothing is loaded.
func (l *Loader) Fingerprint() uint64 {
	if l.settings == nil {
		return 0
	}
	data, err := json.Marshal(l.settings)
	if err != nil {
		return 0
	}
	return murmur3.Sum64(data)
}
