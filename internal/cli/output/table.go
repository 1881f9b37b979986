package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned KEY/VALUE table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
// Objects are flattened into dotted keys; anything else becomes one row.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	switch v := data.(type) {
	case map[string]any:
		return mapToTable(v).render(w, f.NoHeaders)
	default:
		t := &table{Headers: []string{"VALUE"}}
		t.addRow(formatValue(v))
		return t.render(w, f.NoHeaders)
	}
}

// mapToTable converts an object to rows sorted by dotted key.
func mapToTable(m map[string]any) *table {
	flat := make(map[string]any)
	flatten("", m, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range keys {
		t.addRow(k, formatValue(flat[k]))
	}
	return t
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok && len(child) > 0 {
			flatten(key, child, out)
			continue
		}
		out[key] = v
	}
}

// formatValue formats a decoded settings value for display.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		if x == "" {
			return "-"
		}
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any, map[string]any:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// table holds rows awaiting tab alignment.
type table struct {
	Headers []string
	Rows    [][]string
}

// render writes the rows, plus the header row unless noHeaders is set.
func (t *table) render(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		writeRow(tw, t.Headers)
	}
	for _, row := range t.Rows {
		writeRow(tw, row)
	}

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, cell)
	}
	io.WriteString(w, "\n")
}

// addRow appends a row.
func (t *table) addRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
