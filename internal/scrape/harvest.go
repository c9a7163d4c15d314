package scrape

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/astrium/megascan/internal/dataset"
)

// HarvestJSON scrapes nested JSON report files matched by the given glob
// patterns into one flat table: one row per file, keyed by file base name,
// with nested object keys flattened into sep-joined column names. The column
// set is the sorted union across all files; cells absent from a file stay
// empty.
func HarvestJSON(patterns []string, sep string) (*dataset.Table, error) {
	if sep == "" {
		sep = "."
	}
	paths, err := Files(patterns)
	if err != nil {
		return nil, err
	}

	type row struct {
		key   string
		cells map[string]string
	}
	var rows []row
	columns := map[string]bool{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		cells := map[string]string{}
		flatten(doc, "", sep, cells)
		for c := range cells {
			columns[c] = true
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		rows = append(rows, row{key: name, cells: cells})
	}

	cols := make([]string, 0, len(columns))
	for c := range columns {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	t := &dataset.Table{
		IndexColumn: "source",
		Columns:     append([]string{"source"}, cols...),
	}
	for _, r := range rows {
		cells := make([]string, 0, len(t.Columns))
		cells = append(cells, r.key)
		for _, c := range cols {
			cells = append(cells, r.cells[c])
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// flatten walks nested objects depth-first, joining key paths with sep.
// Arrays and scalars become string cells; arrays are comma-joined.
func flatten(v any, prefix, sep string, out map[string]string) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			key := k
			if prefix != "" {
				key = prefix + sep + k
			}
			flatten(child, key, sep, out)
		}
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = scalarString(item)
		}
		out[prefix] = strings.Join(parts, ",")
	default:
		out[prefix] = scalarString(val)
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; keep integers unadorned.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
