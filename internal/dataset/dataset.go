// Package dataset imports the flat tabular feature/label file belonging to
// one experiment run, with optional decoding of integer-encoded categorical
// columns back into strings.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrDatasetNotFound indicates the primary dataset file does not exist. A
// missing dataset invalidates any downstream analysis, so unlike result
// bundles this is surfaced to the caller rather than degraded.
var ErrDatasetNotFound = errors.New("dataset not found")

// Decoder maps an encoded column name to its integer-code → label pairs.
type Decoder map[string]map[int]string

// Table is a loaded tabular dataset. Rows hold raw string cells in column
// order; decoded companion columns are appended after the originals.
type Table struct {
	IndexColumn string
	Columns     []string
	Rows        [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all cells of the named column, or nil if absent.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// Lookup returns the cell at (row keyed by the index column, column name).
func (t *Table) Lookup(key, column string) (string, bool) {
	keyIdx := t.ColumnIndex(t.IndexColumn)
	colIdx := t.ColumnIndex(column)
	if keyIdx < 0 || colIdx < 0 {
		return "", false
	}
	for _, row := range t.Rows {
		if row[keyIdx] == key {
			return row[colIdx], true
		}
	}
	return "", false
}

// Import loads a CSV dataset from path. The first row is the header.
// indexColumn names the row-key column and must exist. For every column in
// dec, a companion "<column>_key" column is appended holding the decoded
// string for each row; the encoded column is left untouched and unmapped
// codes leave an empty cell.
func Import(path, indexColumn string, dec Decoder) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	t := &Table{
		IndexColumn: indexColumn,
		Columns:     records[0],
		Rows:        records[1:],
	}
	if indexColumn != "" && t.ColumnIndex(indexColumn) < 0 {
		return nil, fmt.Errorf("dataset %s has no index column %q", path, indexColumn)
	}
	for _, col := range decodeOrder(t.Columns, dec) {
		decodeColumn(t, col, dec[col])
	}
	return t, nil
}

// decodeOrder yields dec's keys in the table's own column order so the
// appended companion columns come out deterministically.
func decodeOrder(columns []string, dec Decoder) []string {
	var out []string
	for _, c := range columns {
		if _, ok := dec[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

func decodeColumn(t *Table, col string, pairs map[int]string) {
	idx := t.ColumnIndex(col)
	t.Columns = append(t.Columns, col+"_key")
	for i, row := range t.Rows {
		decoded := ""
		if code, err := strconv.Atoi(row[idx]); err == nil {
			decoded = pairs[code]
		}
		t.Rows[i] = append(row, decoded)
	}
}
