package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/astrium/megascan/internal/dataset"
)

func TestWriteHeadClampsRowCount(t *testing.T) {
	table := &dataset.Table{
		IndexColumn: "index",
		Columns:     []string{"index", "det"},
		Rows:        [][]string{{"a1", "4"}, {"b2", "0"}},
	}

	tests := []struct {
		name string
		n    int
		rows int
	}{
		{"negative head prints no rows", -1, 0},
		{"zero head prints no rows", 0, 0},
		{"head beyond length prints all", 99, 2},
		{"head within length", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeHead(table, tt.n, &buf); err != nil {
				t.Fatalf("writeHead: %v", err)
			}
			// one header line plus the data rows
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if got := len(lines) - 1; got != tt.rows {
				t.Errorf("got %d data rows, want %d", got, tt.rows)
			}
		})
	}
}
