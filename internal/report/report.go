// Package report renders the scanner's comparison products for terminal,
// markdown, and JSON consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/astrium/megascan/internal/record"
	"github.com/astrium/megascan/internal/scanner"
)

// VersionSummary tallies loaded vs absent result bundles for one version.
type VersionSummary struct {
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Loaded  int      `json:"loaded"`
	Absent  []string `json:"absent,omitempty"`
}

// Summarize reports, per version in order, which declared kinds loaded and
// which came up absent.
func Summarize(s *scanner.Scanner) []VersionSummary {
	idx := s.Index()
	kinds := s.Family().Kinds
	var out []VersionSummary
	for _, v := range s.Versions() {
		entry := idx[v]
		sum := VersionSummary{Version: v, Date: entry.Date}
		for _, k := range kinds {
			if entry.Results[k.Name] != nil {
				sum.Loaded++
			} else {
				sum.Absent = append(sum.Absent, k.Name)
			}
		}
		out = append(out, sum)
	}
	return out
}

// WriteSummary renders per-version load tallies.
func WriteSummary(summaries []VersionSummary, kinds []record.Kind, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tDATE\tLOADED\tABSENT")
	for _, s := range summaries {
		absent := "-"
		if len(s.Absent) > 0 {
			absent = strings.Join(s.Absent, ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\n", s.Version, s.Date, s.Loaded, len(kinds), absent)
	}
	return tw.Flush()
}

// WriteScores renders a score table in the requested format. Missing cells
// come out as "-" in table and markdown output and null in JSON.
func WriteScores(t *scanner.ScoreTable, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return scoresMarkdown(t, w)
	case "json":
		return scoresJSON(t, w)
	default:
		return scoresTable(t, w)
	}
}

func cell(t *scanner.ScoreTable, row, col int) string {
	if t.IsMissing(row, col) {
		return "-"
	}
	return fmt.Sprintf("%.4f", t.Cells[row][col])
}

func scoresTable(t *scanner.ScoreTable, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SCORE\t%s\n", strings.Join(t.Columns, "\t"))
	fmt.Fprintln(tw, strings.Repeat("-", 16*(len(t.Columns)+1)))
	for i, name := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j := range t.Columns {
			cells[j] = cell(t, i, j)
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func scoresMarkdown(t *scanner.ScoreTable, w io.Writer) error {
	fmt.Fprintf(w, "| Score | %s |\n", strings.Join(t.Columns, " | "))
	fmt.Fprintf(w, "|---%s|\n", strings.Repeat("|---", len(t.Columns)))
	for i, name := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j := range t.Columns {
			cells[j] = cell(t, i, j)
		}
		fmt.Fprintf(w, "| %s | %s |\n", name, strings.Join(cells, " | "))
	}
	return nil
}

func scoresJSON(t *scanner.ScoreTable, w io.Writer) error {
	type column map[string]*float64
	out := struct {
		Target   string            `json:"target"`
		Versions map[string]column `json:"versions"`
	}{Target: t.Target, Versions: map[string]column{}}
	for j, v := range t.Columns {
		col := column{}
		for i, name := range t.Rows {
			if t.IsMissing(i, j) {
				col[name] = nil
				continue
			}
			val := t.Cells[i][j]
			col[name] = &val
		}
		out.Versions[v] = col
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteBundle renders a confusion-matrix bundle. Table output prints one
// labeled matrix per included version; JSON emits the bundle as-is.
func WriteBundle(b *scanner.Bundle, format string, w io.Writer) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
	for i, subtitle := range b.Subtitles {
		fmt.Fprintf(w, "%s [%s]\n", subtitle, b.Target)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "actual\\predicted\t%s\n", strings.Join(b.Labels, "\t"))
		// iterate the matrix's own dimensions; labels may lag a
		// malformed bundle's shape
		for r := 0; r < bundleRows(b, i); r++ {
			cells := make([]string, bundleCols(b, i, r))
			for c := range cells {
				if b.Normalized {
					cells[c] = fmt.Sprintf("%.2f", b.Values[i][r][c])
				} else {
					cells[c] = fmt.Sprintf("%d", b.Counts[i][r][c])
				}
			}
			fmt.Fprintf(tw, "%s\t%s\n", rowLabel(b.Labels, r), strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func bundleRows(b *scanner.Bundle, i int) int {
	if b.Normalized {
		return len(b.Values[i])
	}
	return len(b.Counts[i])
}

func bundleCols(b *scanner.Bundle, i, r int) int {
	if b.Normalized {
		return len(b.Values[i][r])
	}
	return len(b.Counts[i][r])
}

func rowLabel(labels []string, r int) string {
	if r < len(labels) {
		return labels[r]
	}
	return fmt.Sprintf("class %d", r)
}
