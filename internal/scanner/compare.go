package scanner

import (
	"fmt"
	"math"
)

// Metric selects which scalar scores CompareScores pulls from each record.
// Classifiers typically compare accuracy and loss; regressors loss only.
type Metric string

const (
	MetricAccLoss Metric = "acc_loss"
	MetricLoss    Metric = "loss"
)

func (m Metric) scoreNames() []string {
	if m == MetricLoss {
		return []string{"train_loss", "test_loss"}
	}
	return []string{"train_acc", "train_loss", "test_acc", "test_loss"}
}

// ScoreTable is a cross-run comparison: one column per version, one row per
// named scalar score. Cells for absent records (or scores a record does not
// carry, such as train-side scalars of a validation-only bundle) hold NaN.
type ScoreTable struct {
	Target  string
	Rows    []string
	Columns []string
	Cells   [][]float64
}

// IsMissing reports whether the cell at (row, column) is a missing-value
// marker.
func (t *ScoreTable) IsMissing(row, col int) bool {
	return math.IsNaN(t.Cells[row][col])
}

// CompareScores builds the score table for the given target kind across all
// versions. Every version contributes a column; versions whose record is
// absent contribute a column of missing values rather than being dropped.
func (s *Scanner) CompareScores(target string, metric Metric) (*ScoreTable, error) {
	if _, ok := s.family.Kind(target); !ok {
		return nil, fmt.Errorf("family %s declares no result kind %q", s.family.Name, target)
	}
	rows := metric.scoreNames()
	t := &ScoreTable{
		Target:  target,
		Rows:    rows,
		Columns: s.versions,
		Cells:   make([][]float64, len(rows)),
	}
	for i, name := range rows {
		t.Cells[i] = make([]float64, len(s.versions))
		for j, v := range s.versions {
			rec := s.index[v].Results[target]
			if val, ok := rec.Score(name); ok {
				t.Cells[i][j] = val
			} else {
				t.Cells[i][j] = math.NaN()
			}
		}
	}
	return t, nil
}

// Bundle collects confusion matrices for one target kind across versions.
// Versions with absent records are omitted, not padded; Subtitles stays
// aligned 1:1 with the matrices actually included. Exactly one of Counts or
// Values is populated, per the Normalized flag.
type Bundle struct {
	Target     string
	Normalized bool
	Labels     []string
	Subtitles  []string
	Counts     [][][]int
	Values     [][][]float64
}

// ConfusionBundle gathers the (raw or row-normalized) confusion matrix for
// target from every version holding a loaded classifier record. Records
// whose matrix dimension disagrees with the bundle's label list are omitted
// like any other load inconsistency, with a warning, so every included
// matrix shares one label set and the subtitles stay aligned.
func (s *Scanner) ConfusionBundle(target string, normalized bool) (*Bundle, error) {
	kind, ok := s.family.Kind(target)
	if !ok {
		return nil, fmt.Errorf("family %s declares no result kind %q", s.family.Name, target)
	}
	if !kind.Algorithm.Classifier() {
		return nil, fmt.Errorf("result kind %q is not a classifier", target)
	}

	b := &Bundle{Target: target, Normalized: normalized, Labels: s.family.Labels}
	for _, v := range s.versions {
		rec := s.index[v].Results[target]
		if rec == nil || rec.Matrix == nil {
			continue
		}
		if len(b.Labels) == 0 {
			b.Labels = rec.Matrix.Labels
		}
		if len(rec.Matrix.Counts) != len(b.Labels) {
			s.logger.Printf("warning: %s/%s: matrix has %d classes, bundle expects %d; omitting",
				v, target, len(rec.Matrix.Counts), len(b.Labels))
			continue
		}
		b.Subtitles = append(b.Subtitles, v)
		if normalized {
			b.Values = append(b.Values, rec.Matrix.Normalized())
		} else {
			b.Counts = append(b.Counts, rec.Matrix.Counts)
		}
	}
	return b, nil
}
