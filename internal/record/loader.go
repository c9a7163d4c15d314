package record

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	scoresFile = "scores.json"
	matrixFile = "matrix.json"
)

// BundleDir resolves the on-disk bundle location for a run path and kind.
func BundleDir(runPath string, kind Kind) string {
	return filepath.Join(runPath, "results", kind.Name)
}

// Load reads the result bundle for kind under runPath. Any failure (missing
// bundle directory, unreadable or malformed contents, wrong matrix shape)
// degrades to a nil record with the cause logged at error level; a single
// bad bundle must never abort the scan of the remaining runs and kinds.
// labels supplies the class names for classifier kinds whose bundles do not
// declare their own.
func Load(runPath string, kind Kind, labels []string, logger *log.Logger) *Record {
	dir := BundleDir(runPath, kind)
	if _, err := os.Stat(dir); err != nil {
		logger.Printf("error: %s/%s: bundle missing: %v", filepath.Base(runPath), kind.Name, err)
		return nil
	}

	scores, err := loadScores(dir, kind)
	if err != nil {
		logger.Printf("error: %s/%s: %v", filepath.Base(runPath), kind.Name, err)
		return nil
	}

	rec := &Record{Kind: kind, Scores: scores}
	if kind.Algorithm.Classifier() {
		mtx, err := loadMatrix(dir, labels)
		if err != nil {
			logger.Printf("error: %s/%s: %v", filepath.Base(runPath), kind.Name, err)
			return nil
		}
		rec.Matrix = mtx
	}
	return rec
}

func loadScores(dir string, kind Kind) (map[string]float64, error) {
	data, err := os.ReadFile(filepath.Join(dir, scoresFile))
	if err != nil {
		return nil, fmt.Errorf("reading scores: %w", err)
	}
	var scores map[string]float64
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("parsing scores: %w", err)
	}
	for _, name := range requiredScores(kind) {
		if _, ok := scores[name]; !ok {
			return nil, fmt.Errorf("scores missing %q", name)
		}
	}
	return scores, nil
}

func requiredScores(kind Kind) []string {
	if kind.Algorithm == Regressor {
		return []string{"train_loss", "test_loss"}
	}
	if kind.Validation {
		return []string{"test_acc", "test_loss"}
	}
	return []string{"train_acc", "train_loss", "test_acc", "test_loss"}
}

func loadMatrix(dir string, labels []string) (*ConfusionMatrix, error) {
	data, err := os.ReadFile(filepath.Join(dir, matrixFile))
	if err != nil {
		return nil, fmt.Errorf("reading matrix: %w", err)
	}
	var mtx ConfusionMatrix
	if err := json.Unmarshal(data, &mtx); err != nil {
		return nil, fmt.Errorf("parsing matrix: %w", err)
	}
	if len(mtx.Labels) == 0 {
		mtx.Labels = labels
	}
	if len(mtx.Counts) == 0 {
		return nil, fmt.Errorf("matrix has no rows")
	}
	for i, row := range mtx.Counts {
		if len(row) != len(mtx.Counts) {
			return nil, fmt.Errorf("matrix row %d: got %d columns, want %d", i, len(row), len(mtx.Counts))
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("matrix cell (%d,%d) is negative", i, j)
			}
		}
	}
	if len(mtx.Labels) != len(mtx.Counts) {
		return nil, fmt.Errorf("matrix has %d labels for %d rows", len(mtx.Labels), len(mtx.Counts))
	}
	return &mtx, nil
}
