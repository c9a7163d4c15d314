package scanner_test

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrium/megascan/internal/dataset"
	"github.com/astrium/megascan/internal/record"
	"github.com/astrium/megascan/internal/scanner"
)

var testFamily = scanner.Family{
	Name: "svm",
	Kinds: []record.Kind{
		{Name: "test", Algorithm: record.Binary},
		{Name: "val", Algorithm: record.Binary, Validation: true},
	},
	Target:      "test",
	Labels:      []string{"aligned", "misaligned"},
	IndexColumn: "index",
	Decoder:     dataset.Decoder{"det": {0: "hrc", 4: "wfc"}},
}

var runNames = []string{"2021-08-22-1629663047", "2021-10-28-1635457222", "2021-11-04-1636048291"}

// buildTree creates three run directories with full result bundles and a
// dataset csv each.
func buildTree(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for _, name := range runNames {
		runPath := filepath.Join(base, name)
		writeClassifierBundle(t, runPath, "test", false)
		writeClassifierBundle(t, runPath, "val", true)
		dataDir := filepath.Join(runPath, "data")
		require.NoError(t, os.MkdirAll(dataDir, 0o755))
		csv := "index,det\na1,4\nb2,0\n"
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, "train.csv"), []byte(csv), 0o644))
	}
	return base
}

func writeClassifierBundle(t *testing.T, runPath, kindName string, validation bool) {
	t.Helper()
	dir := filepath.Join(runPath, "results", kindName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	scores := map[string]float64{"test_acc": 0.9, "test_loss": 0.2}
	if !validation {
		scores["train_acc"] = 0.95
		scores["train_loss"] = 0.1
	}
	data, err := json.Marshal(scores)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scores.json"), data, 0o644))
	matrix := `{"counts": [[40, 2], [3, 55]]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "matrix.json"), []byte(matrix), 0o644))
}

func newTestScanner(t *testing.T, base string, primary int, logger *log.Logger) *scanner.Scanner {
	t.Helper()
	if logger == nil {
		logger = log.New(bytes.NewBuffer(nil), "", 0)
	}
	s, err := scanner.New(testFamily, filepath.Join(base, "20??-*"), primary, logger)
	require.NoError(t, err)
	return s
}

func TestVersionLabelsFollowSortedDiscoveryOrder(t *testing.T) {
	s := newTestScanner(t, buildTree(t), -1, nil)
	assert.Equal(t, []string{"v0", "v1", "v2"}, s.Versions())

	idx := s.Index()
	assert.Equal(t, "2021-08-22", idx["v0"].Date)
	assert.Equal(t, "2021-10-28", idx["v1"].Date)
	assert.Equal(t, "2021-11-04", idx["v2"].Date)
	assert.Equal(t, int64(1636048291), idx["v2"].Timestamp)
}

func TestSkeletonHasEverySlotAbsent(t *testing.T) {
	s := newTestScanner(t, buildTree(t), -1, nil)
	for _, v := range s.Versions() {
		entry := s.Index()[v]
		require.Len(t, entry.Results, 2)
		for kind, rec := range entry.Results {
			assert.Nil(t, rec, "%s/%s should be absent before ScanResults", v, kind)
		}
	}
}

func TestScanResultsPopulatesEverySlot(t *testing.T) {
	s := newTestScanner(t, buildTree(t), -1, nil)
	idx := s.ScanResults()
	for _, v := range s.Versions() {
		for kind, rec := range idx[v].Results {
			assert.NotNil(t, rec, "%s/%s", v, kind)
		}
	}
}

func TestScanResultsIsIdempotent(t *testing.T) {
	s := newTestScanner(t, buildTree(t), -1, nil)
	first := snapshot(s.ScanResults())
	second := snapshot(s.ScanResults())
	assert.Equal(t, first, second)
}

func TestParallelScanMatchesSequential(t *testing.T) {
	base := buildTree(t)
	seq := newTestScanner(t, base, -1, nil)
	par := newTestScanner(t, base, -1, nil)
	assert.Equal(t, snapshot(seq.ScanResults()), snapshot(par.ScanResultsParallel(4)))
}

// snapshot reduces a MegaIndex to a comparable value.
func snapshot(idx scanner.MegaIndex) map[string]map[string]map[string]float64 {
	out := map[string]map[string]map[string]float64{}
	for v, entry := range idx {
		out[v] = map[string]map[string]float64{}
		for kind, rec := range entry.Results {
			if rec == nil {
				out[v][kind] = nil
				continue
			}
			out[v][kind] = rec.Scores
		}
	}
	return out
}

func TestCompareScoresToleratesAbsentVersion(t *testing.T) {
	base := buildTree(t)
	// wipe v1's test bundle
	require.NoError(t, os.RemoveAll(filepath.Join(base, runNames[1], "results", "test")))

	s := newTestScanner(t, base, -1, nil)
	s.ScanResults()

	table, err := s.CompareScores("test", scanner.MetricAccLoss)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, table.Columns)
	assert.Equal(t, []string{"train_acc", "train_loss", "test_acc", "test_loss"}, table.Rows)

	for i := range table.Rows {
		assert.False(t, table.IsMissing(i, 0), "v0 row %d", i)
		assert.True(t, table.IsMissing(i, 1), "v1 row %d should be missing", i)
		assert.False(t, table.IsMissing(i, 2), "v2 row %d", i)
	}
}

func TestCompareScoresValidationKindHasNaNTrainCells(t *testing.T) {
	s := newTestScanner(t, buildTree(t), -1, nil)
	s.ScanResults()

	table, err := s.CompareScores("val", scanner.MetricAccLoss)
	require.NoError(t, err)
	trainRow := 0 // train_acc
	testRow := 2  // test_acc
	for j := range table.Columns {
		assert.True(t, table.IsMissing(trainRow, j))
		assert.False(t, table.IsMissing(testRow, j))
	}
}

func TestCompareScoresUnknownTarget(t *testing.T) {
	s := newTestScanner(t, buildTree(t), -1, nil)
	_, err := s.CompareScores("nope", scanner.MetricLoss)
	assert.Error(t, err)
}

func TestConfusionBundleOmitsAbsentVersions(t *testing.T) {
	base := buildTree(t)
	require.NoError(t, os.RemoveAll(filepath.Join(base, runNames[1], "results", "test")))

	s := newTestScanner(t, base, -1, nil)
	s.ScanResults()

	bundle, err := s.ConfusionBundle("test", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v2"}, bundle.Subtitles)
	require.Len(t, bundle.Counts, 2)
	for _, m := range bundle.Counts {
		for _, row := range m {
			for _, c := range row {
				assert.GreaterOrEqual(t, c, 0)
			}
		}
	}
}

func TestConfusionBundleNormalizedRowsSumToOne(t *testing.T) {
	s := newTestScanner(t, buildTree(t), -1, nil)
	s.ScanResults()

	bundle, err := s.ConfusionBundle("test", true)
	require.NoError(t, err)
	require.Len(t, bundle.Values, 3)
	require.Len(t, bundle.Subtitles, 3)
	for _, m := range bundle.Values {
		for _, row := range m {
			sum := 0.0
			for _, v := range row {
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	}
}

func TestConfusionBundleOmitsMismatchedLabelSets(t *testing.T) {
	base := buildTree(t)
	// v1's bundle declares a label set smaller than the family's; the
	// loader accepts it (self-consistent), so the bundle must drop it
	// rather than hand renderers a matrix of the wrong dimension.
	fourLabels := scanner.Family{
		Name:        testFamily.Name,
		Kinds:       testFamily.Kinds,
		Target:      testFamily.Target,
		Labels:      []string{"a", "b", "c", "d"},
		IndexColumn: testFamily.IndexColumn,
	}
	var buf bytes.Buffer
	s, err := scanner.New(fourLabels, filepath.Join(base, "20??-*"), -1, log.New(&buf, "", 0))
	require.NoError(t, err)
	matrix := `{"labels": ["2g", "8g"], "counts": [[40, 2], [3, 55]]}`
	for _, name := range []string{runNames[0], runNames[2]} {
		path := filepath.Join(base, name, "results", "test", "matrix.json")
		big := `{"labels": ["a", "b", "c", "d"], "counts": [[1,0,0,0],[0,1,0,0],[0,0,1,0],[0,0,0,1]]}`
		require.NoError(t, os.WriteFile(path, []byte(big), 0o644))
	}
	require.NoError(t, os.WriteFile(
		filepath.Join(base, runNames[1], "results", "test", "matrix.json"), []byte(matrix), 0o644))
	s.ScanResults()

	// the 2x2 record itself loaded fine
	require.NotNil(t, s.Index()["v1"].Results["test"])

	bundle, err := s.ConfusionBundle("test", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v2"}, bundle.Subtitles)
	require.Len(t, bundle.Counts, 2)
	for _, m := range bundle.Counts {
		assert.Len(t, m, len(bundle.Labels))
	}
	assert.Contains(t, buf.String(), "warning:")
}

func TestConfusionBundleRejectsRegressor(t *testing.T) {
	fam := scanner.Family{
		Name:   "reg",
		Kinds:  []record.Kind{{Name: "memory", Algorithm: record.Regressor}},
		Target: "memory",
	}
	s, err := scanner.New(fam, filepath.Join(t.TempDir(), "20??-*"), -1, log.New(bytes.NewBuffer(nil), "", 0))
	require.NoError(t, err)
	_, err = s.ConfusionBundle("memory", true)
	assert.Error(t, err)
}

func TestSelectDatasetFallsBackOnOutOfRangeIndex(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScanner(t, buildTree(t), -1, log.New(&buf, "", 0))

	path, err := s.SelectDataset(99)
	require.NoError(t, err)
	assert.Contains(t, path, runNames[2], "should fall back to the most recent run")
	assert.Contains(t, buf.String(), "warning:")
}

func TestSelectDatasetZeroRuns(t *testing.T) {
	s := newTestScanner(t, t.TempDir(), -1, nil)
	path, err := s.SelectDataset(-1)
	require.NoError(t, err)
	assert.Equal(t, "", path)
}

func TestImportDatasetDecodesPrimaryRun(t *testing.T) {
	s := newTestScanner(t, buildTree(t), 0, nil)
	table, err := s.ImportDataset()
	require.NoError(t, err)
	detKey := table.Column("det_key")
	require.Equal(t, []string{"wfc", "hrc"}, detKey)
}
