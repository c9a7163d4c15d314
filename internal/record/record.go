// Package record models the persisted outcome of one model training
// iteration and loads result bundles written by the upstream compute stage.
package record

// Algorithm identifies the model type behind a result bundle.
type Algorithm string

const (
	Binary    Algorithm = "binary"
	Multi     Algorithm = "multi"
	Regressor Algorithm = "regressor"
)

// Classifier reports whether the algorithm produces a confusion matrix.
func (a Algorithm) Classifier() bool {
	return a == Binary || a == Multi
}

// Kind declares one expected result bundle per run. Name doubles as the
// subdirectory under <run>/results/ where the bundle is persisted.
// Validation kinds carry no training-history scores, only test-side scalars.
type Kind struct {
	Name       string    `yaml:"name"`
	Algorithm  Algorithm `yaml:"algorithm"`
	Validation bool      `yaml:"validation"`
}

// Record is a fully loaded result bundle for one (run, kind) pair. A bundle
// that fails to load is represented as a nil *Record, never as a partially
// populated one.
type Record struct {
	Kind   Kind
	Scores map[string]float64
	Matrix *ConfusionMatrix
}

// Score returns the named scalar and whether it is present.
func (r *Record) Score(name string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	v, ok := r.Scores[name]
	return v, ok
}

// ConfusionMatrix holds raw predicted-vs-actual class counts.
type ConfusionMatrix struct {
	Labels []string `json:"labels"`
	Counts [][]int  `json:"counts"`
}

// Normalized returns the row-normalized form of the matrix. Rows with a
// zero total stay all-zero rather than dividing by zero.
func (m *ConfusionMatrix) Normalized() [][]float64 {
	out := make([][]float64, len(m.Counts))
	for i, row := range m.Counts {
		total := 0
		for _, c := range row {
			total += c
		}
		norm := make([]float64, len(row))
		if total > 0 {
			for j, c := range row {
				norm[j] = float64(c) / float64(total)
			}
		}
		out[i] = norm
	}
	return out
}
