// Package scanner correlates result bundles across every discovered run of
// one experiment family and derives cross-run comparison products from the
// resulting index.
package scanner

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/astrium/megascan/internal/dataset"
	"github.com/astrium/megascan/internal/discover"
	"github.com/astrium/megascan/internal/record"
)

// Family fixes everything that varies between experiment programs: which
// result bundles to expect per run, the class labels for confusion matrices,
// the categorical decoding table for the primary dataset, and its row-key
// column. Families are plain configuration; there is one Scanner type.
type Family struct {
	Name        string
	Kinds       []record.Kind
	Target      string
	Labels      []string
	IndexColumn string
	Decoder     dataset.Decoder
}

// Kind returns the declared kind with the given name.
func (f Family) Kind(name string) (record.Kind, bool) {
	for _, k := range f.Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return record.Kind{}, false
}

// VersionEntry is one version's slot set in the MegaIndex. Results always
// holds an entry for every declared kind; a nil record means the bundle is
// absent or failed to load.
type VersionEntry struct {
	Date      string
	Timestamp int64
	Results   map[string]*record.Record
}

// MegaIndex maps version label → per-version results. It is the Scanner's
// central state; callers treat it as a read-only view.
type MegaIndex map[string]*VersionEntry

// Scanner owns run discovery and the MegaIndex for one family. Construction
// performs discovery and builds the index skeleton eagerly; result bundles
// are loaded only when ScanResults is invoked. A Scanner instance is driven
// by a single caller sequence and shares no mutable state with others.
type Scanner struct {
	family   Family
	runs     []discover.Run
	versions []string
	primary  int
	index    MegaIndex
	logger   *log.Logger
}

// New discovers runs matching pattern and builds the index skeleton.
// primary selects which run's dataset is considered primary for exploratory
// analysis; any negative value means the most recent run, and an index past
// the end of the discovered list falls back to the most recent with a
// warning. Zero discovered runs is a valid, if trivial, state.
func New(fam Family, pattern string, primary int, logger *log.Logger) (*Scanner, error) {
	if logger == nil {
		logger = log.Default()
	}
	runs, err := discover.Discover(pattern, logger)
	if err != nil {
		return nil, fmt.Errorf("discovering runs: %w", err)
	}

	s := &Scanner{family: fam, runs: runs, logger: logger}
	s.versions = make([]string, len(runs))
	s.index = make(MegaIndex, len(runs))
	for i, run := range runs {
		v := fmt.Sprintf("v%d", i)
		s.versions[i] = v
		entry := &VersionEntry{
			Date:      run.Date,
			Timestamp: run.Timestamp,
			Results:   make(map[string]*record.Record, len(fam.Kinds)),
		}
		for _, k := range fam.Kinds {
			entry.Results[k.Name] = nil
		}
		s.index[v] = entry
	}
	s.primary = s.resolvePrimary(primary)
	return s, nil
}

// Family returns the scanner's family configuration.
func (s *Scanner) Family() Family { return s.family }

// Runs returns the discovered runs in version order.
func (s *Scanner) Runs() []discover.Run { return s.runs }

// Versions returns the assigned version labels, v0..v(N-1) in sorted
// discovery order.
func (s *Scanner) Versions() []string { return s.versions }

// Index returns the MegaIndex. Before ScanResults it is the skeleton with
// every slot absent.
func (s *Scanner) Index() MegaIndex { return s.index }

func (s *Scanner) resolvePrimary(primary int) int {
	if len(s.runs) == 0 {
		return -1
	}
	if primary < 0 {
		return len(s.runs) - 1
	}
	if primary >= len(s.runs) {
		s.logger.Printf("warning: primary index %d out of range, using most recent run", primary)
		return len(s.runs) - 1
	}
	return primary
}

// SelectDataset re-selects which run's tabular dataset is primary and
// returns its path. Out-of-range indices fall back to the most recent run
// with a warning, never an error; zero discovered runs returns "".
func (s *Scanner) SelectDataset(primary int) (string, error) {
	s.primary = s.resolvePrimary(primary)
	if s.primary < 0 {
		return "", nil
	}
	run := s.runs[s.primary]
	matches, err := filepath.Glob(filepath.Join(run.Path, "data", "*.csv"))
	if err != nil {
		return "", fmt.Errorf("globbing dataset for %s: %w", run.Name, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no csv under %s", dataset.ErrDatasetNotFound, filepath.Join(run.Path, "data"))
	}
	return matches[0], nil
}

// ImportDataset loads the primary run's dataset with the family's index
// column and decoding table applied.
func (s *Scanner) ImportDataset() (*dataset.Table, error) {
	path, err := s.SelectDataset(s.primary)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no runs discovered", dataset.ErrDatasetNotFound)
	}
	return dataset.Import(path, s.family.IndexColumn, s.family.Decoder)
}

// ScanResults loads every (run, kind) result bundle into the MegaIndex and
// returns it. Load failures occupy their slot as absent rather than
// aborting. Re-invoking replaces prior slot contents, so the operation is
// idempotent on an unchanged filesystem. Loads run sequentially for
// deterministic logging order.
func (s *Scanner) ScanResults() MegaIndex {
	for i, run := range s.runs {
		entry := s.index[s.versions[i]]
		for _, kind := range s.family.Kinds {
			entry.Results[kind.Name] = record.Load(run.Path, kind, s.family.Labels, s.logger)
		}
	}
	return s.index
}

// ScanResultsParallel is ScanResults with the (run, kind) product loaded by
// at most workers goroutines. Every load writes a distinct slot, so the
// resulting index is identical to the sequential scan; only log interleaving
// differs.
func (s *Scanner) ScanResultsParallel(workers int) MegaIndex {
	if workers < 1 {
		workers = 1
	}
	type slot struct {
		version string
		run     discover.Run
		kind    record.Kind
	}
	var slots []slot
	for i, run := range s.runs {
		for _, kind := range s.family.Kinds {
			slots = append(slots, slot{s.versions[i], run, kind})
		}
	}

	loaded := make([]*record.Record, len(slots))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range slots {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			loaded[i] = record.Load(slots[i].run.Path, slots[i].kind, s.family.Labels, s.logger)
		}(i)
	}
	wg.Wait()

	for i, sl := range slots {
		s.index[sl.version].Results[sl.kind.Name] = loaded[i]
	}
	return s.index
}
