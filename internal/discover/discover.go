// Package discover locates timestamped experiment run directories on local
// disk. Run directories are expected to be named with a leading ISO date and
// a trailing hyphen-separated unix timestamp, e.g. "2021-11-04-1636048291".
package discover

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedRunName indicates a directory name that does not end in a
// parseable integer timestamp.
var ErrMalformedRunName = errors.New("malformed run name")

// Run is one discovered experiment iteration.
type Run struct {
	Path      string
	Name      string
	Timestamp int64
	Date      string
}

// ParseRun derives a Run from a directory path. The final path component
// must carry a trailing "-<unix timestamp>" token; the date is the first
// ten characters of the name.
func ParseRun(path string) (Run, error) {
	name := filepath.Base(path)
	idx := strings.LastIndex(name, "-")
	if idx < 0 || idx == len(name)-1 {
		return Run{}, fmt.Errorf("%w: %q has no timestamp token", ErrMalformedRunName, name)
	}
	ts, err := strconv.ParseInt(name[idx+1:], 10, 64)
	if err != nil {
		return Run{}, fmt.Errorf("%w: %q: %v", ErrMalformedRunName, name, err)
	}
	date := name
	if len(date) > 10 {
		date = date[:10]
	}
	return Run{Path: path, Name: name, Timestamp: ts, Date: date}, nil
}

// Discover globs for run directories matching pattern and returns them in
// ascending path order, so date-prefixed names come out chronologically.
// Entries whose names do not parse are skipped and logged, never fatal.
// An empty match set is a valid result, not an error.
func Discover(pattern string, logger *log.Logger) ([]Run, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}
	sort.Strings(matches)

	runs := make([]Run, 0, len(matches))
	for _, m := range matches {
		run, err := ParseRun(m)
		if err != nil {
			if logger != nil {
				logger.Printf("warning: skipping %s: %v", m, err)
			}
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}
