// Package family holds the built-in experiment family configurations. Each
// family fixes the result kinds, class labels, categorical decoder, and
// dataset key column for one calibration modeling program.
package family

import (
	"fmt"
	"sort"
	"strings"

	"github.com/astrium/megascan/internal/dataset"
	"github.com/astrium/megascan/internal/record"
	"github.com/astrium/megascan/internal/scanner"
)

// HstCal analyzes HST calibration resource-prediction models: one memory-bin
// multiclass classifier plus memory and wallclock regressors per run.
func HstCal() scanner.Family {
	return scanner.Family{
		Name: "hstcal",
		Kinds: []record.Kind{
			{Name: "mem_bin", Algorithm: record.Multi},
			{Name: "memory", Algorithm: record.Regressor},
			{Name: "wallclock", Algorithm: record.Regressor},
		},
		Target:      "mem_bin",
		Labels:      []string{"2g", "8g", "16g", "64g"},
		IndexColumn: "ipst",
		Decoder: dataset.Decoder{
			"instr": {0: "acs", 1: "cos", 2: "stis", 3: "wfc3"},
		},
	}
}

// HstSvm analyzes HST single-visit-mosaic alignment models: a binary
// classifier evaluated against both test and held-out validation data.
func HstSvm() scanner.Family {
	return scanner.Family{
		Name: "hstsvm",
		Kinds: []record.Kind{
			{Name: "test", Algorithm: record.Binary},
			{Name: "val", Algorithm: record.Binary, Validation: true},
		},
		Target:      "test",
		Labels:      []string{"aligned", "misaligned"},
		IndexColumn: "index",
		Decoder: dataset.Decoder{
			"det": {0: "hrc", 1: "ir", 2: "sbc", 3: "uvis", 4: "wfc"},
		},
	}
}

// JwstCal analyzes JWST calibration image-processing regressors: a single
// image3-pipeline regressor per run, with the JWST keypair tables decoding
// the dataset's encoded exposure metadata.
func JwstCal() scanner.Family {
	return scanner.Family{
		Name: "jwstcal",
		Kinds: []record.Kind{
			{Name: "img3_reg", Algorithm: record.Regressor},
		},
		Target:      "img3_reg",
		IndexColumn: "img_name",
		Decoder:     jwstKeypairs,
	}
}

// Lookup resolves a built-in family by name.
func Lookup(name string) (scanner.Family, error) {
	builtin := map[string]func() scanner.Family{
		"hstcal":  HstCal,
		"hstsvm":  HstSvm,
		"jwstcal": JwstCal,
	}
	if f, ok := builtin[name]; ok {
		return f(), nil
	}
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return scanner.Family{}, fmt.Errorf("unknown family %q (built-in: %s)", name, strings.Join(names, ", "))
}
