package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrium/megascan/internal/dataset"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportDecodesCategoricalColumns(t *testing.T) {
	path := writeCSV(t, "index,det,n_sources\nia1b2,4,120\nic3d4,0,77\nie5f6,7,3\n")
	dec := dataset.Decoder{"det": {0: "hrc", 4: "wfc"}}

	table, err := dataset.Import(path, "index", dec)
	require.NoError(t, err)

	assert.Equal(t, []string{"index", "det", "n_sources", "det_key"}, table.Columns)
	assert.Equal(t, []string{"wfc", "hrc", ""}, table.Column("det_key"))
	// encoded column untouched
	assert.Equal(t, []string{"4", "0", "7"}, table.Column("det"))

	got, ok := table.Lookup("ia1b2", "det_key")
	require.True(t, ok)
	assert.Equal(t, "wfc", got)
}

func TestImportMultipleDecodedColumnsKeepTableOrder(t *testing.T) {
	path := writeCSV(t, "id,instr,det\nx,2,4\n")
	dec := dataset.Decoder{
		"det":   {4: "wfc"},
		"instr": {2: "stis"},
	}
	table, err := dataset.Import(path, "id", dec)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "instr", "det", "instr_key", "det_key"}, table.Columns)
}

func TestImportMissingFileSurfaces(t *testing.T) {
	_, err := dataset.Import(filepath.Join(t.TempDir(), "nope.csv"), "index", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrDatasetNotFound))
}

func TestImportMissingIndexColumn(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\n")
	_, err := dataset.Import(path, "ipst", nil)
	assert.Error(t, err)
}

func TestImportWithoutDecoder(t *testing.T) {
	path := writeCSV(t, "index,mem\nx,3.5\n")
	table, err := dataset.Import(path, "index", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "mem"}, table.Columns)
	assert.Len(t, table.Rows, 1)
}
