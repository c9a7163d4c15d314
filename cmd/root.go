package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/astrium/megascan/internal/config"
	"github.com/astrium/megascan/internal/family"
	"github.com/astrium/megascan/internal/scanner"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "megascan",
		Short: "Aggregate and compare model training results across experiment runs",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "megascan.yaml", "config file path")
	root.AddCommand(newListCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newDatasetCmd())
	root.AddCommand(newFetchCmd())
	return root
}

// resolveFamily picks the named family (or the config default), preferring a
// custom declaration from config over the built-ins.
func resolveFamily(cfg *config.Config, name string) (scanner.Family, error) {
	if name == "" {
		name = cfg.Family
	}
	if fam, ok := cfg.Custom(name); ok {
		return fam, nil
	}
	return family.Lookup(name)
}

func discoveryPattern(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, cfg.Pattern)
}
