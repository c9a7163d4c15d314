package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrium/megascan/internal/config"
	"github.com/astrium/megascan/internal/report"
	"github.com/astrium/megascan/internal/scanner"
)

func newScanCmd() *cobra.Command {
	var (
		flagFamily   string
		flagParallel int
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan result bundles for every discovered run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fam, err := resolveFamily(cfg, flagFamily)
			if err != nil {
				return err
			}
			s, err := scanner.New(fam, discoveryPattern(cfg), -1, log.Default())
			if err != nil {
				return err
			}
			fmt.Printf("Family %s: %d runs, %d result kinds\n", fam.Name, len(s.Runs()), len(fam.Kinds))
			if flagParallel > 1 {
				s.ScanResultsParallel(flagParallel)
			} else {
				s.ScanResults()
			}
			return report.WriteSummary(report.Summarize(s), fam.Kinds, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFamily, "family", "", "experiment family (default from config)")
	cmd.Flags().IntVar(&flagParallel, "parallel", 1, "max concurrent bundle loads")
	return cmd
}
