package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrium/megascan/internal/config"
	"github.com/astrium/megascan/internal/report"
	"github.com/astrium/megascan/internal/scanner"
)

func newReportCmd() *cobra.Command {
	var (
		flagFamily     string
		flagTarget     string
		flagMetric     string
		flagFormat     string
		flagCmx        bool
		flagNormalized bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compare scores or confusion matrices across runs",
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
			s.ScanResults()

			target := flagTarget
			if target == "" {
				target = fam.Target
			}
			if flagCmx {
				bundle, err := s.ConfusionBundle(target, flagNormalized)
				if err != nil {
					return err
				}
				return report.WriteBundle(bundle, flagFormat, os.Stdout)
			}
			table, err := s.CompareScores(target, scanner.Metric(flagMetric))
			if err != nil {
				return err
			}
			return report.WriteScores(table, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFamily, "family", "", "experiment family (default from config)")
	cmd.Flags().StringVar(&flagTarget, "target", "", "result kind to compare (default family target)")
	cmd.Flags().StringVar(&flagMetric, "metric", "acc_loss", "score metric (acc_loss, loss)")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	cmd.Flags().BoolVar(&flagCmx, "cmx", false, "emit confusion matrices instead of scores")
	cmd.Flags().BoolVar(&flagNormalized, "normalized", false, "row-normalize confusion matrices")
	return cmd
}
