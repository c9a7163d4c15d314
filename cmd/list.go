package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/astrium/megascan/internal/config"
	"github.com/astrium/megascan/internal/scanner"
)

func newListCmd() *cobra.Command {
	var flagFamily string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered experiment runs",
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
			runs := s.Runs()
			if len(runs) == 0 {
				fmt.Printf("No runs found under %s\n", discoveryPattern(cfg))
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tDATE\tTIMESTAMP\tPATH")
			for i, run := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Versions()[i], run.Date, run.Timestamp, run.Path)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&flagFamily, "family", "", "experiment family (default from config)")
	return cmd
}
