package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/astrium/megascan/internal/config"
	"github.com/astrium/megascan/internal/dataset"
	"github.com/astrium/megascan/internal/scanner"
)

func newDatasetCmd() *cobra.Command {
	var (
		flagFamily  string
		flagPrimary int
		flagHead    int
	)
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Import the primary run's tabular dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fam, err := resolveFamily(cfg, flagFamily)
			if err != nil {
				return err
			}
			s, err := scanner.New(fam, discoveryPattern(cfg), flagPrimary, log.Default())
			if err != nil {
				return err
			}
			path, err := s.SelectDataset(flagPrimary)
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Printf("No runs found under %s\n", discoveryPattern(cfg))
				return nil
			}
			t, err := dataset.Import(path, fam.IndexColumn, fam.Decoder)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d rows, %d columns\n", path, len(t.Rows), len(t.Columns))
			return writeHead(t, flagHead, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFamily, "family", "", "experiment family (default from config)")
	cmd.Flags().IntVar(&flagPrimary, "primary", -1, "run index to import (default most recent)")
	cmd.Flags().IntVar(&flagHead, "head", 5, "number of rows to print")
	return cmd
}

func writeHead(t *dataset.Table, n int, w io.Writer) error {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := ""
	for _, c := range t.Columns {
		header += c + "\t"
	}
	fmt.Fprintln(tw, header)
	for _, row := range t.Rows[:n] {
		line := ""
		for _, cell := range row {
			line += cell + "\t"
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
