package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astrium/megascan/internal/config"
	"github.com/astrium/megascan/internal/scrape"
)

func newFetchCmd() *cobra.Command {
	var flagSource string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download configured data archives",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			sources := cfg.Fetch.Sources
			if flagSource != "" {
				sources = nil
				for _, s := range cfg.Fetch.Sources {
					if s.Name == flagSource {
						sources = append(sources, s)
					}
				}
				if len(sources) == 0 {
					return fmt.Errorf("no fetch source named %q", flagSource)
				}
			}
			if len(sources) == 0 {
				fmt.Println("No fetch sources configured")
				return nil
			}

			ctx := context.Background()
			for _, src := range sources {
				fmt.Printf("Fetching %s...\n", src.Name)
				path, err := scrape.Download(ctx, src.URL, cfg.Fetch.Dest, src.SHA256)
				if err != nil {
					return fmt.Errorf("fetching %s: %w", src.Name, err)
				}
				fmt.Printf("  %s\n", path)
				if src.Unzip && strings.HasSuffix(path, ".zip") {
					extracted, err := scrape.Unzip(path, cfg.Fetch.Dest)
					if err != nil {
						return fmt.Errorf("extracting %s: %w", src.Name, err)
					}
					log.Printf("extracted %d files from %s", len(extracted), path)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagSource, "source", "", "fetch only the named source")
	return cmd
}
