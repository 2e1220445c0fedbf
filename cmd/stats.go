package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/analisai/analisai/internal/core"
	"github.com/analisai/analisai/internal/export"
	"github.com/analisai/analisai/internal/plot"
)

var (
	statsFormat string
	statsPNGDir string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetch the contract aggregations",
	Long:  `Fetch the four contract aggregations and print them as JSON, YAML or Markdown, optionally rendering PNG charts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(statsFormat)
		if err != nil {
			return err
		}

		backend, err := loadBackend()
		if err != nil {
			return err
		}

		charts := core.NewChartController(backend.Fetcher)
		if err := charts.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load aggregations: %w", err)
		}
		snap := charts.Snapshot()

		if err := exporter.Export(snap, cmd.OutOrStdout()); err != nil {
			return err
		}

		if statsPNGDir != "" {
			paths, err := plot.WriteAll(snap.Data, statsPNGDir)
			if err != nil {
				return fmt.Errorf("failed to render charts: %w", err)
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", p)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "json", "output format: json, yaml, md")
	statsCmd.Flags().StringVar(&statsPNGDir, "png", "", "also render PNG bar charts into this directory")
	rootCmd.AddCommand(statsCmd)
}
