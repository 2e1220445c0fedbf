package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/analisai/analisai/internal/core"
	"github.com/analisai/analisai/internal/models"
)

var uploadCmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Upload contract files without opening the dashboard",
	Long:  `Upload one or more CSV, Excel or JSON files concurrently and report each outcome.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := loadBackend()
		if err != nil {
			return err
		}

		uploads := core.NewUploadController(backend.Client)
		uploads.AddFiles(args...)
		uploadErr := uploads.UploadAll(cmd.Context())

		out := cmd.OutOrStdout()
		failed := 0
		for _, item := range uploads.Items() {
			switch item.Status {
			case models.UploadSuccess:
				fmt.Fprintf(out, "✓ %s\n", item.Name)
			case models.UploadError:
				failed++
				fmt.Fprintf(out, "✗ %s: %s\n", item.Name, item.Err)
			default:
				failed++
				fmt.Fprintf(out, "✗ %s: %s\n", item.Name, "arquivo inválido")
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d uploads failed: %w", failed, len(args), uploadErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
