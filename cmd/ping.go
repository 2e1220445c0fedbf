package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/analisai/analisai/internal/api"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the connection to the backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := loadBackend()
		if err != nil {
			return err
		}

		resp, err := backend.Client.Test(cmd.Context())
		if err != nil {
			return fmt.Errorf("Erro na conexão: %s", api.Message(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Conexão OK: %s\n", resp.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
