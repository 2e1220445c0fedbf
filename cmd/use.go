package cmd

import (
	"github.com/spf13/cobra"

	"github.com/analisai/analisai/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and open the dashboard",
	Long:  `Switch to the specified profile and immediately open the dashboard.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if err := cfg.Use(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}

		return runDashboard(cfg)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
