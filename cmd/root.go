package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/analisai/analisai/internal/app"
	"github.com/analisai/analisai/internal/config"
	"github.com/analisai/analisai/internal/logging"
)

var (
	verbose   bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "analisai",
	Short: "Terminal dashboard for AnalisAI contract analysis",
	Long: `analisai uploads contract spreadsheets to an AnalisAI backend, shows the
aggregated statistics as charts and lets you ask an AI assistant about them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(verbose)
	},
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		return runDashboard(cfg)
	},
}

func runDashboard(cfg *config.Config) error {
	application, err := app.NewApplication(cfg, serverURL)
	if err != nil {
		return err
	}
	defer application.Stop()

	return application.Start()
}

// loadBackend resolves the active profile for one-shot commands.
func loadBackend() (*app.Backend, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return app.NewBackend(cfg, serverURL)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (overrides profile and ANALISAI_SERVER_URL)")

	rootCmd.AddCommand(profileCmd)
}
