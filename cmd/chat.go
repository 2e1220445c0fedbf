package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/analisai/analisai/internal/core"
)

var chatPreset int

var chatCmd = &cobra.Command{
	Use:   "chat [MESSAGE...]",
	Short: "Ask the analysis assistant one question",
	Args: func(cmd *cobra.Command, args []string) error {
		if chatPreset == 0 && len(args) == 0 {
			return fmt.Errorf("a message or --preset is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := loadBackend()
		if err != nil {
			return err
		}

		chat := core.NewChatController(backend.Chat)
		if chatPreset > 0 {
			err = chat.SendPreset(cmd.Context(), chatPreset-1)
		} else {
			err = chat.Send(cmd.Context(), strings.Join(args, " "))
		}

		messages := chat.Messages()
		if len(messages) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), core.FormatAIResponse(messages[len(messages)-1].Content))
		}
		return err
	},
}

func init() {
	chatCmd.Flags().IntVarP(&chatPreset, "preset", "p", 0, fmt.Sprintf("send analysis preset 1-%d instead of a message", len(core.Presets)))
	rootCmd.AddCommand(chatCmd)
}
