package cmd

import (
	"fmt"
	"slices"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/analisai/analisai/internal/config"
	"github.com/analisai/analisai/internal/core"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage server profiles",
	Long:  `Manage profiles holding the backend URL, aggregation mode and optional assistant credentials.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Fprintln(out, "Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Fprintf(out, "  %s%s\n", name, marker)
			fmt.Fprintf(out, "    Server: %s\n", profile.ServerURL)
			if profile.AggregationMode != "" {
				fmt.Fprintf(out, "    Mode: %s\n", profile.AggregationMode)
			}
			hasKey := "No"
			if profile.Assistant.APIKey != "" {
				hasKey = "Yes"
			}
			fmt.Fprintf(out, "    Assistant: %s\n", hasKey)
			fmt.Fprintln(out)
		}
		return nil
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Profile: %s\n", profileName)
		fmt.Fprintf(out, "Server: %s\n", profile.ServerURL)
		fmt.Fprintf(out, "Aggregation mode: %s\n", orDefault(profile.AggregationMode, config.DefaultMode))
		hasKey := "Not set"
		if profile.Assistant.APIKey != "" {
			hasKey = "Set (hidden for security)"
		}
		fmt.Fprintf(out, "Assistant API Key: %s\n", hasKey)
		fmt.Fprintf(out, "Assistant Model: %s\n", orDefault(profile.Assistant.Model, config.DefaultModel))
		if profile.Assistant.BaseURL != "" {
			fmt.Fprintf(out, "Assistant Base URL: %s\n", profile.Assistant.BaseURL)
		}
		return nil
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			if profileName, err = prompt.Run(); err != nil {
				return fmt.Errorf("prompt failed: %w", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			return fmt.Errorf("profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.Profile{
			ServerURL:       config.DefaultServerURL,
			AggregationMode: config.DefaultMode,
		})
		if err != nil {
			return err
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' added successfully!\n", profileName)
		return nil
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		profileName, err := pickProfile(cfg, args, "Select profile to edit", "")
		if err != nil {
			return err
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		if profile, err = promptProfile(profile); err != nil {
			return err
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' updated successfully!\n", profileName)
		return nil
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:     "remove [profile-name]",
	Aliases: []string{"delete", "rm"},
	Short:   "Remove a profile",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		profileName, err := pickProfile(cfg, args, "Select profile to remove", "")
		if err != nil {
			return err
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			return fmt.Errorf("profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Remove profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Removal cancelled")
			return nil
		}

		removeProfile(cfg, profileName)
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile '%s' removed successfully!\n", profileName)
		return nil
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No other profiles available to switch to")
			return nil
		}
		profileName, err := pickProfile(cfg, args, "Select profile to switch to", cfg.ActiveProfile)
		if err != nil {
			return err
		}

		if err := cfg.Use(profileName); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile '%s'\n", profileName)
		return nil
	},
}

// promptProfile asks for every profile field, defaulting to current values.
func promptProfile(profile config.Profile) (config.Profile, error) {
	var err error

	serverPrompt := promptui.Prompt{
		Label:   "Server URL",
		Default: profile.ServerURL,
	}
	if profile.ServerURL, err = serverPrompt.Run(); err != nil {
		return profile, fmt.Errorf("prompt failed: %w", err)
	}

	modePrompt := promptui.Select{
		Label: "Aggregation mode",
		Items: []string{core.ModeCombined, core.ModeParallel},
	}
	if _, profile.AggregationMode, err = modePrompt.Run(); err != nil {
		return profile, fmt.Errorf("selection failed: %w", err)
	}

	apiKeyPrompt := promptui.Prompt{
		Label:   "Assistant API Key (optional)",
		Default: profile.Assistant.APIKey,
		Mask:    '*',
	}
	if profile.Assistant.APIKey, err = apiKeyPrompt.Run(); err != nil {
		return profile, fmt.Errorf("prompt failed: %w", err)
	}
	if profile.Assistant.APIKey == "" {
		return profile, nil
	}

	modelPrompt := promptui.Prompt{
		Label:   "Assistant Model",
		Default: orDefault(profile.Assistant.Model, config.DefaultModel),
	}
	if profile.Assistant.Model, err = modelPrompt.Run(); err != nil {
		return profile, fmt.Errorf("prompt failed: %w", err)
	}

	baseURLPrompt := promptui.Prompt{
		Label:   "Assistant Base URL (optional)",
		Default: profile.Assistant.BaseURL,
	}
	if profile.Assistant.BaseURL, err = baseURLPrompt.Run(); err != nil {
		return profile, fmt.Errorf("prompt failed: %w", err)
	}
	return profile, nil
}

// pickProfile returns args[0] or lets the user select a profile other than exclude.
func pickProfile(cfg *config.Config, args []string, label, exclude string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	names := profileNames(cfg, exclude)
	if len(names) == 0 {
		return "", fmt.Errorf("no profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return name, nil
}

// removeProfile deletes name, moving the active marker and recreating the
// default profile when the last one goes.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)
	if cfg.ActiveProfile != name {
		return
	}
	if remaining := profileNames(cfg, ""); len(remaining) > 0 {
		cfg.ActiveProfile = remaining[0]
		return
	}
	cfg.ActiveProfile = "default"
	cfg.Profiles["default"] = config.Profile{
		ServerURL:       config.DefaultServerURL,
		AggregationMode: config.DefaultMode,
	}
}

func profileNames(cfg *config.Config, exclude string) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		if name != exclude {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
