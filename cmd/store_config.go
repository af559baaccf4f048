package cmd

import (
	"fmt"

	"github.com/quietfox/keyfold/internal/configs"
	"github.com/quietfox/keyfold/internal/ui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage store preferences",
	Long: `Manages the store preferences kept alongside the encrypted configurations.

Examples:
  # Show the current preferences
  keyfold store config show

  # Sort listings by modification time by default
  keyfold store config set-sort modified

  # Supply passwords from a password manager instead of prompting
  keyfold store config set-password-cmd "pass show keyfold"`,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSortCmd)
	configCmd.AddCommand(configSetPasswordCmdCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current store preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		settings, err := configs.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		fmt.Println(ui.Info.Sprint("Store preferences:"))
		fmt.Println("  store UUID:       " + valueOrUnset(settings.Store.UUID))
		fmt.Println("  default sort:     " + settings.SortOrder())
		fmt.Println("  password command: " + valueOrUnset(settings.Prompt.PasswordCommand))
		return nil
	},
}

// valueOrUnset renders an optional setting for display.
func valueOrUnset(v string) string {
	if v == "" {
		return ui.Muted.Sprint("(not set)")
	}
	return v
}
