package cmd

import (
	"errors"
	"fmt"

	"github.com/quietfox/keyfold/internal/configs"
	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/ui"

	"github.com/spf13/cobra"
)

var configSetSortCmd = &cobra.Command{
	Use:   "set-sort <name|modified|accessed>",
	Short: "Set the default sort order for listings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order := args[0]
		switch order {
		case configs.SortByName, configs.SortByModified, configs.SortByAccessed:
		default:
			return fmt.Errorf("unknown sort order %q (expected name, modified, or accessed)", order)
		}

		saved, err := updateSettings(func(settings *configs.Settings) {
			settings.Store.DefaultSort = order
		})
		if err != nil || !saved {
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Default sort order set to " + ui.Highlight.Sprint(order))
		return nil
	},
}

var configSetPasswordCmdCmd = &cobra.Command{
	Use:   "set-password-cmd <command>",
	Short: "Set a shell command that supplies passwords",
	Long: `Sets a shell command whose stdout supplies encryption and decryption
passwords, replacing the interactive prompt. Pass an empty string to go back
to prompting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := args[0]

		saved, err := updateSettings(func(settings *configs.Settings) {
			settings.Prompt.PasswordCommand = command
		})
		if err != nil || !saved {
			return err
		}

		if command == "" {
			fmt.Println(ui.Success.Sprint("✓") + " Password command cleared, passwords will be prompted for")
		} else {
			fmt.Println(ui.Success.Sprint("✓") + " Password command set to " + ui.Code.Sprint(command))
		}
		return nil
	},
}

// updateSettings loads the store preferences, applies a change, and persists
// the result. Returns false without error when the store does not exist yet,
// after telling the user how to create it.
func updateSettings(apply func(*configs.Settings)) (bool, error) {
	settings, err := configs.LoadSettings()
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}

	apply(settings)

	if err := configs.SaveSettings(settings); err != nil {
		if errors.Is(err, kerrors.ErrStoreNotFound) {
			fmt.Println(ui.Error.Sprint("✗") + " Credential store has not been initialized")
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keyfold store init") + " first")
			return false, nil
		}
		return false, fmt.Errorf("failed to save settings: %w", err)
	}
	return true, nil
}
