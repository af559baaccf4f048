package cmd

import (
	"errors"

	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/ui"
	"github.com/quietfox/keyfold/internal/workflows"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Removes a configuration from the store",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spinner, cleanup := startSpinner("Removing configuration...", verbose)
		defer cleanup()

		result, err := workflows.Remove(cmd.Context(), workflows.RemoveOptions{Name: args[0]})
		if err != nil {
			switch {
			case errors.Is(err, kerrors.ErrStoreNotFound):
				finalMessage := ui.Error.Sprint("✗") + " Credential store has not been initialized\n" +
					ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keyfold store init") + " first\n"
				spinner.FinalMSG = finalMessage
			case errors.Is(err, kerrors.ErrFileNotFound):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No configuration named " + ui.Highlight.Sprint(args[0]) + "\n"
			default:
				printError("Failed to remove configuration", err)
			}
			return
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Removed " + ui.Highlight.Sprint(result.Name) + " from the store\n"
	},
}
