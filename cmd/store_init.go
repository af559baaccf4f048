package cmd

import (
	"github.com/quietfox/keyfold/internal/ui"
	"github.com/quietfox/keyfold/internal/workflows"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the credential store",
	Run: func(cmd *cobra.Command, args []string) {
		spinner, cleanup := startSpinner("Initializing credential store...", verbose)
		defer cleanup()

		result, err := workflows.Init(cmd.Context())
		if err != nil {
			printError("Failed to initialize the credential store", err)
			return
		}

		if !result.Created {
			finalMessage := ui.Success.Sprint("✓") + " Credential store already initialized at " + ui.Path.Sprint(result.StorePath) + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keyfold store add") + " to save a configuration\n"
			spinner.FinalMSG = finalMessage
			return
		}

		finalMessage := ui.Success.Sprint("✓") + " Credential store created at " + ui.Path.Sprint(result.StorePath) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keyfold store add") + " to save your first configuration\n"
		spinner.FinalMSG = finalMessage
	},
}
