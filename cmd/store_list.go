package cmd

import (
	"errors"
	"strings"

	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/ui"
	"github.com/quietfox/keyfold/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	listClients bool
	listSort    string
)

func init() {
	listCmd.Flags().BoolVar(&listClients, "clients", false, "list client configurations instead of account configurations")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort order: name, modified, or accessed (default: configured order)")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listClients = false
	listSort = ""
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the configurations in the store",
	Long: `Lists account configurations by name, or client configurations by path
with --clients. The order defaults to the configured sort preference.`,
	Run: func(cmd *cobra.Command, args []string) {
		spinner, cleanup := startSpinner("Listing configurations...", verbose)
		defer cleanup()

		kind := workflows.KindAccounts
		label := "account"
		if listClients {
			kind = workflows.KindClients
			label = "client"
		}

		result, err := workflows.List(cmd.Context(), workflows.ListOptions{
			Kind:   kind,
			SortBy: listSort,
		})
		if err != nil {
			if errors.Is(err, kerrors.ErrStoreNotFound) {
				finalMessage := ui.Error.Sprint("✗") + " Credential store has not been initialized\n" +
					ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keyfold store init") + " first\n"
				spinner.FinalMSG = finalMessage
				return
			}
			printError("Failed to list configurations", err)
			return
		}

		if len(result.Names) == 0 {
			spinner.FinalMSG = ui.Info.Sprint("→") + " No " + label + " configurations in " + ui.Path.Sprint(result.StorePath) + "\n"
			return
		}

		var b strings.Builder
		b.WriteString(ui.Success.Sprint("✓") + " " + label + " configurations (sorted by " + result.SortBy + "):\n")
		for _, name := range result.Names {
			b.WriteString("  " + name + "\n")
		}
		spinner.FinalMSG = b.String()
	},
}
