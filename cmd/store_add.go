package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/ui"
	"github.com/quietfox/keyfold/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	addFile        string
	addForce       bool
	addPasswordCmd string
)

func init() {
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "read the configuration content from a file instead of stdin")
	addCmd.Flags().BoolVar(&addForce, "force", false, "overwrite an existing configuration")
	addCmd.Flags().StringVar(&addPasswordCmd, "password-cmd", "", "shell command whose output supplies the encryption password")
}

// resetAddCommandState resets the add command's global state for testing.
func resetAddCommandState() {
	addFile = ""
	addForce = false
	addPasswordCmd = ""
}

// No spinner here: the password prompt needs the terminal to itself.
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Encrypts a configuration and saves it into the store",
	Long: `Encrypts a configuration under a password and writes it into the store.

The content is read from stdin, or from a file with --file. The password is
prompted for on the terminal unless a password command is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		plaintext, err := readContent(addFile)
		if err != nil {
			return fmt.Errorf("failed to read configuration content: %w", err)
		}

		result, err := workflows.Save(cmd.Context(), workflows.SaveOptions{
			Name:            name,
			Plaintext:       plaintext,
			PasswordCommand: addPasswordCmd,
			Force:           addForce,
		})
		if err != nil {
			switch {
			case errors.Is(err, kerrors.ErrStoreNotFound):
				fmt.Println(ui.Error.Sprint("✗") + " Credential store has not been initialized")
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keyfold store init") + " first")
				return nil
			case errors.Is(err, kerrors.ErrConfigExists):
				fmt.Println(ui.Error.Sprint("✗") + " " + ui.Highlight.Sprint(name) + " already exists")
				fmt.Println(ui.Info.Sprint("→") + " To overwrite, run: " + ui.Code.Sprint("keyfold store add --force "+name))
				return nil
			case errors.Is(err, kerrors.ErrPromptCancelled):
				fmt.Println(ui.Error.Sprint("✗") + " Cancelled, nothing was written")
				return nil
			}
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		if result.Overwritten {
			fmt.Println(ui.Success.Sprint("✓") + " Replaced " + ui.Highlight.Sprint(result.Name) + " at " + ui.Path.Sprint(result.Path))
		} else {
			fmt.Println(ui.Success.Sprint("✓") + " Saved " + ui.Highlight.Sprint(result.Name) + " at " + ui.Path.Sprint(result.Path))
		}
		return nil
	},
}

// readContent reads the configuration plaintext from a file, or from stdin
// when no file is given.
func readContent(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}
