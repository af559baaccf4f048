package cmd

import (
	"errors"
	"fmt"
	"os"

	kerrors "github.com/quietfox/keyfold/internal/errors"
	"github.com/quietfox/keyfold/internal/ui"
	"github.com/quietfox/keyfold/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	showPath        string
	showPasswordCmd string
)

func init() {
	showCmd.Flags().StringVarP(&showPath, "path", "p", "", "decrypt an arbitrary encrypted file instead of a store entry")
	showCmd.Flags().StringVar(&showPasswordCmd, "password-cmd", "", "shell command whose output supplies the decryption password")
}

// resetShowCommandState resets the show command's global state for testing.
func resetShowCommandState() {
	showPath = ""
	showPasswordCmd = ""
}

// No spinner here: the password prompt needs the terminal to itself, and the
// plaintext goes to stdout for piping.
var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Decrypts a configuration and prints it",
	Long: `Decrypts a configuration and prints the plaintext to stdout.

A name addresses an entry in the store; --path addresses any encrypted file.
When the password is prompted for interactively, a wrong password asks again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" && showPath == "" {
			return fmt.Errorf("a configuration name or --path is required")
		}

		result, err := workflows.Load(cmd.Context(), workflows.LoadOptions{
			Name:            name,
			Path:            showPath,
			PasswordCommand: showPasswordCmd,
		})
		if err != nil {
			switch {
			case errors.Is(err, kerrors.ErrStoreNotFound):
				fmt.Println(ui.Error.Sprint("✗") + " Credential store has not been initialized")
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keyfold store init") + " first")
				return nil
			case errors.Is(err, kerrors.ErrFileNotFound):
				fmt.Println(ui.Error.Sprint("✗") + " No such configuration")
				return nil
			case errors.Is(err, kerrors.ErrWrongPassword):
				fmt.Println(ui.Error.Sprint("✗") + " Wrong password")
				return nil
			case errors.Is(err, kerrors.ErrPromptCancelled):
				fmt.Println(ui.Error.Sprint("✗") + " Cancelled")
				return nil
			}
			return fmt.Errorf("failed to decrypt configuration: %w", err)
		}

		// Plaintext only, so the output can be piped.
		if _, err := os.Stdout.Write(result.Plaintext); err != nil {
			return fmt.Errorf("failed to write plaintext: %w", err)
		}
		return nil
	},
}
