package main

import (
	"fmt"
	"os"

	"github.com/quietfox/keyfold/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keyfold",
	Short: "Keyfold - A CLI for managing encrypted credential configurations.",
	Long: `Keyfold keeps the configuration files of a credential-management agent
encrypted at rest in a per-user store.

Features:
  - Encrypt configurations under a password you choose
  - Decrypt them on demand, with prompting or a password command
  - List, inspect, and remove stored configurations

Usage:
  keyfold <command> [flags]

Available Commands:
  store      Manage the encrypted credential store

Run 'keyfold help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Keyfold! Run 'keyfold --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.StoreCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
