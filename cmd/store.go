package cmd

import (
	logger "github.com/quietfox/keyfold/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	StoreCmd = &cobra.Command{
		Use:   "store",
		Short: "Manage the encrypted credential store",
		Long:  `Provides initialization, listing, saving, showing, and removal of encrypted configuration files.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing store command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	StoreCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	StoreCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	StoreCmd.AddCommand(initCmd)
	StoreCmd.AddCommand(listCmd)
	StoreCmd.AddCommand(addCmd)
	StoreCmd.AddCommand(showCmd)
	StoreCmd.AddCommand(removeCmd)
	StoreCmd.AddCommand(configCmd)
}

// Helper functions for testing

// GetStoreCmd returns the StoreCmd for testing.
func GetStoreCmd() *cobra.Command {
	return StoreCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetListCommandState()
	resetAddCommandState()
	resetShowCommandState()
	resetCobraFlagState()
}

// resetCobraFlagState resets the flag state of every store subcommand to
// prevent test pollution.
func resetCobraFlagState() {
	for _, sub := range StoreCmd.Commands() {
		sub.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
