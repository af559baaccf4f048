// Package logger provides structured logging for keyfold CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed and colorized with fatih/color.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows debug messages
//
// Warnings and errors are always shown on stderr.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Listing %d account configs", count)
//
// Commands create a logger in their PersistentPreRun and keep it in a
// package-level variable for the command bodies.
//
// One rule specific to this application: log lines never contain passwords
// or decrypted file contents, at any level.
package logger
