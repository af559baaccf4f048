// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments and
// capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	logger "github.com/quietfox/keyfold/internal/logging"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points HOME at a temp directory and resets command
// state, restoring everything when the test finishes.
func setupTestEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	ResetGlobalState()
	t.Cleanup(ResetGlobalState)
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// runCommand executes the store command with the given arguments through a
// fresh root command, capturing combined output.
func runCommand(args ...string) (string, error) {
	Logger = logger.Logger{Verbose: verbose, Debug: debug}

	rootCmd := &cobra.Command{
		Use:   "keyfold",
		Short: "Keyfold - A CLI for managing encrypted credential configurations.",
	}
	rootCmd.AddCommand(StoreCmd)
	rootCmd.SetArgs(append([]string{"store"}, args...))

	return captureOutput(rootCmd.Execute)
}
