package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger writes levelled diagnostics for the CLI. Info lines appear only
// when Verbose is set and debug lines only when Debug is set; warnings and
// errors always print, on stderr, so they are visible even when a spinner
// owns stdout.
type Logger struct {
	Verbose bool
	Debug   bool
}

// Infof prints a progress line when verbose output is enabled.
func (l Logger) Infof(format string, args ...any) {
	if !l.Verbose {
		return
	}
	fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+format+"\n", args...)
}

// Debugf prints an internal-state line when debug output is enabled.
func (l Logger) Debugf(format string, args ...any) {
	if !l.Debug {
		return
	}
	fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+format+"\n", args...)
}

// Warnf prints a warning to stderr unconditionally.
func (l Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+format+"\n", args...)
}

// Errorf prints an error to stderr unconditionally.
func (l Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+format+"\n", args...)
}
