package prompt

import (
	"testing"
)

func TestPasswordFromCommand(t *testing.T) {
	got, err := Password("test", nil, "echo hunter2")
	if err != nil {
		t.Fatalf("Password failed: %v", err)
	}
	if string(got) != "hunter2" {
		t.Errorf("expected trailing newline stripped, got: %q", got)
	}
}

func TestPasswordFromCommandPreservesInnerNewlines(t *testing.T) {
	got, err := Password("test", nil, "printf 'a\\nb\\n'")
	if err != nil {
		t.Fatalf("Password failed: %v", err)
	}
	// Only the final newline is stripped.
	if string(got) != "a\nb" {
		t.Errorf("got %q, want %q", got, "a\nb")
	}
}

func TestPasswordFromCommandFailure(t *testing.T) {
	if _, err := Password("test", nil, "exit 3"); err == nil {
		t.Fatal("expected error from failing command")
	}
}

func TestPasswordFromCommandEmptyOutput(t *testing.T) {
	if _, err := Password("test", nil, "true"); err == nil {
		t.Fatal("expected error for empty command output")
	}
}

func TestInteractive(t *testing.T) {
	if Interactive("pass show keyfold") {
		t.Error("a password command must be treated as non-interactive")
	}
	if !Interactive("") {
		t.Error("no command means interactive prompting")
	}
}
