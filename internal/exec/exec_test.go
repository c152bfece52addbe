package exec

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestRun_CapturesOutput(t *testing.T) {
	requireUnix(t)
	r := RunSimple(context.Background(), "sh", "-c", "echo out; echo err >&2")
	if r.Err != nil {
		t.Fatalf("Run failed: %v", r.Err)
	}
	if strings.TrimSpace(r.Stdout) != "out" || strings.TrimSpace(r.Stderr) != "err" {
		t.Errorf("stdout %q stderr %q", r.Stdout, r.Stderr)
	}
	if r.Error() != nil {
		t.Errorf("Error() = %v, want nil", r.Error())
	}
}

func TestRun_ExitCode(t *testing.T) {
	requireUnix(t)
	r := RunSimple(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if r.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", r.ExitCode)
	}
	err := r.Error()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %v, want stderr tail", err)
	}
}

func TestRun_Timeout(t *testing.T) {
	requireUnix(t)
	opts := DefaultOptions()
	opts.Timeout = 50 * time.Millisecond
	r := Run(context.Background(), "sleep", []string{"5"}, opts)
	if r.Err == nil {
		t.Fatal("expected timeout error")
	}
	if r.Duration > 4*time.Second {
		t.Errorf("timeout not applied: ran %v", r.Duration)
	}
}

func TestRun_MissingCommand(t *testing.T) {
	r := RunSimple(context.Background(), "nohrs-definitely-missing-command")
	if r.Err == nil || r.ExitCode != -1 {
		t.Errorf("Err %v ExitCode %d", r.Err, r.ExitCode)
	}
}

func TestFirstAvailable(t *testing.T) {
	requireUnix(t)
	name, ok := FirstAvailable("nohrs-missing", "sh")
	if !ok || name != "sh" {
		t.Errorf("FirstAvailable() = %q, %v", name, ok)
	}
	if _, ok := FirstAvailable("nohrs-missing"); ok {
		t.Error("expected no command")
	}
}

func TestFormatCommand(t *testing.T) {
	if got := FormatCommand("xdg-open", []string{"https://example.com"}); got != "xdg-open https://example.com" {
		t.Errorf("FormatCommand() = %q", got)
	}
	if Available("nohrs-missing") {
		t.Error("Available() reported a missing command")
	}
}

func TestLastNLines(t *testing.T) {
	if got := LastNLines("a\nb\nc\nd", 2); got != "c\nd" {
		t.Errorf("LastNLines() = %q", got)
	}
	if got := LastNLines("a", 3); got != "a" {
		t.Errorf("LastNLines() = %q", got)
	}
}
