// Package exec runs the helper programs nohrs shells out to, such as the
// desktop URL opener.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Result describes a finished command.
type Result struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// Error returns nil for a successful run, otherwise an error naming the
// command with the last lines of its stderr.
func (r *Result) Error() error {
	if r.Err == nil {
		return nil
	}
	msg := FormatCommand(r.Command, r.Args)
	if tail := strings.TrimSpace(LastNLines(r.Stderr, 3)); tail != "" {
		return fmt.Errorf("%s: %w: %s", msg, r.Err, tail)
	}
	return fmt.Errorf("%s: %w", msg, r.Err)
}

// Options configures Run.
type Options struct {
	Dir     string
	Env     []string
	Timeout time.Duration
	Stdin   io.Reader
	Logger  *log.Logger
}

// DefaultOptions returns a 30 second timeout and nothing else.
func DefaultOptions() Options {
	return Options{Timeout: 30 * time.Second}
}

// Run executes name with args and waits for it. A non-zero exit is reported
// through Result.Err, never as a panic or a nil result.
func Run(ctx context.Context, name string, args []string, opts Options) *Result {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	debug(opts.Logger, "running command", "cmd", FormatCommand(name, args))
	start := time.Now()
	err := cmd.Run()

	result := &Result{
		Command:  name,
		Args:     args,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
		Err:      err,
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		result.ExitCode = -1
	}

	debug(opts.Logger, "command finished",
		"cmd", name,
		"exit_code", result.ExitCode,
		"duration", result.Duration.Round(time.Millisecond),
	)
	return result
}

// RunSimple runs a command with DefaultOptions.
func RunSimple(ctx context.Context, name string, args ...string) *Result {
	return Run(ctx, name, args, DefaultOptions())
}

// Available reports whether name is on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// FirstAvailable returns the first command found on PATH.
func FirstAvailable(names ...string) (string, bool) {
	for _, name := range names {
		if Available(name) {
			return name, true
		}
	}
	return "", false
}

// FormatCommand joins a command line for display.
func FormatCommand(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// LastNLines returns the last n lines of s.
func LastNLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}

func debug(logger *log.Logger, msg string, keyvals ...any) {
	if logger != nil {
		logger.Debug(msg, keyvals...)
	}
}
