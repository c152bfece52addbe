// Package ci formats check output for CI runners
package ci

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var out io.Writer = os.Stdout

// Environment represents the CI environment
type Environment struct {
	IsCI            bool
	IsGitHubActions bool

	Repository string
	SHA        string
	RunID      string
	Workflow   string
}

// Detect detects the current CI environment
func Detect() *Environment {
	env := &Environment{}

	env.IsCI = os.Getenv("CI") == "true"
	env.IsGitHubActions = os.Getenv("GITHUB_ACTIONS") == "true"

	if env.IsGitHubActions {
		env.Repository = os.Getenv("GITHUB_REPOSITORY")
		env.SHA = os.Getenv("GITHUB_SHA")
		env.RunID = os.Getenv("GITHUB_RUN_ID")
		env.Workflow = os.Getenv("GITHUB_WORKFLOW")
	}

	return env
}

// RunLabel describes the workflow run, e.g. "linruohan/nohrs@1a2b3c4 (check, run 42)".
// It is empty outside GitHub Actions or for a nil environment.
func (e *Environment) RunLabel() string {
	if e == nil || !e.IsGitHubActions || e.Repository == "" {
		return ""
	}
	label := e.Repository
	if sha := e.SHA; sha != "" {
		if len(sha) > 7 {
			sha = sha[:7]
		}
		label += "@" + sha
	}
	var extra []string
	if e.Workflow != "" {
		extra = append(extra, e.Workflow)
	}
	if e.RunID != "" {
		extra = append(extra, "run "+e.RunID)
	}
	if len(extra) > 0 {
		label += " (" + strings.Join(extra, ", ") + ")"
	}
	return label
}

func githubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// StartGroup starts a log group in GitHub Actions
func StartGroup(name string) {
	if githubActions() {
		fmt.Fprintf(out, "::group::%s\n", name) //nolint:errcheck
	}
}

// EndGroup ends a log group in GitHub Actions
func EndGroup() {
	if githubActions() {
		fmt.Fprintln(out, "::endgroup::") //nolint:errcheck
	}
}

// LogError logs an error annotation
func LogError(message string, file string) {
	if !githubActions() {
		return
	}
	if file != "" {
		fmt.Fprintf(out, "::error file=%s::%s\n", file, message) //nolint:errcheck
		return
	}
	fmt.Fprintf(out, "::error::%s\n", message) //nolint:errcheck
}

// LogWarning logs a warning annotation
func LogWarning(message string) {
	if githubActions() {
		fmt.Fprintf(out, "::warning::%s\n", message) //nolint:errcheck
	}
}

// AddSummary adds content to the job summary
func AddSummary(markdown string) error {
	summaryFile := os.Getenv("GITHUB_STEP_SUMMARY")
	if summaryFile == "" {
		return nil
	}

	f, err := os.OpenFile(summaryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening GITHUB_STEP_SUMMARY: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n", markdown)
	return err
}
