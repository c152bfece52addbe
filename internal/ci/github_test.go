package ci

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func TestAnnotations_GitHubActions(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	buf := captureOutput(t)

	StartGroup("Settings tree")
	LogError("bad default", "nohrs.yaml")
	LogWarning("no selection")
	EndGroup()

	want := "::group::Settings tree\n::error file=nohrs.yaml::bad default\n::warning::no selection\n::endgroup::\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestAnnotations_Silent(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	buf := captureOutput(t)

	StartGroup("x")
	LogError("y", "")
	EndGroup()
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_REPOSITORY", "linruohan/nohrs")

	env := Detect()
	if !env.IsCI || !env.IsGitHubActions || env.Repository != "linruohan/nohrs" {
		t.Errorf("Detect() = %+v", env)
	}
}

func TestEnvironment_RunLabel(t *testing.T) {
	tests := []struct {
		name string
		env  *Environment
		want string
	}{
		{"nil", nil, ""},
		{"not actions", &Environment{IsCI: true, Repository: "a/b"}, ""},
		{"repository only", &Environment{IsGitHubActions: true, Repository: "a/b"}, "a/b"},
		{"full", &Environment{IsGitHubActions: true, Repository: "a/b", SHA: "0123456789", Workflow: "ci", RunID: "7"}, "a/b@0123456 (ci, run 7)"},
		{"short sha", &Environment{IsGitHubActions: true, Repository: "a/b", SHA: "abc"}, "a/b@abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.env.RunLabel(); got != tt.want {
				t.Errorf("RunLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	t.Setenv("GITHUB_STEP_SUMMARY", path)

	if err := AddSummary("## Settings check"); err != nil {
		t.Fatalf("AddSummary failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "## Settings check") {
		t.Errorf("summary = %q", data)
	}
}
