package cmd

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/linruohan/nohrs/internal/ci"
	"github.com/linruohan/nohrs/internal/config"
	"github.com/linruohan/nohrs/internal/pages"
	"github.com/linruohan/nohrs/internal/settings"
	"github.com/linruohan/nohrs/internal/state"
	"github.com/linruohan/nohrs/internal/validate"
)

func withTestStore(t *testing.T) {
	t.Helper()
	prevStore, prevLogger, prevView := store, logger, view
	t.Cleanup(func() {
		store, logger, view = prevStore, prevLogger, prevView
	})

	logger = log.New(io.Discard)
	view = pages.NewView()
	store = state.New()
	if err := store.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"label and value", []string{"Font Size", "18"}, "Font Size=18", false},
		{"pairs", []string{"Font Size=18", " Dark Mode = on "}, "Font Size=18, Dark Mode=on", false},
		{"value with equals", []string{"CLI Path=/bin/a=b"}, "CLI Path=/bin/a=b", false},
		{"missing equals", []string{"Font Size=18", "Dark Mode"}, "", true},
		{"empty label", []string{"=on"}, "", true},
		{"nothing", nil, "", true},
		{"blank only", []string{"  "}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAssignments(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s := formatAssignments(got); s != tt.want {
				t.Errorf("parseAssignments(%q) = %q, want %q", tt.args, s, tt.want)
			}
		})
	}
}

func TestApplyAssignments(t *testing.T) {
	withTestStore(t)

	reg, err := buildRegistry()
	if err != nil {
		t.Fatalf("buildRegistry failed: %v", err)
	}

	changes, err := applyAssignments(reg, "general", []assignment{
		{Label: "font size", Value: "100"},
		{Label: "Dark Mode", Value: "on"},
		{Label: "Font Family", Value: "Arial"},
	})
	if err != nil {
		t.Fatalf("applyAssignments failed: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %v", len(changes), changes)
	}
	if changes[0].To != "72" {
		t.Errorf("font size change = %v, want clamped to 72", changes[0])
	}

	snap, _ := store.Snapshot()
	if snap.FontSize != config.MaxFontSize || !snap.DarkMode {
		t.Errorf("record = %+v", snap)
	}
}

func TestApplyAssignments_Errors(t *testing.T) {
	withTestStore(t)

	reg, err := buildRegistry()
	if err != nil {
		t.Fatalf("buildRegistry failed: %v", err)
	}

	if _, err := applyAssignments(reg, "nowhere", nil); !errors.Is(err, settings.ErrPageNotFound) {
		t.Errorf("unknown page: got %v", err)
	}

	changes, err := applyAssignments(reg, "general", []assignment{
		{Label: "Line Height", Value: "20"},
		{Label: "Volume", Value: "3"},
	})
	if !errors.Is(err, errUnknownSetting) {
		t.Errorf("unknown label: got %v", err)
	}
	if len(changes) != 1 {
		t.Errorf("changes before the failure should be kept, got %v", changes)
	}

	if _, err := applyAssignments(reg, "general", []assignment{{Label: "Font Family", Value: "Comic Sans"}}); !errors.Is(err, settings.ErrUnknownOption) {
		t.Errorf("unknown option: got %v", err)
	}
}

func TestSettingsMenuItems(t *testing.T) {
	withTestStore(t)

	reg, err := buildRegistry()
	if err != nil {
		t.Fatalf("buildRegistry failed: %v", err)
	}
	if err := store.Update(func(s *config.AppSettings) { s.FontSize = 20 }); err != nil {
		t.Fatal(err)
	}

	items := settingsMenuItems(reg)
	if len(items) != len(reg.Pages())+2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].ID != "general" || items[0].Badge != "1 modified" || items[0].Preview == "" {
		t.Errorf("first item = %+v", items[0])
	}
	if last := items[len(items)-1]; last.ID != settingsActionExit {
		t.Errorf("last item = %+v", last)
	}
}

func TestStatusIcon(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []validate.Status{validate.StatusSuccess, validate.StatusWarning, validate.StatusPending, validate.StatusError} {
		seen[statusIcon(s)] = true
	}
	if len(seen) != 4 {
		t.Errorf("status icons are not distinct: %v", seen)
	}
}

func TestCheckSummaryMarkdown(t *testing.T) {
	results := []validate.Result{{Section: "CLI"}}
	results[0].AddItem(validate.StatusWarning, "/usr/local/bin/bash", "not found")

	md := checkSummaryMarkdown(results, nil)
	if !strings.Contains(md, "| CLI | /usr/local/bin/bash | warning |") {
		t.Errorf("summary = %q", md)
	}
	if strings.Contains(md, "_") {
		t.Errorf("summary without a run should have no run line: %q", md)
	}

	env := &ci.Environment{IsGitHubActions: true, Repository: "linruohan/nohrs", SHA: "1a2b3c4d5e", RunID: "42", Workflow: "check"}
	md = checkSummaryMarkdown(results, env)
	if !strings.Contains(md, "_linruohan/nohrs@1a2b3c4 (check, run 42)_") {
		t.Errorf("summary missing run line: %q", md)
	}
}

func TestPageFormKeyMap(t *testing.T) {
	keys := pageFormKeyMap().Quit.Keys()
	has := func(k string) bool {
		for _, got := range keys {
			if got == k {
				return true
			}
		}
		return false
	}
	if !has("esc") || !has("ctrl+c") {
		t.Errorf("Quit keys = %v, want esc and ctrl+c", keys)
	}
	if has("q") {
		t.Error("q must stay typeable in page form inputs")
	}
}

func TestVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionJSON = true
	t.Cleanup(func() {
		versionJSON = false
		versionCmd.SetOut(nil)
	})

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"go_version"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPageIDs(t *testing.T) {
	ids := pageIDs()
	if len(ids) != len(pages.Kinds()) {
		t.Fatalf("got %d ids", len(ids))
	}
	for _, id := range ids {
		if _, err := pages.ParseKind(id); err != nil {
			t.Errorf("ParseKind(%q) failed: %v", id, err)
		}
	}
}

func TestSettingsExport(t *testing.T) {
	withTestStore(t)
	prevQuery := exportQuery
	t.Cleanup(func() { exportQuery = prevQuery })

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{"font size", "general.items.font-size.value", "14", false},
		{"page title", "software-update.title", `"Software Update"`, false},
		{"missing", "general.items.nope", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exportQuery = tt.query
			var out bytes.Buffer
			settingsExportCmd.SetOut(&out)
			err := settingsExportCmd.RunE(settingsExportCmd, nil)
			if tt.wantErr {
				if !errors.Is(err, errUnknownSetting) {
					t.Fatalf("err = %v, want errUnknownSetting", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("export failed: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
