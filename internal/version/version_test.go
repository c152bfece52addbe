package version

import (
	"encoding/json"
	"runtime"
	"testing"
)

func TestCurrent_FillsRuntimeFields(t *testing.T) {
	info := Current()
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.Version == "" {
		t.Error("Version should never be empty")
	}
}

func TestInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"release", Info{Version: "v0.3.0", Commit: "0123456789abcdef"}, "v0.3.0"},
		{"dev without commit", Info{Version: "dev", Commit: "unknown"}, "dev"},
		{"dev with commit", Info{Version: "dev", Commit: "0123456789abcdef"}, "dev-0123456"},
		{"dirty", Info{Version: "dev", Commit: "abc", Dirty: true}, "dev-abc+dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfo_JSON(t *testing.T) {
	data, err := Info{Version: "v1.0.0", Commit: "abc", Platform: "linux/amd64"}.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["version"] != "v1.0.0" || decoded["platform"] != "linux/amd64" {
		t.Errorf("decoded = %v", decoded)
	}
	if _, ok := decoded["dirty"]; ok {
		t.Error("dirty should be omitted when false")
	}
}
