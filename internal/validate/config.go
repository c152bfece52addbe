package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/linruohan/nohrs/internal/config"
)

// Config validates the nohrs configuration file at path.
func Config(path string) Result {
	result := Result{Section: "Configuration"}
	name := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		result.AddPending(name + " not found")
		result.AddItem(StatusPending, name, "not found, using defaults")
		return result
	}

	loaded, err := config.Load(path)
	if err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	if err := loaded.Validate(); err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	result.AddItem(StatusSuccess, name, "")
	return result
}

// State validates a persisted settings file. An empty path means
// persistence is disabled.
func State(path string) Result {
	result := Result{Section: "Saved settings"}
	if path == "" {
		result.AddPending("persistence disabled")
		result.AddItem(StatusPending, "settings", "persistence disabled")
		return result
	}
	name := filepath.Base(path)

	saved, err := config.LoadAppSettings(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.AddPending(name + " not written yet")
			result.AddItem(StatusPending, name, "not written yet")
			return result
		}
		result.AddError(fmt.Sprintf("State: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	if err := saved.Validate(); err != nil {
		result.AddWarning(fmt.Sprintf("State: %v", err))
		result.AddItem(StatusWarning, name, err.Error())
		return result
	}
	result.AddItem(StatusSuccess, name, "")
	return result
}
