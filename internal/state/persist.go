package state

import (
	"errors"
	"io/fs"

	"github.com/linruohan/nohrs/internal/config"
)

// Persister loads and saves the settings record between runs.
type Persister interface {
	// Load returns the saved record. ok is false when nothing was saved.
	Load() (settings config.AppSettings, ok bool, err error)
	Save(settings config.AppSettings) error
}

// FilePersister stores the record as YAML at Path.
type FilePersister struct {
	Path string
}

// NewFilePersister returns a persister writing to path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: config.ExpandHome(path)}
}

// Load reads the record. A missing file is not an error.
func (p *FilePersister) Load() (config.AppSettings, bool, error) {
	settings, err := config.LoadAppSettings(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.AppSettings{}, false, nil
		}
		return config.AppSettings{}, false, err
	}
	return settings, true, nil
}

// Save writes the record, creating parent directories as needed.
func (p *FilePersister) Save(settings config.AppSettings) error {
	return settings.Save(p.Path)
}
