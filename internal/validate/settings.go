package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/linruohan/nohrs/internal/settings"
)

// Registry reports the declared settings tree. build is called once; its
// error is the configuration error that would stop the settings view.
func Registry(build func() (*settings.Registry, error)) Result {
	result := Result{Section: "Settings tree"}

	reg, err := build()
	if err != nil {
		result.AddError(fmt.Sprintf("Settings: %v", err))
		result.AddItem(StatusError, "declaration", err.Error())
		return result
	}

	for _, page := range reg.Pages() {
		var notes []string
		if !page.Resettable {
			notes = append(notes, "not resettable")
		}
		status := StatusSuccess
		for _, item := range page.Items() {
			field := item.Field()
			if field.Kind() == settings.KindDropdown && field.SelectedIndex() < 0 {
				v, _ := field.Get()
				status = StatusWarning
				msg := fmt.Sprintf("%s/%s: value %q is not an option", page.Title, item.Label(), v)
				result.AddWarning(msg)
				notes = append(notes, item.Label()+" has no selection")
			}
		}
		if modified, err := reg.Modified(page.ID()); err == nil && len(modified) > 0 {
			notes = append(notes, fmt.Sprintf("%d modified", len(modified)))
		}
		result.AddItem(status, page.Title, strings.Join(notes, ", "))
	}
	return result
}

// CLIPath checks that path names an executable file.
func CLIPath(path string) Result {
	result := Result{Section: "CLI"}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		result.AddWarning(fmt.Sprintf("CLI path %s: %v", path, err))
		result.AddItem(StatusWarning, path, "not found")
	case info.IsDir():
		result.AddWarning(fmt.Sprintf("CLI path %s is a directory", path))
		result.AddItem(StatusWarning, path, "is a directory")
	case info.Mode().Perm()&0o111 == 0:
		result.AddWarning(fmt.Sprintf("CLI path %s is not executable", path))
		result.AddItem(StatusWarning, path, "not executable")
	default:
		result.AddItem(StatusSuccess, path, "")
	}
	return result
}
