// Package platform opens links with the host desktop.
package platform

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/linruohan/nohrs/internal/exec"
)

// ErrNoOpener is returned when no browser launcher is available.
var ErrNoOpener = errors.New("no URL opener available")

// Opener returns the command used to open a URL on goos.
func Opener(goos string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		if name, ok := exec.FirstAvailable("xdg-open", "gio", "wslview"); ok {
			if name == "gio" {
				return name, []string{"open"}
			}
			return name, nil
		}
		return "", nil
	}
}

// ValidateURL accepts absolute http and https URLs.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return nil
}

// OpenURL opens raw in the default browser.
func OpenURL(ctx context.Context, raw string, logger *log.Logger) error {
	if err := ValidateURL(raw); err != nil {
		return err
	}
	name, args := Opener(runtime.GOOS)
	if name == "" {
		return fmt.Errorf("%w on %s", ErrNoOpener, runtime.GOOS)
	}

	opts := exec.DefaultOptions()
	opts.Timeout = 15 * time.Second
	opts.Logger = logger
	return exec.Run(ctx, name, append(args, raw), opts).Error()
}
