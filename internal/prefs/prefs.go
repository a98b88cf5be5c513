// Package prefs handles sprig user preferences persistence.
// Preferences are stored in ~/.config/sprig/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bloomify/sprig/internal/config"
)

// Prefs holds user preferences for sprig.
type Prefs struct {
	Theme         string `toml:"theme"`
	Notifications bool   `toml:"notifications"`
	Language      string `toml:"language"`
	DeviceID      string `toml:"device_id"`
}

const (
	defaultPrefsPath = "~/.config/sprig/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultLanguage  = "en"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns fresh preferences with a newly generated device id.
func Defaults() Prefs {
	return Prefs{
		Theme:         defaultTheme,
		Notifications: true,
		Language:      defaultLanguage,
		DeviceID:      uuid.NewString(),
	}
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. The second return reports whether the result
// differs from what is on disk and should be saved.
func Load(path string) (Prefs, bool) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), true
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), true
		}
		return Defaults(), true // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), true // Graceful degradation
	}

	p := Defaults()
	p.DeviceID = ""
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), true // Graceful degradation
	}

	dirty := false
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
		dirty = true
	}
	if strings.TrimSpace(p.Language) == "" {
		p.Language = defaultLanguage
		dirty = true
	}
	if _, err := uuid.Parse(p.DeviceID); err != nil {
		p.DeviceID = uuid.NewString()
		dirty = true
	}

	return p, dirty
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
