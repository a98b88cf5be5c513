// Package session stores the API tokens on disk and inspects their claims
// for the token card.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrNoToken is returned when no access token has been stored.
var ErrNoToken = errors.New("no access token stored")

// Tokens is the pair issued by the auth endpoints.
type Tokens struct {
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// Valid reports whether an access token is present.
func (t Tokens) Valid() bool {
	return strings.TrimSpace(t.AccessToken) != ""
}

// Load reads the token file at path.
func Load(path string) (Tokens, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Tokens{}, ErrNoToken
		}
		return Tokens{}, fmt.Errorf("read tokens: %w", err)
	}

	var t Tokens
	if err := toml.Unmarshal(bytes, &t); err != nil {
		return Tokens{}, fmt.Errorf("parse tokens: %w", err)
	}
	t.AccessToken = strings.TrimSpace(t.AccessToken)
	t.RefreshToken = strings.TrimSpace(t.RefreshToken)
	if !t.Valid() {
		return t, ErrNoToken
	}
	return t, nil
}

// Save writes t to path with owner-only permissions.
func Save(path string, t Tokens) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	bytes, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o600); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

// Clear removes the token file. A missing file is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove tokens: %w", err)
	}
	return nil
}
