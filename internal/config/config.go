package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where sprig talks to and where it keeps its files.
type Config struct {
	APIURL    string
	CacheDir  string
	LogDir    string
	TokenPath string
	Currency  string
	Debug     bool
}

const (
	defaultConfigPath = "~/.config/sprig/config.toml"
	defaultAPIURL     = "https://api.bloomify.app"
	defaultCacheDir   = "~/.cache/sprig"
	defaultLogDir     = "~/.local/share/sprig/logs"
	defaultTokenPath  = "~/.config/sprig/token.toml"
	defaultCurrency   = "KES"
)

// Load locates and parses the sprig config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL    string `toml:"api_url"`
		CacheDir  string `toml:"cache_dir"`
		LogDir    string `toml:"log_dir"`
		TokenPath string `toml:"token_path"`
		Currency  string `toml:"currency"`
		Debug     bool   `toml:"debug"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		APIURL:    orDefault(raw.APIURL, defaultAPIURL),
		CacheDir:  mustExpand(orDefault(raw.CacheDir, defaultCacheDir)),
		LogDir:    mustExpand(orDefault(raw.LogDir, defaultLogDir)),
		TokenPath: mustExpand(orDefault(raw.TokenPath, defaultTokenPath)),
		Currency:  strings.ToUpper(orDefault(raw.Currency, defaultCurrency)),
		Debug:     raw.Debug,
	}
	return cfg, nil
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		APIURL:    defaultAPIURL,
		CacheDir:  mustExpand(defaultCacheDir),
		LogDir:    mustExpand(defaultLogDir),
		TokenPath: mustExpand(defaultTokenPath),
		Currency:  defaultCurrency,
	}
}

// LogPath returns the path to sprig's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/sprig.log")
	}
	return filepath.Join(c.LogDir, "sprig.log")
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
