// Package config handles loading and parsing the sprig configuration file.
//
// # Overview
//
// The config file tells sprig which Bloomify API to talk to and where to
// keep its files. Preferences that the UI changes at runtime (theme,
// language, notifications) live in the prefs package instead.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sprig/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - API URL: https://api.bloomify.app
//   - Cache directory: ~/.cache/sprig
//   - Log directory: ~/.local/share/sprig/logs (log file: sprig.log)
//   - Token file: ~/.config/sprig/token.toml
//   - Currency: KES
//
// # TOML Format
//
//	api_url = "https://api.bloomify.app"
//	cache_dir = "~/.cache/sprig"
//	log_dir = "~/.local/share/sprig/logs"
//	token_path = "~/.config/sprig/token.toml"
//	currency = "KES"
//	debug = false
//
// Every field is optional. Values are trimmed, the currency is upper-cased
// and tilde paths are expanded to absolute paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error, so sprig works without any setup.
package config
