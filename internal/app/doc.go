// Package app provides the orchestration layer for sprig.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// Bloomify API client, the account service and the UI. It is the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// Setup performs the shared initialization:
//
//  1. Load ~/.config/sprig/config.toml (missing file uses defaults)
//  2. Open the JSON log file under the configured log dir
//  3. Load preferences, generating and saving a device id on first run
//  4. Open the on-disk cache
//  5. Build the Bloomify client and the account service
//
// Run then restores the cached profile, starts the poller and blocks in
// the TUI. Profile and ClearCache reuse Setup for the non-interactive
// subcommands.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> Setup()            Config, prefs, logger, cache, client
//	       ├─────> RestoreCached()    Seed store from cache
//	       ├─────> StartPoller()      Launch background sync
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> FetchProfile()                     │
//	│  ├─> FetchSessions()                    │
//	│  └─> store.Update*()  (locked)          │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller syncs every 10 seconds by default. Consecutive failures
// double the wait up to 30 seconds; the first success resets it. A
// signed-out account makes every sync a no-op.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config.toml
//   - Cache directory cannot be created
//   - Invalid api_url
//
// Recoverable errors (logged, the UI keeps running):
//   - Log directory not writable (logging is disabled)
//   - Profile or session fetch failures
//   - Preferences that cannot be saved
package app
