// Package ui provides the terminal settings console for sprig.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds the current store snapshot,
// the settings sections built from it, and at most one overlay. Views are
// pure functions of the model; all I/O runs in tea.Cmd functions.
//
// # Package Structure
//
//   - app.go: Model, Options, the update loop and Run
//   - dispatch.go: row actions, asynchronous account calls and toasts
//   - view.go: header, profile card, settings list and footer
//   - docs.go: searchable, expandable documents (help, privacy, terms)
//   - sessions.go, picture.go, diagnostics.go: the remaining overlays
//   - theme.go, keys.go, layout.go: colors, key bindings and sizing
//
// # Data Flow
//
// A background poller writes into state.Store. A one-second tick copies
// the latest snapshot into the model and rebuilds the sections whenever
// the snapshot version changes. Row activation yields a settings.Action
// which dispatch turns into a preference change, an overlay or an
// account call. Account results come back as actionResultMsg.
//
// # Overlays
//
// Overlays implement Modal. Snapshot-aware overlays (active sessions)
// receive every new snapshot so they stay current while open. Escape
// closes an overlay; in a document it first leaves search mode.
package ui
