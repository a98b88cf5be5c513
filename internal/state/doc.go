// Package state provides thread-safe state shared between the poller and
// the UI.
//
// The poller writes profile and session results with UpdateProfile and
// UpdateSessions; the UI reads copies with Snapshot. Every write bumps
// Snapshot.Version so the UI can skip re-rendering when nothing changed.
//
// Failed fetches keep the previous data and record LastError. A resource
// only reads as Failed when there is no earlier successful result to show,
// so a flaky network degrades to stale data rather than an empty screen.
//
// The zero Store is ready to use.
package state
