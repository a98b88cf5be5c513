package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/bloomify/sprig/internal/bloomify"
	"github.com/bloomify/sprig/internal/profile"
)

// LoadState tracks the progress of one remote resource.
type LoadState int

// Load states.
const (
	Pending LoadState = iota
	Succeeded
	Failed
)

func (l LoadState) String() string {
	switch l {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("LoadState(%d)", int(l))
	}
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Profile             *profile.User
	Sessions            []bloomify.Session
	ProfileLoad         LoadState
	SessionsLoad        LoadState
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive profile poll failures
	Version             uint64
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// UpdateProfile records the result of a profile fetch. When err is non-nil
// the previous profile is kept; the load state only turns Failed when
// there is nothing to show.
func (s *Store) UpdateProfile(u *profile.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Version++
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		if s.snapshot.Profile == nil {
			s.snapshot.ProfileLoad = Failed
		}
		return
	}

	s.snapshot.Profile = cloneUser(u)
	s.snapshot.ProfileLoad = Succeeded
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// UpdateSessions records the result of a session list fetch.
func (s *Store) UpdateSessions(sessions []bloomify.Session, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Version++
	if err != nil {
		s.snapshot.LastError = err
		if s.snapshot.Sessions == nil {
			s.snapshot.SessionsLoad = Failed
		}
		return
	}
	s.snapshot.Sessions = cloneSessions(sessions)
	if s.snapshot.Sessions == nil {
		s.snapshot.Sessions = []bloomify.Session{}
	}
	s.snapshot.SessionsLoad = Succeeded
}

// SetProfilePicture patches the stored profile after a successful upload.
func (s *Store) SetProfilePicture(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Profile == nil {
		return
	}
	s.snapshot.Profile.ProfilePicture = url
	s.snapshot.Version++
}

// RemoveSession drops a revoked session from the list.
func (s *Store) RemoveSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snapshot.Sessions[:0:0]
	for _, sess := range s.snapshot.Sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	s.snapshot.Sessions = kept
	s.snapshot.Version++
}

// Reset forgets all account data, e.g. after signing out.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{Version: s.snapshot.Version + 1}
}

// Version returns the snapshot version without copying.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Profile = cloneUser(s.snapshot.Profile)
	snap.Sessions = cloneSessions(s.snapshot.Sessions)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneUser(u *profile.User) *profile.User {
	if u == nil {
		return nil
	}
	dup := *u
	return &dup
}

func cloneSessions(items []bloomify.Session) []bloomify.Session {
	if items == nil {
		return nil
	}
	dup := make([]bloomify.Session, len(items))
	copy(dup, items)
	return dup
}
