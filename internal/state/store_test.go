package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/bloomify/sprig/internal/bloomify"
	"github.com/bloomify/sprig/internal/profile"
)

func TestStore_ZeroValueIsPending(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.ProfileLoad != Pending || snap.SessionsLoad != Pending {
		t.Fatalf("load states = %v/%v, want pending", snap.ProfileLoad, snap.SessionsLoad)
	}
	if snap.Profile != nil {
		t.Fatalf("Profile = %#v, want nil", snap.Profile)
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.UpdateProfile(&profile.User{ID: "u1", FirstName: "Ada"}, nil)
	s.UpdateSessions([]bloomify.Session{{ID: "a"}, {ID: "b"}}, nil)

	snap := s.Snapshot()
	if snap.ProfileLoad != Succeeded || snap.Profile.FirstName != "Ada" {
		t.Fatalf("snapshot profile = %#v (%v), want Ada succeeded", snap.Profile, snap.ProfileLoad)
	}
	if snap.SessionsLoad != Succeeded || len(snap.Sessions) != 2 {
		t.Fatalf("snapshot sessions = %#v, want 2 items", snap.Sessions)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.Version != 2 {
		t.Fatalf("Version = %d, want 2", snap.Version)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Profile.FirstName = "Mutated"
	snap.Sessions[0].ID = "zzz"
	snap2 := s.Snapshot()
	if snap2.Profile.FirstName != "Ada" {
		t.Fatalf("Snapshot should clone profile; got %q", snap2.Profile.FirstName)
	}
	if snap2.Sessions[0].ID != "a" {
		t.Fatalf("Snapshot should clone sessions; got id %q want a", snap2.Sessions[0].ID)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.UpdateProfile(&profile.User{ID: "u1"}, nil)
	origErr := errors.New("boom")
	s.UpdateProfile(nil, origErr)

	snap := s.Snapshot()
	if snap.Profile == nil || snap.Profile.ID != "u1" {
		t.Fatalf("profile changed on error: got %#v", snap.Profile)
	}
	if snap.ProfileLoad != Succeeded {
		t.Fatalf("ProfileLoad = %v, want succeeded while stale data exists", snap.ProfileLoad)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should wrap the original")
	}
}

func TestStore_FirstFailureIsFailed(t *testing.T) {
	var s Store
	s.UpdateProfile(nil, errors.New("down"))
	s.UpdateSessions(nil, errors.New("down"))

	snap := s.Snapshot()
	if snap.ProfileLoad != Failed || snap.SessionsLoad != Failed {
		t.Fatalf("load states = %v/%v, want failed", snap.ProfileLoad, snap.SessionsLoad)
	}
}

func TestStore_EmptySessionListSucceeds(t *testing.T) {
	var s Store
	s.UpdateSessions(nil, nil)
	snap := s.Snapshot()
	if snap.SessionsLoad != Succeeded {
		t.Fatalf("SessionsLoad = %v, want succeeded", snap.SessionsLoad)
	}
	if snap.Sessions == nil || len(snap.Sessions) != 0 {
		t.Fatalf("Sessions = %#v, want empty non-nil", snap.Sessions)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.UpdateProfile(nil, errors.New("fail 1"))
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.UpdateProfile(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	// Session failures do not count towards offline.
	s.UpdateSessions(nil, errors.New("sessions"))
	if got := s.Snapshot().ConsecutiveFailures; got != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", got)
	}

	s.UpdateProfile(&profile.User{}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("success should reset: failures=%d", snap.ConsecutiveFailures)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil after success", snap.LastError)
	}
}

func TestStore_PatchesAndReset(t *testing.T) {
	var s Store

	s.SetProfilePicture("ignored")
	if s.Snapshot().Profile != nil {
		t.Fatal("SetProfilePicture should not create a profile")
	}

	s.UpdateProfile(&profile.User{ID: "u1"}, nil)
	s.UpdateSessions([]bloomify.Session{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

	v := s.Version()
	s.SetProfilePicture("https://cdn/p.png")
	s.RemoveSession("b")
	if s.Version() != v+2 {
		t.Fatalf("Version = %d, want %d", s.Version(), v+2)
	}

	snap := s.Snapshot()
	if snap.Profile.ProfilePicture != "https://cdn/p.png" {
		t.Fatalf("ProfilePicture = %q", snap.Profile.ProfilePicture)
	}
	if len(snap.Sessions) != 2 || snap.Sessions[0].ID != "a" || snap.Sessions[1].ID != "c" {
		t.Fatalf("Sessions = %#v, want a and c", snap.Sessions)
	}

	s.Reset()
	snap = s.Snapshot()
	if snap.Profile != nil || snap.Sessions != nil || snap.ProfileLoad != Pending {
		t.Fatalf("Reset left data behind: %#v", snap)
	}
	if snap.Version <= v+2 {
		t.Fatalf("Reset should bump version, got %d", snap.Version)
	}
}

func TestLoadState_String(t *testing.T) {
	if Pending.String() != "pending" || Succeeded.String() != "succeeded" || Failed.String() != "failed" {
		t.Fatal("unexpected LoadState strings")
	}
	if LoadState(9).String() != "LoadState(9)" {
		t.Fatalf("unknown LoadState = %q", LoadState(9).String())
	}
}
