package state

import (
	"testing"
	"time"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/rapidapi"
)

func exercises(ids ...string) []exercisedb.Exercise {
	out := make([]exercisedb.Exercise, len(ids))
	for i, id := range ids {
		out[i] = exercisedb.Exercise{ID: id, Name: "ex " + id}
	}
	return out
}

func TestStore_ReplaceAndSnapshotClone(t *testing.T) {
	s := NewStore(2)

	before := time.Now()
	s.Replace(exercises("1", "2", "3"), "", nil)

	snap := s.Snapshot()
	if len(snap.Exercises) != 3 || snap.Exercises[0].ID != "1" {
		t.Fatalf("snapshot exercises = %#v, want 3 items", snap.Exercises)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastFailure != nil {
		t.Fatalf("LastFailure = %v, want nil", snap.LastFailure)
	}

	snap.Exercises[0].ID = "999"
	if s.Snapshot().Exercises[0].ID != "1" {
		t.Fatalf("Snapshot should clone exercises")
	}
}

func TestStore_ReplaceResetsPage(t *testing.T) {
	s := NewStore(2)
	s.Replace(exercises("1", "2", "3", "4", "5"), "", nil)
	if got := s.SetPage(3); got != 3 {
		t.Fatalf("SetPage(3) = %d, want 3", got)
	}

	s.Replace(exercises("6", "7", "8"), "curl", nil)
	snap := s.Snapshot()
	if snap.PageIndex != 1 {
		t.Fatalf("PageIndex = %d after Replace, want 1", snap.PageIndex)
	}
	if snap.SearchTerm != "curl" {
		t.Fatalf("SearchTerm = %q, want curl", snap.SearchTerm)
	}
	if got := snap.Page().Items; len(got) != 2 || got[0].ID != "6" {
		t.Fatalf("Page().Items = %#v, want first two of new collection", got)
	}
}

func TestStore_FailureReplacesWithEmpty(t *testing.T) {
	s := NewStore(9)
	s.Replace(exercises("1", "2"), "", nil)

	failure := &rapidapi.Failure{Reason: rapidapi.ReasonHTTPStatus, Status: 403}
	s.Replace(nil, "", failure)

	snap := s.Snapshot()
	if snap.Exercises == nil || len(snap.Exercises) != 0 {
		t.Fatalf("Exercises = %#v, want empty non-nil", snap.Exercises)
	}
	if snap.LastFailure != failure {
		t.Fatalf("LastFailure = %v, want recorded failure", snap.LastFailure)
	}
	if snap.Loading {
		t.Fatalf("Loading should be cleared by Replace")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store
	failure := &rapidapi.Failure{Reason: rapidapi.ReasonTransport}

	if s.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.Replace(nil, "", failure)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: count=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Replace(nil, "", failure)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: count=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Replace(exercises("1"), "", nil)
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: count=%d offline=%v", snap.ConsecutiveFailures, snap.IsOffline())
	}
}

func TestStore_SetPageClamps(t *testing.T) {
	s := NewStore(9)
	s.Replace(exercises("1", "2", "3", "4", "5", "6", "7", "8", "9", "10"), "", nil)

	if got := s.SetPage(5); got != 2 {
		t.Fatalf("SetPage(5) = %d, want 2", got)
	}
	if got := s.SetPage(0); got != 1 {
		t.Fatalf("SetPage(0) = %d, want 1", got)
	}
}

func TestStore_ZeroValueSnapshot(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.PageIndex != 1 || snap.PageSize != 9 {
		t.Fatalf("zero snapshot page=%d size=%d, want 1/9", snap.PageIndex, snap.PageSize)
	}
	if snap.Exercises == nil {
		t.Fatalf("zero snapshot Exercises should be empty non-nil")
	}
}

func TestStore_BodyPartsCloned(t *testing.T) {
	var s Store
	parts := []string{"all", "back"}
	s.SetBodyParts(parts)
	s.SetBodyPart("back")
	parts[1] = "mutated"

	snap := s.Snapshot()
	if snap.BodyParts[1] != "back" || snap.BodyPart != "back" {
		t.Fatalf("body parts = %#v active = %q", snap.BodyParts, snap.BodyPart)
	}
}
