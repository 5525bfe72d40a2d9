package state

import (
	"slices"
	"sync"
	"time"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/paginate"
	"github.com/five82/reps/internal/rapidapi"
)

// Snapshot represents the latest data available to the display layer.
type Snapshot struct {
	Exercises           []exercisedb.Exercise
	BodyParts           []string
	BodyPart            string
	SearchTerm          string // term behind the current collection; empty for filter fetches
	PageIndex           int
	PageSize            int
	Loading             bool
	LastUpdated         time.Time
	LastFailure         *rapidapi.Failure
	ConsecutiveFailures int
}

// IsOffline returns true when the API has failed several times in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Page returns the visible page of the collection.
func (s Snapshot) Page() paginate.Page[exercisedb.Exercise] {
	return paginate.Paginate(s.Exercises, s.PageSize, s.PageIndex)
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a Store with an empty collection on page 1.
func NewStore(pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = paginate.DefaultPageSize
	}
	return &Store{snapshot: Snapshot{
		Exercises: []exercisedb.Exercise{},
		PageIndex: 1,
		PageSize:  pageSize,
	}}
}

// Replace swaps the whole collection and resets to page 1. A non-nil failure
// still replaces the collection (with empty) and is recorded for display.
func (s *Store) Replace(items []exercisedb.Exercise, searchTerm string, failure *rapidapi.Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureDefaults()
	s.snapshot.Exercises = cloneExercises(items)
	s.snapshot.SearchTerm = searchTerm
	s.snapshot.PageIndex = 1
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	if failure != nil {
		s.snapshot.LastFailure = failure
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastFailure = nil
	s.snapshot.ConsecutiveFailures = 0
}

// SetBodyParts records the filter choices.
func (s *Store) SetBodyParts(parts []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.BodyParts = slices.Clone(parts)
}

// SetBodyPart records the active filter.
func (s *Store) SetBodyPart(part string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.BodyPart = part
}

// SetLoading marks whether a fetch is in flight.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = loading
}

// SetPage moves to index, clamped to the current collection, and returns
// the page actually selected.
func (s *Store) SetPage(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureDefaults()
	s.snapshot.PageIndex = paginate.Clamp(index, len(s.snapshot.Exercises), s.snapshot.PageSize)
	return s.snapshot.PageIndex
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Exercises = cloneExercises(s.snapshot.Exercises)
	snap.BodyParts = slices.Clone(s.snapshot.BodyParts)
	if snap.PageIndex < 1 {
		snap.PageIndex = 1
	}
	if snap.PageSize <= 0 {
		snap.PageSize = paginate.DefaultPageSize
	}
	return snap
}

func (s *Store) ensureDefaults() {
	if s.snapshot.PageSize <= 0 {
		s.snapshot.PageSize = paginate.DefaultPageSize
	}
	if s.snapshot.PageIndex < 1 {
		s.snapshot.PageIndex = 1
	}
}

// cloneExercises copies the slice header storage; records themselves are
// never mutated so a shallow copy is enough. The result is never nil.
func cloneExercises(items []exercisedb.Exercise) []exercisedb.Exercise {
	dup := make([]exercisedb.Exercise, len(items))
	copy(dup, items)
	return dup
}
