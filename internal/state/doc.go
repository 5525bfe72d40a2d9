// Package state holds the collection currently shown to the user.
//
// # Overview
//
// The Store is the single place where the catalog controller writes fetch
// outcomes and where the UI and CLI read them back. It carries the whole
// collection (never a page of it), the available body-part filters, the
// active filter, the current page index and the failure bookkeeping used by
// the header and diagnostics view.
//
// # Update Semantics
//
// Replace swaps the entire collection and always resets to page 1:
//
//	store.Replace(items, "", nil)
//	→ snapshot.Exercises = items
//	→ snapshot.PageIndex = 1
//	→ snapshot.LastFailure = nil
//
//	store.Replace(nil, "", failure)
//	→ snapshot.Exercises = []   (empty, never nil)
//	→ snapshot.PageIndex = 1
//	→ snapshot.LastFailure = failure
//	→ snapshot.ConsecutiveFailures++
//
// A failed fetch therefore shows an empty list rather than the previous
// collection. SetPage clamps to the pages that exist.
//
// # Concurrency Model
//
// Store uses a sync.RWMutex. Writers hold the lock only while copying;
// Snapshot returns copies so callers may keep them across renders.
//
// The zero Store is usable; NewStore only sets the page size.
package state
