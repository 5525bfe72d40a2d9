// Package ui provides the Bubble Tea terminal interface for reps.
//
// # Views
//
//   - Browse: body-part filter chips, the search line, one page of exercises
//     and, when the collection spans several pages, a pagination control
//   - Detail: the selected exercise with instructions, related videos and
//     similar exercises, in a scrollable viewport
//   - Diagnostics: the tail of the reps log, one summarized line per entry
//
// # Data Flow
//
// The model never touches the network itself. Filter and search actions
// return tea.Cmd closures that call the Catalog; each closure resolves to a
// collectionMsg carrying the catalog.Outcome and a fresh state.Snapshot.
// Outcomes that were superseded by a newer fetch only refresh the snapshot.
// A successful search clears the search box and moves focus to the first
// result row.
//
// r re-fetches the active body part, which also picks up a body-part list
// that arrived after startup.
//
// Paging is synchronous: Catalog.SetPage clamps the index and the model
// re-reads the snapshot.
//
// # Themes
//
// Nightfox, Kanagawa and Slate are available; T cycles them and the choice
// is saved to the prefs file together with the last selected body part.
package ui
