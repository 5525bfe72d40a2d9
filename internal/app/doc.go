// Package app is the composition root for reps.
//
// # Overview
//
// Build wires configuration, logging, the two RapidAPI gateways, the typed
// API clients, the collection controller and the detail loader into a
// Runtime. The TUI (Run) and every CLI subcommand start from the same
// Runtime, so both surfaces share one pipeline.
//
// # Initialization
//
//  1. Load ~/.config/reps/config.toml (or the --config override) and apply
//     the API key environment variables
//  2. Validate the config; a missing API key stops here
//  3. Load user preferences (theme, last body part)
//  4. Open the zap file logger under log_dir
//  5. Build one gateway per RapidAPI host (ExerciseDB, video search)
//  6. Create the state.Store and the catalog.Controller publishing into it
//  7. Create the detail.Loader over both clients
//
// Run then fetches the body-part list, starting a background retry with
// backoff if that fails, and hands control to the Bubble Tea program until
// the user quits.
//
// # Data Flow
//
//	filter/search ──▶ catalog.Controller ──▶ exercisedb.Client ──▶ rapidapi.Gateway
//	                        │                                          │
//	                        ▼                                          ▼
//	                   state.Store ◀────────── Result / Failure ◀── HTTP GET
//	                        │
//	                        ▼
//	             ui (paginate.Page of the snapshot)
package app
