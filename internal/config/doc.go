// Package config loads the reps configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/reps/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. REPS_RAPIDAPI_KEY, then RAPID_API_KEY, override api_key when set
//
// # Configuration Fields
//
//	api_key           = "..."                                   # RapidAPI key
//	exercise_base_url = "https://exercisedb.p.rapidapi.com"
//	exercise_host     = "exercisedb.p.rapidapi.com"
//	video_base_url    = "https://youtube-search-and-download.p.rapidapi.com"
//	video_host        = "youtube-search-and-download.p.rapidapi.com"
//	page_size         = 9
//	request_timeout   = 0                                       # seconds, 0 = none
//	log_dir           = "~/.local/state/reps"
//	log_level         = "info"
//
// A missing API key does not fail Load. Validate reports it, and callers
// that talk to the network refuse to start without one.
//
// # Path Expansion
//
// Paths beginning with ~ are expanded to the user's home directory and made
// absolute.
package config
