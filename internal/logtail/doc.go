// Package logtail reads the end of the diagnostic log for the TUI.
//
// Read extracts the last N lines from a file with a ring buffer, so memory
// stays bounded regardless of file size. Parse and Entry.Summary turn the
// zap JSON lines written by internal/logging into one-line summaries such
// as:
//
//	14:32:15 WARN gateway request failed reason=http_status status=403 url=...
//
// Lines that are not JSON are shown as-is.
package logtail
