// Package models defines the value objects shared across the handoff packages.
package models

// SessionFileRef identifies a session file parsed from its on-disk name.
// ShortID is the sentinel "no-id" for legacy filenames without an id segment.
type SessionFileRef struct {
	Filename string `json:"filename"`
	Date     string `json:"date"`
	ShortID  string `json:"short_id"`
}

// NoID is the ShortID sentinel for legacy filenames.
const NoID = "no-id"

// SessionMetadata holds the structured fields extracted from a session file
// body. Absent fields are empty strings / nil slices, never an error.
type SessionMetadata struct {
	Title       string   `json:"title,omitempty"`
	Date        string   `json:"date,omitempty"`
	Started     string   `json:"started,omitempty"`
	LastUpdated string   `json:"last_updated,omitempty"`
	Completed   []string `json:"completed,omitempty"`
	InProgress  []string `json:"in_progress,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Context     string   `json:"context,omitempty"`
}

// SessionStats are the derived counts for a session body.
// TotalItems is always CompletedItems + InProgressItems.
type SessionStats struct {
	TotalItems      int `json:"total_items"`
	CompletedItems  int `json:"completed_items"`
	InProgressItems int `json:"in_progress_items"`
	LineCount       int `json:"line_count"`
}

// SessionSummary is a listing row: the parsed file reference plus the cheap
// per-file derivations used by the CLI table.
type SessionSummary struct {
	Ref   SessionFileRef `json:"ref"`
	Path  string         `json:"path"`
	Title string         `json:"title"`
	Size  string         `json:"size"`
	Stats SessionStats   `json:"stats"`
}
