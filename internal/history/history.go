// Package history records past matching requests in SQLite so reviewers can
// audit what the pipeline returned for each symptom.
package history

import "time"

// Entry is one recorded matching request.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Symptom    string    `json:"symptom"`
	Details    string    `json:"details,omitempty"`
	CTCAETerm  string    `json:"ctcae_term,omitempty"`
	Grade      string    `json:"grade,omitempty"`
	MedDRASOC  string    `json:"meddra_soc,omitempty"`
	Confidence string    `json:"confidence,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
}
