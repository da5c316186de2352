package models

import "time"

// ProcessingLog is the processing_logs table row: one structured log entry
// emitted during an ingestion run.
type ProcessingLog struct {
	RunID     string    `json:"runID"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Detail    *string   `json:"detail"` // JSON-encoded context, optional
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}
