package domain

import "time"

// Severity tags a processing log entry.
type Severity string

const (
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// LogEntry is one structured processing log line, ordered by emission.
// Detail holds optional JSON-encoded context (offending text, counters, ...).
type LogEntry struct {
	Kind      string
	Message   string
	Detail    *string
	Severity  Severity
	Timestamp time.Time
}

// OutcomeKind says what happened to a single message.
type OutcomeKind string

const (
	OutcomePersisted OutcomeKind = "PERSISTED"
	OutcomeSkipped   OutcomeKind = "SKIPPED"
	OutcomeFailed    OutcomeKind = "FAILED"
)

// Outcome is the per-message processing result.
type Outcome struct {
	Kind   OutcomeKind
	Record *TransactionRecord // set only when Kind is OutcomePersisted
	Reason string             // skip reason or error text otherwise
}

// RunSummary aggregates counters for one ingestion run.
// Processed + Ignored + Errors always equals Total.
type RunSummary struct {
	RunID     string
	Total     int
	Processed int
	Ignored   int
	Errors    int
}
