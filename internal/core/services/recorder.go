package services

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/rkabera/momotrack/internal/core/domain"
)

// RunRecorder buffers the ordered, severity-tagged log entries of one
// ingestion run and mirrors each entry to the structured logger. The buffer is
// drained in chunks by the pipeline and persisted through the log repository.
// Safe for concurrent use so message processing can be parallelized later.
type RunRecorder struct {
	mu      sync.Mutex
	logger  *slog.Logger
	entries []domain.LogEntry
	now     func() time.Time
}

// NewRunRecorder creates a recorder mirroring entries to the given logger.
func NewRunRecorder(logger *slog.Logger) *RunRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunRecorder{
		logger: logger,
		now:    time.Now,
	}
}

// Debug records a debug-severity entry.
func (r *RunRecorder) Debug(kind, message string, detail any) {
	r.record(domain.SeverityDebug, kind, message, detail)
}

// Info records an info-severity entry.
func (r *RunRecorder) Info(kind, message string, detail any) {
	r.record(domain.SeverityInfo, kind, message, detail)
}

// Warn records a warning-severity entry.
func (r *RunRecorder) Warn(kind, message string, detail any) {
	r.record(domain.SeverityWarning, kind, message, detail)
}

// Error records an error-severity entry.
func (r *RunRecorder) Error(kind, message string, detail any) {
	r.record(domain.SeverityError, kind, message, detail)
}

func (r *RunRecorder) record(severity domain.Severity, kind, message string, detail any) {
	entry := domain.LogEntry{
		Kind:      kind,
		Message:   message,
		Severity:  severity,
		Timestamp: r.now(),
	}
	if detail != nil {
		if encoded, err := json.Marshal(detail); err == nil {
			s := string(encoded)
			entry.Detail = &s
		}
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()

	attrs := []any{slog.String("kind", kind)}
	if entry.Detail != nil {
		attrs = append(attrs, slog.String("detail", *entry.Detail))
	}
	switch severity {
	case domain.SeverityDebug:
		r.logger.Debug(message, attrs...)
	case domain.SeverityWarning:
		r.logger.Warn(message, attrs...)
	case domain.SeverityError:
		r.logger.Error(message, attrs...)
	default:
		r.logger.Info(message, attrs...)
	}
}

// Drain returns all buffered entries in emission order and clears the buffer.
func (r *RunRecorder) Drain() []domain.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	drained := r.entries
	r.entries = nil
	return drained
}

// Entries returns a copy of the buffered entries without clearing them.
func (r *RunRecorder) Entries() []domain.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
