// Package repositories defines the persistence ports consumed by the core
// services. Implementations live under internal/repositories.
package repositories

import (
	"context"

	"github.com/rkabera/momotrack/internal/core/domain"
)

// RawMessageRepository is the raw-store sink: one row per input message,
// attributes verbatim, plus a processed flag.
type RawMessageRepository interface {
	SaveRawMessage(ctx context.Context, msg domain.RawMessage, processed bool) error
}

// TransactionRepository is the transaction-store sink. Duplicate transaction
// ids are allowed; deduplication is not this layer's job.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, record domain.TransactionRecord) error
}

// ProcessingLogRepository is the log sink for structured run entries.
type ProcessingLogRepository interface {
	SaveLogEntries(ctx context.Context, runID string, entries []domain.LogEntry) error
}

// ReportingRepository serves the read side of the dashboard API.
type ReportingRepository interface {
	GetStats(ctx context.Context) (*domain.StatsReport, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionRecord, int64, error)
	ListTransactionTypes(ctx context.Context) ([]domain.TypeCount, error)
}
