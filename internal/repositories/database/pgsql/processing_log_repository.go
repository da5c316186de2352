package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/core/domain"
	portsrepo "github.com/rkabera/momotrack/internal/core/ports/repositories"
)

type PgxProcessingLogRepository struct {
	BaseRepository
}

// NewProcessingLogRepository creates the structured log sink.
func NewProcessingLogRepository(pool *pgxpool.Pool) portsrepo.ProcessingLogRepository {
	return &PgxProcessingLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProcessingLogRepository = (*PgxProcessingLogRepository)(nil)

// SaveLogEntries appends all entries of one flush in a single batch, keeping
// their emission order.
func (r *PgxProcessingLogRepository) SaveLogEntries(ctx context.Context, runID string, entries []domain.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO processing_logs (run_id, kind, message, detail, severity, emitted_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, entry := range entries {
		batch.Queue(query, runID, entry.Kind, entry.Message, entry.Detail, string(entry.Severity), entry.Timestamp)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert processing log entries", err)
		}
	}
	return nil
}
