package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/core/domain"
	portsrepo "github.com/rkabera/momotrack/internal/core/ports/repositories"
	"github.com/rkabera/momotrack/internal/utils/mapping"
)

type PgxRawMessageRepository struct {
	BaseRepository
}

// NewRawMessageRepository creates the raw_sms store sink.
func NewRawMessageRepository(pool *pgxpool.Pool) portsrepo.RawMessageRepository {
	return &PgxRawMessageRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RawMessageRepository = (*PgxRawMessageRepository)(nil)

// SaveRawMessage appends one raw SMS row, attributes verbatim.
func (r *PgxRawMessageRepository) SaveRawMessage(ctx context.Context, msg domain.RawMessage, processed bool) error {
	row := mapping.ToModelRawSMS(msg, processed)
	query := `
		INSERT INTO raw_sms (protocol, address, date_timestamp, type, body, readable_date, contact_name, processed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		row.Protocol,
		row.Address,
		row.DateTimestamp,
		row.Type,
		row.Body,
		row.ReadableDate,
		row.ContactName,
		row.Processed,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert raw sms", err)
	}
	return nil
}
