package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/core/domain"
	portsrepo "github.com/rkabera/momotrack/internal/core/ports/repositories"
	"github.com/rkabera/momotrack/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates the transaction store sink.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction appends one interpreted transaction row. No uniqueness is
// enforced on transaction_id; duplicate provider notifications are stored.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, record domain.TransactionRecord) error {
	row := mapping.ToModelTransaction(record)
	query := `
		INSERT INTO transactions (
			transaction_id, transaction_type, amount, fee,
			recipient_name, recipient_phone, sender_name, sender_phone,
			agent_name, agent_phone, balance_after,
			date_timestamp, date_readable, message_body,
			external_transaction_id, financial_transaction_id, token
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		row.TransactionID,
		row.TransactionType,
		row.Amount,
		row.Fee,
		row.RecipientName,
		row.RecipientPhone,
		row.SenderName,
		row.SenderPhone,
		row.AgentName,
		row.AgentPhone,
		row.BalanceAfter,
		row.DateTimestamp,
		row.DateReadable,
		row.MessageBody,
		row.ExternalTransactionID,
		row.FinancialTransactionID,
		row.Token,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction", err)
	}
	return nil
}
