package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/core/domain"
	portsrepo "github.com/rkabera/momotrack/internal/core/ports/repositories"
	"github.com/rkabera/momotrack/internal/models"
	"github.com/rkabera/momotrack/internal/utils/mapping"
)

type PgxReportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates the read-side repository for the dashboard.
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// transactionColumns is the select list shared by the listing queries; it must
// stay in sync with scanTransaction.
const transactionColumns = `
	transaction_id, transaction_type, amount, fee,
	recipient_name, recipient_phone, sender_name, sender_phone,
	agent_name, agent_phone, balance_after,
	date_timestamp, date_readable, message_body,
	external_transaction_id, financial_transaction_id, token
`

// GetStats aggregates the dashboard statistics. OTP messages are excluded
// from the per-type and monthly financial aggregates.
func (r *PgxReportingRepository) GetStats(ctx context.Context) (*domain.StatsReport, error) {
	report := &domain.StatsReport{}

	totalsQuery := `
		SELECT COUNT(*),
		       COALESCE(SUM(amount), 0),
		       COALESCE(SUM(fee) FILTER (WHERE fee > 0), 0)
		FROM transactions;
	`
	err := r.Pool.QueryRow(ctx, totalsQuery).Scan(
		&report.TotalTransactions,
		&report.TotalAmount,
		&report.TotalFees,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction totals", err)
	}

	breakdownQuery := `
		SELECT transaction_type, COUNT(*), COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE transaction_type <> 'OTP_MESSAGE'
		GROUP BY transaction_type
		ORDER BY COUNT(*) DESC;
	`
	rows, err := r.Pool.Query(ctx, breakdownQuery)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query type breakdown", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b domain.TypeBreakdown
		if err := rows.Scan(&b.TransactionType, &b.Count, &b.TotalAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan type breakdown row", err)
		}
		report.TypeBreakdown = append(report.TypeBreakdown, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading type breakdown rows", err)
	}

	monthlyQuery := `
		SELECT to_char(to_timestamp(date_timestamp / 1000.0), 'YYYY-MM') AS month,
		       COUNT(*),
		       COALESCE(SUM(amount), 0),
		       COALESCE(SUM(fee), 0)
		FROM transactions
		WHERE transaction_type <> 'OTP_MESSAGE'
		GROUP BY month
		ORDER BY month DESC
		LIMIT 12;
	`
	monthRows, err := r.Pool.Query(ctx, monthlyQuery)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query monthly stats", err)
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var m domain.MonthlyStat
		if err := monthRows.Scan(&m.Month, &m.TransactionCount, &m.TotalAmount, &m.TotalFees); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly stats row", err)
		}
		report.MonthlyStats = append(report.MonthlyStats, m)
	}
	if err := monthRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading monthly stats rows", err)
	}

	return report, nil
}

// ListTransactions returns one filtered, date-descending page plus the total
// match count. OTP messages never appear in listings.
func (r *PgxReportingRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionRecord, int64, error) {
	where, args := buildTransactionFilter(filter)

	var total int64
	countQuery := "SELECT COUNT(*) FROM transactions " + where
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	dataQuery := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		%s
		ORDER BY date_timestamp DESC
		LIMIT $%d OFFSET $%d;
	`, transactionColumns, where, limitArg, offsetArg)

	rows, err := r.Pool.Query(ctx, dataQuery, append(args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var row models.Transaction
		if err := rows.Scan(
			&row.TransactionID,
			&row.TransactionType,
			&row.Amount,
			&row.Fee,
			&row.RecipientName,
			&row.RecipientPhone,
			&row.SenderName,
			&row.SenderPhone,
			&row.AgentName,
			&row.AgentPhone,
			&row.BalanceAfter,
			&row.DateTimestamp,
			&row.DateReadable,
			&row.MessageBody,
			&row.ExternalTransactionID,
			&row.FinancialTransactionID,
			&row.Token,
		); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed reading transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(out), total, nil
}

// ListTransactionTypes returns the distinct stored types with counts.
func (r *PgxReportingRepository) ListTransactionTypes(ctx context.Context) ([]domain.TypeCount, error) {
	query := `
		SELECT transaction_type, COUNT(*)
		FROM transactions
		WHERE transaction_type <> 'OTP_MESSAGE'
		GROUP BY transaction_type
		ORDER BY COUNT(*) DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction types", err)
	}
	defer rows.Close()

	var out []domain.TypeCount
	for rows.Next() {
		var tc domain.TypeCount
		if err := rows.Scan(&tc.TypeName, &tc.Count); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction type row", err)
		}
		out = append(out, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed reading transaction type rows", err)
	}
	return out, nil
}

// buildTransactionFilter assembles the WHERE clause and positional args for
// the listing queries.
func buildTransactionFilter(filter domain.TransactionFilter) (string, []any) {
	conditions := []string{"transaction_type <> 'OTP_MESSAGE'"}
	args := []any{}

	appendCondition := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, expr+"$"+strconv.Itoa(len(args)))
	}

	if filter.Type != nil {
		appendCondition("transaction_type = ", string(*filter.Type))
	}
	if filter.StartDate != nil {
		appendCondition("date_timestamp >= ", *filter.StartDate)
	}
	if filter.EndDate != nil {
		appendCondition("date_timestamp <= ", *filter.EndDate)
	}
	if filter.MinAmount != nil {
		appendCondition("amount >= ", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		appendCondition("amount <= ", *filter.MaxAmount)
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		placeholder := "$" + strconv.Itoa(len(args))
		conditions = append(conditions,
			"(recipient_name ILIKE "+placeholder+
				" OR sender_name ILIKE "+placeholder+
				" OR message_body ILIKE "+placeholder+")")
	}

	where := "WHERE " + conditions[0]
	for _, c := range conditions[1:] {
		where += " AND " + c
	}
	return where, args
}
