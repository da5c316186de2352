package domain

import "github.com/shopspring/decimal"

// TransactionFilter narrows the transaction listing for the reporting API.
// Nil members are unset; Page/Limit drive offset pagination.
type TransactionFilter struct {
	Type      *TransactionType
	StartDate *int64 // epoch ms, inclusive
	EndDate   *int64 // epoch ms, inclusive
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Search    *string // matches recipient name, sender name or message body
	Page      int
	Limit     int
}

// Offset returns the row offset implied by Page/Limit.
func (f TransactionFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}

// TypeBreakdown aggregates count and volume for one transaction type.
type TypeBreakdown struct {
	TransactionType TransactionType
	Count           int64
	TotalAmount     decimal.Decimal
}

// MonthlyStat aggregates one calendar month of transactions.
type MonthlyStat struct {
	Month            string // YYYY-MM
	TransactionCount int64
	TotalAmount      decimal.Decimal
	TotalFees        decimal.Decimal
}

// StatsReport backs the dashboard statistics endpoint. OTP messages are
// excluded from all financial aggregates.
type StatsReport struct {
	TotalTransactions int64
	TotalAmount       decimal.Decimal
	TotalFees         decimal.Decimal
	TypeBreakdown     []TypeBreakdown
	MonthlyStats      []MonthlyStat
}

// TypeCount is one row of the transaction-types listing.
type TypeCount struct {
	TypeName TransactionType
	Count    int64
}
