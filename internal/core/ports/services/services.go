// Package services defines the service facades consumed by the HTTP handlers.
package services

import (
	"context"

	"github.com/rkabera/momotrack/internal/core/domain"
)

// ReportingSvcFacade exposes the dashboard queries.
type ReportingSvcFacade interface {
	Stats(ctx context.Context) (*domain.StatsReport, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionRecord, int64, error)
	TransactionTypes(ctx context.Context) ([]domain.TypeCount, error)
}
