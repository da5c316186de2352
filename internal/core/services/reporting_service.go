package services

import (
	"context"
	"fmt"

	"github.com/rkabera/momotrack/internal/core/domain"
	portsrepo "github.com/rkabera/momotrack/internal/core/ports/repositories"
	portssvc "github.com/rkabera/momotrack/internal/core/ports/services"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// ReportingService serves the dashboard queries over the transaction store.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// Stats returns the aggregate dashboard statistics.
func (s *ReportingService) Stats(ctx context.Context) (*domain.StatsReport, error) {
	report, err := s.reportingRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats in service: %w", err)
	}
	return report, nil
}

// ListTransactions returns one page of transactions plus the total match count.
func (s *ReportingService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionRecord, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	records, total, err := s.reportingRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if records == nil {
		records = []domain.TransactionRecord{}
	}
	return records, total, nil
}

// TransactionTypes returns the distinct stored types with their counts.
func (s *ReportingService) TransactionTypes(ctx context.Context) ([]domain.TypeCount, error) {
	types, err := s.reportingRepo.ListTransactionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction types in service: %w", err)
	}
	if types == nil {
		types = []domain.TypeCount{}
	}
	return types, nil
}
