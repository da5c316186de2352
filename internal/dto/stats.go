package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rkabera/momotrack/internal/core/domain"
)

// TypeBreakdownResponse aggregates one transaction type for the dashboard.
type TypeBreakdownResponse struct {
	TransactionType string          `json:"transactionType"`
	Count           int64           `json:"count"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// MonthlyStatResponse aggregates one calendar month.
type MonthlyStatResponse struct {
	Month            string          `json:"month"`
	TransactionCount int64           `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TotalFees        decimal.Decimal `json:"totalFees"`
}

// StatsResponse is the /api/stats payload.
type StatsResponse struct {
	TotalTransactions int64                   `json:"totalTransactions"`
	TotalAmount       decimal.Decimal         `json:"totalAmount"`
	TotalFees         decimal.Decimal         `json:"totalFees"`
	TransactionTypes  []TypeBreakdownResponse `json:"transactionTypes"`
	MonthlyStats      []MonthlyStatResponse   `json:"monthlyStats"`
}

// NewStatsResponse maps the domain report to its API shape.
func NewStatsResponse(report domain.StatsReport) StatsResponse {
	resp := StatsResponse{
		TotalTransactions: report.TotalTransactions,
		TotalAmount:       report.TotalAmount,
		TotalFees:         report.TotalFees,
		TransactionTypes:  make([]TypeBreakdownResponse, 0, len(report.TypeBreakdown)),
		MonthlyStats:      make([]MonthlyStatResponse, 0, len(report.MonthlyStats)),
	}
	for _, b := range report.TypeBreakdown {
		resp.TransactionTypes = append(resp.TransactionTypes, TypeBreakdownResponse{
			TransactionType: string(b.TransactionType),
			Count:           b.Count,
			TotalAmount:     b.TotalAmount,
		})
	}
	for _, m := range report.MonthlyStats {
		resp.MonthlyStats = append(resp.MonthlyStats, MonthlyStatResponse{
			Month:            m.Month,
			TransactionCount: m.TransactionCount,
			TotalAmount:      m.TotalAmount,
			TotalFees:        m.TotalFees,
		})
	}
	return resp
}
