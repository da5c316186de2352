package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rkabera/momotrack/internal/core/domain"
)

// ListTransactionsRequest carries the transaction listing filters.
// Dates are YYYY-MM-DD; the txtype rule checks Type against the known enum.
type ListTransactionsRequest struct {
	Page      int      `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int      `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Type      *string  `form:"type" binding:"omitempty,txtype"`
	StartDate *string  `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string  `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	MinAmount *float64 `form:"minAmount" binding:"omitempty,gte=0"`
	MaxAmount *float64 `form:"maxAmount" binding:"omitempty,gte=0"`
	Search    *string  `form:"search" binding:"omitempty,max=200"`
}

// TransactionResponse is one transaction row as served by the API.
type TransactionResponse struct {
	TransactionID          *string          `json:"transactionId"`
	TransactionType        string           `json:"transactionType"`
	Amount                 *decimal.Decimal `json:"amount"`
	Fee                    decimal.Decimal  `json:"fee"`
	RecipientName          *string          `json:"recipientName"`
	RecipientPhone         *string          `json:"recipientPhone"`
	SenderName             *string          `json:"senderName"`
	SenderPhone            *string          `json:"senderPhone"`
	AgentName              *string          `json:"agentName"`
	AgentPhone             *string          `json:"agentPhone"`
	BalanceAfter           *decimal.Decimal `json:"balanceAfter"`
	DateTimestamp          int64            `json:"dateTimestamp"`
	DateReadable           string           `json:"dateReadable"`
	MessageBody            string           `json:"messageBody"`
	ExternalTransactionID  *string          `json:"externalTransactionId"`
	FinancialTransactionID *string          `json:"financialTransactionId"`
	Token                  *string          `json:"token"`
}

// NewTransactionResponse maps a domain record to its API shape.
func NewTransactionResponse(d domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		TransactionID:          d.TransactionID,
		TransactionType:        string(d.TransactionType),
		Amount:                 d.Amount,
		Fee:                    d.Fee,
		RecipientName:          d.RecipientName,
		RecipientPhone:         d.RecipientPhone,
		SenderName:             d.SenderName,
		SenderPhone:            d.SenderPhone,
		AgentName:              d.AgentName,
		AgentPhone:             d.AgentPhone,
		BalanceAfter:           d.BalanceAfter,
		DateTimestamp:          d.DateTimestamp,
		DateReadable:           d.DateReadable,
		MessageBody:            d.MessageBody,
		ExternalTransactionID:  d.ExternalTransactionID,
		FinancialTransactionID: d.FinancialTransactionID,
		Token:                  d.Token,
	}
}

// PaginationResponse describes one page of a listing.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ListTransactionsResponse is the transaction listing envelope.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// TransactionTypeResponse is one row of the transaction-types listing.
type TransactionTypeResponse struct {
	TypeName    string `json:"typeName"`
	Description string `json:"description"`
	Count       int64  `json:"count"`
}
