package models

import "github.com/shopspring/decimal"

// Transaction is the transactions table row for one interpreted SMS.
// transaction_id is deliberately not unique: the provider re-sends
// notifications and duplicates are stored as-is.
type Transaction struct {
	TransactionID          *string          `json:"transactionID"`
	TransactionType        string           `json:"transactionType"` // Not Null
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
	ExternalTransactionID  *string          `json:"externalTransactionID"`
	FinancialTransactionID *string          `json:"financialTransactionID"`
	Token                  *string          `json:"token"`
}
