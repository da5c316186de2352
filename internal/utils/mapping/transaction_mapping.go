package mapping

import (
	"github.com/rkabera/momotrack/internal/core/domain"
	"github.com/rkabera/momotrack/internal/models"
)

// ToModelRawSMS converts a domain RawMessage to a model RawSMS row.
func ToModelRawSMS(d domain.RawMessage, processed bool) models.RawSMS {
	return models.RawSMS{
		Protocol:      d.Protocol,
		Address:       d.Address,
		DateTimestamp: d.Date,
		Type:          d.Type,
		Body:          d.Body,
		ReadableDate:  d.ReadableDate,
		ContactName:   d.ContactName,
		Processed:     processed,
	}
}

// ToModelTransaction converts a domain TransactionRecord to a model Transaction.
func ToModelTransaction(d domain.TransactionRecord) models.Transaction {
	return models.Transaction{
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

// ToDomainTransaction converts a model Transaction back to the domain record.
func ToDomainTransaction(m models.Transaction) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID:          m.TransactionID,
		TransactionType:        domain.TransactionType(m.TransactionType),
		Amount:                 m.Amount,
		Fee:                    m.Fee,
		RecipientName:          m.RecipientName,
		RecipientPhone:         m.RecipientPhone,
		SenderName:             m.SenderName,
		SenderPhone:            m.SenderPhone,
		AgentName:              m.AgentName,
		AgentPhone:             m.AgentPhone,
		BalanceAfter:           m.BalanceAfter,
		DateTimestamp:          m.DateTimestamp,
		DateReadable:           m.DateReadable,
		MessageBody:            m.MessageBody,
		ExternalTransactionID:  m.ExternalTransactionID,
		FinancialTransactionID: m.FinancialTransactionID,
		Token:                  m.Token,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.TransactionRecord {
	ds := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
