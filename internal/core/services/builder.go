package services

import (
	"time"

	"github.com/rkabera/momotrack/internal/apperrors"
	"github.com/rkabera/momotrack/internal/core/domain"
)

// TransactionBuilder assembles one TransactionRecord from a raw message by
// running normalization, classification, the universal extractors, the
// type-conditional extractors and soft validation, in that order. Building
// fails only when the message has no body at all.
type TransactionBuilder struct {
	categorizer *Categorizer
	extractors  *FieldExtractors
	validator   *Validator
	recorder    *RunRecorder
	now         func() time.Time
}

// NewTransactionBuilder wires a builder and its collaborators onto one recorder.
func NewTransactionBuilder(recorder *RunRecorder) *TransactionBuilder {
	return &TransactionBuilder{
		categorizer: NewCategorizer(recorder),
		extractors:  NewFieldExtractors(recorder),
		validator:   NewValidator(recorder),
		recorder:    recorder,
		now:         time.Now,
	}
}

// Build interprets msg into a TransactionRecord. It returns
// apperrors.ErrMissingBody when the message carries no text; any other input
// always yields a record with TransactionType set.
func (b *TransactionBuilder) Build(msg domain.RawMessage) (*domain.TransactionRecord, error) {
	if !msg.HasBody() {
		b.recorder.Error("parsing", "invalid sms data received",
			map[string]string{"address": msg.Address, "readable_date": msg.ReadableDate})
		return nil, apperrors.ErrMissingBody
	}

	body := NormalizeText(msg.Body)
	txType := b.categorizer.Classify(body)

	rec := &domain.TransactionRecord{
		TransactionID:   b.extractors.TransactionID(body),
		TransactionType: txType,
		DateTimestamp:   msg.Date,
		DateReadable:    msg.ReadableDate,
		MessageBody:     body,
	}
	if rec.DateTimestamp <= 0 {
		rec.DateTimestamp = b.now().UnixMilli()
	}
	if rec.DateReadable == "" {
		rec.DateReadable = b.now().Format(time.RFC3339)
	}

	rec.Amount, rec.BalanceAfter = b.extractors.Amounts(body)
	rec.Fee = b.extractors.Fee(body)
	rec.RecipientName, rec.RecipientPhone = b.extractors.Recipient(body)

	// Sender and agent clauses only exist in their own message templates;
	// running those extractors elsewhere would misread recipient text.
	if txType == domain.TypeIncomingMoney {
		rec.SenderName = b.extractors.Sender(body)
	}
	if txType == domain.TypeAgentWithdrawal {
		rec.AgentName, rec.AgentPhone = b.extractors.Agent(body)
	}

	rec.FinancialTransactionID = b.extractors.Label(FieldFinancialTransactionID, body)
	rec.ExternalTransactionID = b.extractors.Label(FieldExternalTransactionID, body)
	rec.Token = b.extractors.Label(FieldToken, body)

	b.validator.Apply(rec)
	return rec, nil
}
