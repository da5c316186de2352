package services

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/rkabera/momotrack/internal/core/domain"
)

// phoneFormat is the only accepted contactable phone shape.
var phoneFormat = regexp.MustCompile(`^250\d{9}$`)

// Validator applies soft cross-field checks after extraction. Values that fail
// their format check are downgraded to absent and logged; a record is never
// rejected here.
type Validator struct {
	recorder *RunRecorder
}

// NewValidator creates a validator reporting through the given recorder.
func NewValidator(recorder *RunRecorder) *Validator {
	return &Validator{recorder: recorder}
}

// Apply checks all extracted fields of rec in place.
func (v *Validator) Apply(rec *domain.TransactionRecord) {
	rec.RecipientPhone = v.checkedPhone(rec.RecipientPhone, "recipient_phone")
	rec.SenderPhone = v.checkedPhone(rec.SenderPhone, "sender_phone")
	rec.AgentPhone = v.checkedPhone(rec.AgentPhone, "agent_phone")

	rec.Amount = v.checkedAmount(rec.Amount, "amount")
	rec.BalanceAfter = v.checkedAmount(rec.BalanceAfter, "balance_after")
	if rec.Fee.IsNegative() {
		v.recorder.Warn("validation", "negative fee discarded",
			map[string]string{"fee": rec.Fee.String()})
		rec.Fee = decimal.Zero
	}

	if rec.TransactionID == nil {
		v.recorder.Warn("validation", "missing required transaction fields",
			map[string]string{"transaction_type": string(rec.TransactionType)})
	}
}

func (v *Validator) checkedPhone(phone *string, field string) *string {
	if phone == nil || phoneFormat.MatchString(*phone) {
		return phone
	}
	v.recorder.Warn("validation", "invalid phone number discarded",
		map[string]string{"field": field, "value": *phone})
	return nil
}

func (v *Validator) checkedAmount(amount *decimal.Decimal, field string) *decimal.Decimal {
	if amount == nil || !amount.IsNegative() {
		return amount
	}
	v.recorder.Warn("validation", "negative amount discarded",
		map[string]string{"field": field, "value": amount.String()})
	return nil
}
