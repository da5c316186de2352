package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// amountPattern matches grouped-thousands RWF amounts, e.g. "5,000 RWF".
	amountPattern = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*RWF`)

	// phoneCandidate matches a full number or the masked sender form.
	phoneCandidate = regexp.MustCompile(`\(?(250\d{9}|\*{9}\d{3})\)?`)

	feePattern       = regexp.MustCompile(`(?i)fee\s*(?:was|is)?\s*:?\s*(\d{1,3}(?:,\d{3})*)\s*RWF`)
	recipientPattern = regexp.MustCompile(`(?i)(?:to|transferred to)\s*([^(]+)\s*\(?(250\d{9})\)?`)
	senderPattern    = regexp.MustCompile(`(?i)from\s*([^(]+)\s*\(\*{9}\d{3}\)`)
	agentPattern     = regexp.MustCompile(`(?i)agent:\s*([^(]+)\s*\(?(250\d{9})\)?`)

	// txnIDPatterns are tried in order; the first label that matches wins.
	txnIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)TxId:\s*(\d+)`),
		regexp.MustCompile(`(?i)Transaction Id:\s*(\d+)`),
		regexp.MustCompile(`(?i)Financial Transaction Id:\s*(\d+)`),
	}
)

// Field names keying the label-anchored extractor registry.
const (
	FieldFinancialTransactionID = "financial_transaction_id"
	FieldExternalTransactionID  = "external_transaction_id"
	FieldToken                  = "token"
)

// labelPatterns holds the independent label-anchored string extractors, keyed
// by record field name so each pattern stays individually testable.
var labelPatterns = map[string]*regexp.Regexp{
	FieldFinancialTransactionID: regexp.MustCompile(`(?i)Financial Transaction Id:\s*(\d+)`),
	FieldExternalTransactionID:  regexp.MustCompile(`(?i)External Transaction Id:\s*([a-zA-Z0-9-]+)`),
	FieldToken:                  regexp.MustCompile(`(?i)token\s*:?\s*([0-9-]+)`),
}

// FieldExtractors holds the pattern-matching strategies that pull typed values
// out of normalized, original-case message text. Every extractor returns nil
// (or the documented default) on no-match and never aborts record building;
// parse failures are logged at error severity and degrade the field to absent.
type FieldExtractors struct {
	recorder *RunRecorder
}

// NewFieldExtractors creates extractors reporting through the given recorder.
func NewFieldExtractors(recorder *RunRecorder) *FieldExtractors {
	return &FieldExtractors{recorder: recorder}
}

// Amounts scans text for RWF amounts and splits them into the primary
// transaction amount and the post-transaction balance. A match counts as a
// balance when the word "balance" occurs before the match start; the last
// balance occurrence wins. Among the remaining candidates the maximum value is
// kept as the amount, ties keeping the first seen.
func (e *FieldExtractors) Amounts(text string) (amount, balance *decimal.Decimal) {
	matches := amountPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil, nil
	}
	balancePos := strings.Index(strings.ToLower(text), "balance")

	for _, m := range matches {
		raw := text[m[2]:m[3]]
		value, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			e.recorder.Error("amount_extraction", "error extracting amount",
				map[string]string{"text": text, "error": err.Error()})
			continue
		}
		if value.IsNegative() {
			continue
		}
		if balancePos >= 0 && balancePos < m[0] {
			v := value
			balance = &v
		} else if amount == nil || value.GreaterThan(*amount) {
			v := value
			amount = &v
		}
	}
	return amount, balance
}

// Phone returns the first phone-shaped substring, accepted only when it
// matches the full-number format. Masked numbers (*********DDD) are matched
// but never validate, so they are never returned as a contactable phone.
func (e *FieldExtractors) Phone(text string) *string {
	m := phoneCandidate.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	candidate := m[1]
	if !phoneFormat.MatchString(candidate) {
		return nil
	}
	return &candidate
}

// TransactionID tries the TxId, Transaction Id and Financial Transaction Id
// labels in order and returns the first capture.
func (e *FieldExtractors) TransactionID(text string) *string {
	for _, pattern := range txnIDPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return &m[1]
		}
	}
	return nil
}

// Fee returns the fee amount, defaulting to zero when no fee clause matched
// or the clause failed to parse.
func (e *FieldExtractors) Fee(text string) decimal.Decimal {
	m := feePattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		e.recorder.Error("fee_extraction", "error extracting fee",
			map[string]string{"text": text, "error": err.Error()})
		return decimal.Zero
	}
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}

// Recipient captures the "(to|transferred to) NAME (PHONE)" clause. The name
// is normalized and trimmed; the phone is kept only when it validates.
func (e *FieldExtractors) Recipient(text string) (name, phone *string) {
	m := recipientPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	if n := NormalizeText(m[1]); n != "" {
		name = &n
	}
	if phoneFormat.MatchString(m[2]) {
		phone = &m[2]
	}
	return name, phone
}

// Sender captures the sender name from the masked-phone form used in
// incoming-money messages. Only the name is extracted; the masked number is
// never a validated phone.
func (e *FieldExtractors) Sender(text string) *string {
	m := senderPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	if n := NormalizeText(m[1]); n != "" {
		return &n
	}
	return nil
}

// Agent captures the "agent: NAME (PHONE)" clause of withdrawal messages.
func (e *FieldExtractors) Agent(text string) (name, phone *string) {
	m := agentPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	if n := NormalizeText(m[1]); n != "" {
		name = &n
	}
	if phoneFormat.MatchString(m[2]) {
		phone = &m[2]
	}
	return name, phone
}

// Label runs the label-anchored extractor registered under the given field
// name. Unknown field names return nil.
func (e *FieldExtractors) Label(field, text string) *string {
	pattern, ok := labelPatterns[field]
	if !ok {
		return nil
	}
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &m[1]
}
