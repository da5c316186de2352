package services

import (
	"strings"

	"github.com/rkabera/momotrack/internal/core/domain"
)

// categoryRule pairs a predicate with the type it selects. Rules are evaluated
// top to bottom and the first match wins; order matters because predicates are
// not mutually exclusive (a bundle purchase also mentions "payment").
type categoryRule struct {
	txType domain.TransactionType
	match  func(body string) bool
}

func containsAll(subs ...string) func(string) bool {
	return func(body string) bool {
		for _, sub := range subs {
			if !strings.Contains(body, sub) {
				return false
			}
		}
		return true
	}
}

func containsAny(subs ...string) func(string) bool {
	return func(body string) bool {
		for _, sub := range subs {
			if strings.Contains(body, sub) {
				return true
			}
		}
		return false
	}
}

// categoryRules is the canonical rule order. OTP first so password notices
// never fall into a money category, UNKNOWN handled by fallthrough.
var categoryRules = []categoryRule{
	{domain.TypeOTPMessage, containsAny("one-time password", "otp")},
	{domain.TypeIncomingMoney, containsAll("you have received", "rwf from")},
	{domain.TypeBankDeposit, containsAll("bank deposit", "has been added")},
	{domain.TypeAgentWithdrawal, containsAll("withdrawn", "agent")},
	{domain.TypeTransferToMobile, containsAll("transferred to", "250")},
	{domain.TypeAirtimePayment, containsAny("airtime")},
	{domain.TypeCashPowerPayment, containsAny("cash power")},
	{domain.TypeBundlePurchase, containsAny("bundles and packs", "internet bundle", "data bundle", "voice bundle")},
	{domain.TypeThirdParty, containsAny("*164*", "direct payment")},
	{domain.TypePaymentToCode, containsAll("your payment of", "has been completed")},
}

// Categorizer maps normalized message text to a transaction type.
type Categorizer struct {
	recorder *RunRecorder
}

// NewCategorizer creates a categorizer reporting through the given recorder.
func NewCategorizer(recorder *RunRecorder) *Categorizer {
	return &Categorizer{recorder: recorder}
}

// Classify returns the transaction type for the given normalized text.
// Matching runs on a lower-cased copy. Classification is total: unrecognized
// text yields TypeUnknown with a warning entry, never an error.
func (c *Categorizer) Classify(text string) domain.TransactionType {
	body := strings.ToLower(text)
	c.recorder.Debug("categorization", "attempting to categorize transaction", map[string]string{"body": body})

	for _, rule := range categoryRules {
		if rule.match(body) {
			return rule.txType
		}
	}

	c.recorder.Warn("categorization", "transaction type not recognized", map[string]string{"body": body})
	return domain.TypeUnknown
}
