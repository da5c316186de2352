package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkabera/momotrack/internal/core/domain"
)

func TestTransactionTypeIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input domain.TransactionType
		want  bool
	}{
		{"incoming money", domain.TypeIncomingMoney, true},
		{"otp message", domain.TypeOTPMessage, true},
		{"unknown is a valid catch-all", domain.TypeUnknown, true},
		{"empty string", domain.TransactionType(""), false},
		{"unrecognized tag", domain.TransactionType("REFUND"), false},
		{"wrong case", domain.TransactionType("incoming_money"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.IsValid())
		})
	}
}

func TestTransactionTypeDescriptionsCoverAllTypes(t *testing.T) {
	types := []domain.TransactionType{
		domain.TypeIncomingMoney,
		domain.TypeTransferToMobile,
		domain.TypeBankDeposit,
		domain.TypePaymentToCode,
		domain.TypeAirtimePayment,
		domain.TypeCashPowerPayment,
		domain.TypeAgentWithdrawal,
		domain.TypeBundlePurchase,
		domain.TypeThirdParty,
		domain.TypeOTPMessage,
		domain.TypeUnknown,
	}
	for _, typ := range types {
		assert.NotEmpty(t, domain.TransactionTypeDescriptions[typ], "missing description for %s", typ)
	}
	assert.Len(t, domain.TransactionTypeDescriptions, len(types))
}

func TestRawMessageHasBody(t *testing.T) {
	assert.True(t, domain.RawMessage{Body: "You have received 1,000 RWF"}.HasBody())
	assert.False(t, domain.RawMessage{}.HasBody())
	assert.False(t, domain.RawMessage{Body: "   "}.HasBody())
}
