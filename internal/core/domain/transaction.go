package domain

import "github.com/shopspring/decimal"

// TransactionType classifies a mobile-money SMS into one of the known
// transaction categories. Classification is total: every message maps to
// exactly one type, with TypeUnknown as the catch-all.
type TransactionType string

const (
	TypeIncomingMoney    TransactionType = "INCOMING_MONEY"
	TypeTransferToMobile TransactionType = "TRANSFER_TO_MOBILE"
	TypeBankDeposit      TransactionType = "BANK_DEPOSIT"
	TypePaymentToCode    TransactionType = "PAYMENT_TO_CODE"
	TypeAirtimePayment   TransactionType = "AIRTIME_PAYMENT"
	TypeCashPowerPayment TransactionType = "CASH_POWER_PAYMENT"
	TypeAgentWithdrawal  TransactionType = "AGENT_WITHDRAWAL"
	TypeBundlePurchase   TransactionType = "BUNDLE_PURCHASE"
	TypeThirdParty       TransactionType = "THIRD_PARTY_TRANSACTION"
	TypeOTPMessage       TransactionType = "OTP_MESSAGE"
	TypeUnknown          TransactionType = "UNKNOWN"
)

// TransactionTypeDescriptions maps each type to the label shown on the dashboard.
var TransactionTypeDescriptions = map[TransactionType]string{
	TypeOTPMessage:       "One-Time Password Message",
	TypeIncomingMoney:    "Incoming Money Transfer",
	TypeBankDeposit:      "Bank Deposit",
	TypeAgentWithdrawal:  "Agent Withdrawal",
	TypeTransferToMobile: "Mobile Money Transfer",
	TypeAirtimePayment:   "Airtime Purchase",
	TypeCashPowerPayment: "Cash Power Payment",
	TypeBundlePurchase:   "Data/Voice Bundle Purchase",
	TypeThirdParty:       "Third Party Payment",
	TypePaymentToCode:    "Payment to Code Holder",
	TypeUnknown:          "Unknown Transaction Type",
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	_, ok := TransactionTypeDescriptions[t]
	return ok
}

// TransactionRecord is the structured result of interpreting one SMS body.
// TransactionType is always set; every other field is either nil/zero or has
// passed its format check. Records are immutable once built.
type TransactionRecord struct {
	TransactionID          *string
	TransactionType        TransactionType
	Amount                 *decimal.Decimal
	Fee                    decimal.Decimal // zero when no fee clause matched
	RecipientName          *string
	RecipientPhone         *string
	SenderName             *string
	SenderPhone            *string
	AgentName              *string
	AgentPhone             *string
	BalanceAfter           *decimal.Decimal
	DateTimestamp          int64 // epoch ms, from the message or ingestion time
	DateReadable           string
	MessageBody            string // normalized text, retained for audit
	ExternalTransactionID  *string
	FinancialTransactionID *string
	Token                  *string
}
