package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndToEnd(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		sender string
		bank   string
		amount float64
		txType string
	}{
		{
			name:   "federal upi debit",
			msg:    "Rs 500.00 debited via UPI on 12-08-2025 14:22:11 to VPA john.doe123@okbank.Ref No 987654321098. -Federal Bank",
			sender: "AD-FEDBNK-S",
			bank:   "Federal Bank",
			amount: 500,
			txType: "EXPENSE",
		},
		{
			name:   "fab card purchase",
			msg:    "Credit Card Purchase\nCard No 1234\nAEROFLOT MOSCOW\nAmount AED 91.00\nAvailable Balance AED **30.16",
			sender: "AD-FAB-A",
			bank:   "FAB",
			amount: 91,
			txType: "CREDIT",
		},
		{
			name:   "bancolombia transfer",
			msg:    "Bancolombia: Transferiste $95.000 a la cuenta 12345 desde cuenta *5678 el 10/08/2025.",
			sender: "87400",
			bank:   "Bancolombia",
			amount: 95000,
			txType: "TRANSFER",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Parse(tt.msg, tt.sender, 1755000000)
			require.NotNil(t, tx)
			assert.Equal(t, tt.bank, tx.BankName)
			assert.Equal(t, tt.txType, string(tx.Type))
			assert.True(t, decimal.NewFromFloat(tt.amount).Equal(tx.Amount),
				"amount %s", tx.Amount)
			assert.Equal(t, tt.sender, tx.Sender)
			assert.Equal(t, tt.msg, tx.SMSBody)
		})
	}
}

func TestParseUnknownSender(t *testing.T) {
	assert.Nil(t, Parse("Rs 500.00 debited from your account", "UNKNOWN-SENDER", 1755000000))
}

func TestParseIsDeterministic(t *testing.T) {
	msg := "Rs 500.00 debited via UPI on 12-08-2025 to VPA merchant@okbank.Ref No 11112222. -Federal Bank"
	a := Parse(msg, "AD-FEDBNK-S", 1755000000)
	b := Parse(msg, "AD-FEDBNK-S", 1755000000)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a, b)
	assert.Equal(t, a.ID(), b.ID())
}

func TestParseMandateRouting(t *testing.T) {
	msg := "You have created a mandate on Spotify for a maximum amount of Rs 119.00 starting from 01-09-2025. Mandate Ref No-xyz789@okicici - Federal Bank"

	// Not a transaction, but the mandate entry point reads it.
	assert.Nil(t, Parse(msg, "AD-FEDBNK-S", 1755000000))

	md, ok := ParseMandate(msg, "AD-FEDBNK-S")
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(119).Equal(md.Amount))
	assert.Equal(t, "Spotify", md.Merchant)
	assert.Equal(t, "01-09-2025", md.NextDeductionDate)

	// A sender with no mandate support reports a miss.
	_, ok = ParseMandate(msg, "UNKNOWN-SENDER")
	assert.False(t, ok)
}
