package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqlanhadi/smstx/parser/common"
)

// Wallet and pay-later spends resolve to CREDIT regardless of the verb used
// in the message body.
func TestWalletSpendsAreCredit(t *testing.T) {
	tests := []struct {
		name     string
		rs       string
		msg      string
		sender   string
		amount   float64
		merchant string
	}{
		{
			name:     "amazon pay",
			rs:       "Amazon Pay",
			msg:      "Your Amazon Pay balance was debited for INR 349.00. Payment successful at BookMyShow. Order ID: 403-1234567-890",
			sender:   "AX-APAY-S",
			amount:   349,
			merchant: "BookMyShow",
		},
		{
			name:     "lazypay",
			rs:       "LazyPay",
			msg:      "Rs.520.00 paid via LazyPay on Zomato Ltd 12345 was successful. txn LP98765",
			sender:   "LZYPAY",
			amount:   520,
			merchant: "Zomato",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := resolveSender(t, tt.sender).Parse(tt.msg, tt.sender, 1755000000)
			require.NotNil(t, tx)
			assert.Equal(t, tt.rs, tx.BankName)
			assert.Equal(t, "CREDIT", string(tx.Type))
			assert.True(t, decimal.NewFromFloat(tt.amount).Equal(tx.Amount))
			assert.Equal(t, tt.merchant, tx.Merchant)
		})
	}
}

func resolveSender(t *testing.T, sender string) *common.RuleSet {
	t.Helper()
	for _, rs := range All() {
		if rs.Senders.Matches(sender) {
			return rs
		}
	}
	t.Fatalf("no rule set owns sender %q", sender)
	return nil
}
