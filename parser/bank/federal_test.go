package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFederalUPIDebitKeepsAddress(t *testing.T) {
	msg := "Rs 500.00 debited via UPI on 12-08-2025 14:22:11 to VPA john.doe123@okbank.Ref No 987654321098. -Federal Bank"

	tx := Federal.Parse(msg, "AD-FEDBNK-S", 1755000000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(500).Equal(tx.Amount))
	assert.Equal(t, "EXPENSE", string(tx.Type))
	// No brand mapping for this address: the raw handle is the best label.
	assert.Equal(t, "john.doe123@okbank", tx.Merchant)
	assert.Equal(t, "987654321098", tx.Reference)
	assert.Equal(t, "INR", tx.Currency)
	assert.Equal(t, "Federal Bank", tx.BankName)
	assert.False(t, tx.IsFromCard)
}

func TestFederalMandateCreation(t *testing.T) {
	msg := "You have created a mandate on Netflix for a maximum amount of Rs 649.00 starting from 15-08-2025. Mandate Ref No-abc123@okaxis - Federal Bank"

	// Lifecycle alerts mention amounts but move no money.
	assert.Nil(t, Federal.Parse(msg, "AD-FEDBNK-S", 1755000000))

	md, ok := federalMandate(msg)
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(649).Equal(md.Amount))
	assert.Equal(t, "Netflix", md.Merchant)
	assert.Equal(t, "15-08-2025", md.NextDeductionDate)
	assert.Equal(t, "abc123@okaxis", md.UMN)
}

func TestFederalEMandateProcessedPayment(t *testing.T) {
	msg := "Hi, payment of INR 299.00 for Streaming Service via e-mandate ID: xyz789abc on Federal Bank Debit Card **** is processed successfully. To manage, visit: https://www.sihub.in/managesi/federal T&CA - Federal Bank"

	tx := Federal.Parse(msg, "AD-FEDBNK-S", 1755000000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(299).Equal(tx.Amount))
	assert.Equal(t, "EXPENSE", string(tx.Type))
	// The mandate identifier stays in the name so the subscription is
	// recognizable across months.
	assert.Equal(t, "Streaming Service via e-mandate ID: xyz789abc", tx.Merchant)
	assert.Equal(t, "INR", tx.Currency)
	assert.True(t, tx.IsFromCard)
}

func TestFederalEMandateDeclined(t *testing.T) {
	msg := "Hi, payment via e-mandate declined for ID: xyz789abc on Federal Bank Debit Card 1234 due to insufficient balance. - Federal Bank"

	assert.Nil(t, Federal.Parse(msg, "AD-FEDBNK-S", 1755000000))
}

func TestFederalCreditCardSpend(t *testing.T) {
	msg := "INR 1,299.00 spent on your Federal Bank Credit Card ending 4421 at BIGBASKET on 10-08-2025."

	tx := Federal.Parse(msg, "FEDBNK", 1755000000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(1299).Equal(tx.Amount))
	assert.Equal(t, "CREDIT", string(tx.Type))
	assert.Equal(t, "BIGBASKET", tx.Merchant)
	assert.Equal(t, "4421", tx.AccountLast4)
	assert.True(t, tx.IsFromCard)
}
