package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHDFCUPICredit(t *testing.T) {
	msg := "Rs. 289.00 received in HDFC Bank A/c **1234 from VPA swiggy@ybl (UPI 519900123456)"

	tx := HDFC.Parse(msg, "AD-HDFCBK-S", 1735700000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(289).Equal(tx.Amount))
	assert.Equal(t, "INCOME", string(tx.Type))
	assert.Equal(t, "Swiggy", tx.Merchant)
	assert.Equal(t, "519900123456", tx.Reference)
	assert.Equal(t, "1234", tx.AccountLast4)
	assert.Equal(t, "INR", tx.Currency)
	assert.Equal(t, "HDFC Bank", tx.BankName)
	assert.False(t, tx.IsFromCard)
}

func TestHDFCCardSpend(t *testing.T) {
	msg := "Spent Rs.1250.50 On HDFC Bank Card x5678 At STARBUCKS On 01-08-25 Avl bal: INR 10,500.00"

	tx := HDFC.Parse(msg, "HDFCBK", 1735700000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(1250.50).Equal(tx.Amount))
	assert.Equal(t, "EXPENSE", string(tx.Type))
	assert.Equal(t, "STARBUCKS", tx.Merchant)
	assert.Equal(t, "5678", tx.AccountLast4)
	require.NotNil(t, tx.Balance)
	assert.True(t, decimal.NewFromFloat(10500).Equal(*tx.Balance))
	assert.True(t, tx.IsFromCard)
}

func TestHDFCMandate(t *testing.T) {
	msg := "E-Mandate! INR 599.00 will be debited on 15/09/2025 from your HDFC Bank A/c towards Netflix UMRN: HDFC7001234567"

	// A future-dated deduction preview is not a transaction.
	assert.Nil(t, HDFC.Parse(msg, "HDFCBK", 1735700000))

	md, ok := hdfcMandate(msg)
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(599).Equal(md.Amount))
	assert.Equal(t, "15/09/2025", md.NextDeductionDate)
	assert.Equal(t, "Netflix", md.Merchant)
	assert.Equal(t, "HDFC7001234567", md.UMN)
	assert.Equal(t, "HDFC Bank", md.BankName)
}

func TestHDFCRejectsOTP(t *testing.T) {
	msg := "123456 is your OTP for HDFC Bank NetBanking. Do not share it with anyone."
	assert.Nil(t, HDFC.Parse(msg, "HDFCBK", 1735700000))
}
