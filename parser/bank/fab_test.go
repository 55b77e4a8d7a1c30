package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFABCardPurchaseMaskedBalance(t *testing.T) {
	msg := "Credit Card Purchase\nCard No 1234\nAEROFLOT MOSCOW\nAmount AED 91.00\nAvailable Balance AED **30.16"

	tx := FAB.Parse(msg, "AD-FAB-A", 1755000000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(91).Equal(tx.Amount))
	assert.Equal(t, "AED", tx.Currency)
	assert.Equal(t, "CREDIT", string(tx.Type))
	assert.Equal(t, "AEROFLOT MOSCOW", tx.Merchant)
	assert.Equal(t, "1234", tx.AccountLast4)
	assert.True(t, tx.IsFromCard)

	// Masked balance digits: only the visible fraction survives.
	require.NotNil(t, tx.Balance)
	assert.True(t, decimal.NewFromFloat(0.16).Equal(*tx.Balance))
}

func TestFABTransferAccounts(t *testing.T) {
	msg := "Your transfer of AED 2,500.00 from your account XXXX9876 to account XXXX4321 has been processed successfully. Avl.Bal AED 7,150.25"

	tx := FAB.Parse(msg, "FAB", 1755000000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(2500).Equal(tx.Amount))
	assert.Equal(t, "TRANSFER", string(tx.Type))
	assert.Equal(t, "XXXX9876", tx.FromAccount)
	assert.Equal(t, "XXXX4321", tx.ToAccount)
	require.NotNil(t, tx.Balance)
	assert.True(t, decimal.NewFromFloat(7150.25).Equal(*tx.Balance))
}

func TestFABSkipsDateTokenAsCurrency(t *testing.T) {
	msg := "Debit Card Purchase\nNOON.COM Dubai\nAmount AED 45.00 on AUG 10 2025\nAvl.Bal AED 320.00"

	tx := FAB.Parse(msg, "FAB", 1755000000)
	require.NotNil(t, tx)
	assert.Equal(t, "AED", tx.Currency)
	assert.Equal(t, "EXPENSE", string(tx.Type))
}
