package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICICIAutoPayPreviewIsNotATransaction(t *testing.T) {
	msg := "Rs 649.00 will be debited from ICICI Bank Acct XX123 on 03-Oct-25 towards Netflix via AutoPay. To cancel, visit icicibank.com"

	tx := ICICI.Parse(msg, "AD-ICICIB-S", 1735700000)
	assert.Nil(t, tx)
}

func TestICICIAutoPayExecution(t *testing.T) {
	msg := "Rs 649.00 has been debited from ICICI Bank Acct XX123 towards Netflix on 01-Sep-25 via AutoPay. RRN 223344556677."

	tx := ICICI.Parse(msg, "AD-ICICIB-S", 1735700000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(649).Equal(tx.Amount))
	assert.Equal(t, "EXPENSE", string(tx.Type))
	assert.Equal(t, "Netflix", tx.Merchant)
	assert.Equal(t, "223344556677", tx.Reference)
	assert.Equal(t, "123", tx.AccountLast4)
	assert.Equal(t, "INR", tx.Currency)
	assert.False(t, tx.IsFromCard)
}

func TestICICIForeignCurrencyCardSpend(t *testing.T) {
	msg := "USD 42.75 spent on ICICI Bank Card XX5678 at AMAZON WEB SERVICES on 01-Sep-25."

	tx := ICICI.Parse(msg, "ICICIB", 1735700000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(42.75).Equal(tx.Amount))
	assert.Equal(t, "USD", tx.Currency)
	// Card spends are credit-line draws even without the word "Credit".
	assert.Equal(t, "CREDIT", string(tx.Type))
	assert.Equal(t, "AMAZON WEB SERVICES", tx.Merchant)
	assert.Equal(t, "5678", tx.AccountLast4)
	assert.True(t, tx.IsFromCard)
}

func TestICICICardSpendCarriesAvailableLimit(t *testing.T) {
	msg := "INR 1,250.00 spent on ICICI Bank Card XX5678 at BIG BAZAAR on 02-Sep-25. Avl Limit: Rs 48,750.00."

	tx := ICICI.Parse(msg, "ICICIB", 1735700000)
	require.NotNil(t, tx)

	assert.Equal(t, "CREDIT", string(tx.Type))
	require.NotNil(t, tx.CreditLimit)
	assert.True(t, decimal.NewFromFloat(48750).Equal(*tx.CreditLimit))
}

func TestICICINACHDividendCredit(t *testing.T) {
	msg := "ICICI Bank Acct XX762 is credited with Rs 500.00 on 01-Sep-25. Info NACH*TATA MOTORS LTD*DIV. Avl Bal Rs 12,400.00."

	tx := ICICI.Parse(msg, "AD-ICICIB-S", 1735700000)
	require.NotNil(t, tx)

	assert.True(t, decimal.NewFromFloat(500).Equal(tx.Amount))
	assert.Equal(t, "INCOME", string(tx.Type))
	assert.Equal(t, "TATA MOTORS Dividend", tx.Merchant)
	assert.Equal(t, "762", tx.AccountLast4)
	assert.False(t, tx.IsFromCard)
}
