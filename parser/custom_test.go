package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCustomInstitution(t *testing.T) {
	viper.Set("institutions", []interface{}{
		map[string]interface{}{
			"name":     "Hometown Credit Union",
			"currency": "USD",
			"type":     "EXPENSE",
			"senders": map[string]interface{}{
				"exact": []interface{}{"HTCU"},
			},
			"amount_patterns":   []interface{}{`\$([0-9,]+\.\d{2})`},
			"merchant_patterns": []interface{}{`at ([A-Za-z ]+?) on`},
		},
	})
	t.Cleanup(func() { viper.Set("institutions", nil) })

	r := Default()
	require.NoError(t, r.LoadCustom())

	tx := r.Parse("You spent $12.50 at Coffee House on 08/10.", "HTCU", 1755000000)
	require.NotNil(t, tx)
	assert.Equal(t, "Hometown Credit Union", tx.BankName)
	assert.Equal(t, "USD", tx.Currency)
	assert.Equal(t, "EXPENSE", string(tx.Type))
	assert.True(t, decimal.NewFromFloat(12.50).Equal(tx.Amount))
	assert.Equal(t, "Coffee House", tx.Merchant)
}

func TestLoadCustomSkipKeywords(t *testing.T) {
	viper.Set("institutions", []interface{}{
		map[string]interface{}{
			"name":     "Hometown Credit Union",
			"currency": "USD",
			"type":     "EXPENSE",
			"senders": map[string]interface{}{
				"exact": []interface{}{"HTCU"},
			},
			"amount_patterns": []interface{}{`\$([0-9,]+\.\d{2})`},
			"skip_keywords":   []interface{}{"statement is ready", "reward points"},
		},
	})
	t.Cleanup(func() { viper.Set("institutions", nil) })

	r := Default()
	require.NoError(t, r.LoadCustom())

	assert.Nil(t, r.Parse("Your statement is ready: you spent $840.00 last month.", "HTCU", 1755000000))
	assert.Nil(t, r.Parse("You earned 120 Reward Points on your $60.00 purchase.", "HTCU", 1755000000))

	tx := r.Parse("You spent $12.50 at the pump.", "HTCU", 1755000000)
	require.NotNil(t, tx)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(tx.Amount))
}

func TestLoadCustomRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name  string
		entry map[string]interface{}
	}{
		{
			name:  "missing name",
			entry: map[string]interface{}{"senders": map[string]interface{}{"exact": []interface{}{"X1"}}},
		},
		{
			name:  "no senders",
			entry: map[string]interface{}{"name": "Ghost"},
		},
		{
			name: "bad pattern",
			entry: map[string]interface{}{
				"name":            "Broken",
				"senders":         map[string]interface{}{"exact": []interface{}{"BRK"}},
				"amount_patterns": []interface{}{`([`},
			},
		},
		{
			name: "unknown type",
			entry: map[string]interface{}{
				"name":    "Odd",
				"senders": map[string]interface{}{"exact": []interface{}{"ODD"}},
				"type":    "SIDEWAYS",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("institutions", []interface{}{tt.entry})
			t.Cleanup(func() { viper.Set("institutions", nil) })
			assert.Error(t, Default().LoadCustom())
		})
	}
}
