package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllIsStable(t *testing.T) {
	all := All()
	require.Len(t, all, 49)

	seen := map[string]bool{}
	for _, rs := range all {
		assert.NotEmpty(t, rs.Name)
		assert.NotEmpty(t, rs.Currency)
		assert.False(t, seen[rs.Name], "duplicate rule set %q", rs.Name)
		seen[rs.Name] = true
	}
}

// Shortcodes overlap across institutions; resolution order decides ownership.
func TestSenderResolutionOrder(t *testing.T) {
	tests := []struct {
		sender string
		want   string
	}{
		{"AD-HDFCBK-S", "HDFC Bank"},
		{"SBIBK", "State Bank of India"},
		{"AD-FEDBNK-S", "Federal Bank"},
		{"AX-APAY-S", "Amazon Pay"},
		{"CP-SLICEIT-S", "Slice"},
		{"JIOPBS", "Jio Payments Bank"},
		{"JIOPAY", "JioPay"},
		{"ADCBALERT", "ADCB"},
		{"AD-FAB-A", "FAB"},
		{"87400", "Bancolombia"},
		{"(877) 590-7589", "Old Hickory Credit Union"},
		{"LAXMI_ALERT", "Laxmi Sunrise Bank"},
	}
	for _, tt := range tests {
		rs := resolveSender(t, tt.sender)
		assert.Equal(t, tt.want, rs.Name, "sender %s", tt.sender)
	}
}
