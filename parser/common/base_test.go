package common

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseRejectFilter(t *testing.T) {
	rejected := []string{
		"Your OTP for txn of Rs.500 is 123456. Do not share.",
		"Get 20% discount on your next recharge!",
		"John has requested Rs.250 from you. Ignore if already paid.",
		"Your credit card bill of Rs.4,500 is due on 05-09-25.",
		"Rs.199.00 will be debited from your A/c for Netflix on 05-09-25.",
		"Your transaction of Rs.300 was declined due to insufficient funds.",
		"Your a/c balance is Rs.5000 as of today.",
	}
	for _, msg := range rejected {
		if got := BaseRejectFilter(strings.ToLower(msg)); got != Reject {
			t.Errorf("BaseRejectFilter(%q) = %v, want Reject", msg, got)
		}
	}

	accepted := []string{
		"Rs.500.00 debited from A/c XX1234 to Swiggy.",
		"INR 2,000.00 credited to your Account XX9876.",
		"You have received Rs.150.00 from John.",
	}
	for _, msg := range accepted {
		if got := BaseRejectFilter(strings.ToLower(msg)); got != Accept {
			t.Errorf("BaseRejectFilter(%q) = %v, want Accept", msg, got)
		}
	}
}

func TestBaseType(t *testing.T) {
	tests := []struct {
		msg  string
		want TransactionType
		ok   bool
	}{
		{"rs.500 debited from a/c xx1234", Expense, true},
		{"inr 2,000 credited to your account", Income, true},
		{"rs.300 withdrawn at atm", Expense, true},
		{"you have received rs.150 from john", Income, true},
		{"rs.5,000 transferred towards zerodha broking", Investment, true},
		{"nothing happened here", "", false},
	}
	for _, tt := range tests {
		got, ok := BaseType(tt.msg)
		if got != tt.want || ok != tt.ok {
			t.Errorf("BaseType(%q) = %v, %v; want %v, %v", tt.msg, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBaseCardDetect(t *testing.T) {
	if BaseCardDetect("rs.500 spent on your credit card ending 1234") != true {
		t.Error("credit card message should detect card")
	}
	if BaseCardDetect("rs.500 debited from a/c xx1234 using debit card") != false {
		t.Error("account phrasing must win over card phrasing")
	}
}

func TestRuleSetParseDefaults(t *testing.T) {
	rs := &RuleSet{Name: "Test Bank", Currency: "INR"}

	msg := "Rs.500.00 debited from A/c XX1234 on 01-09-25 to Swiggy Ref No 123456789."
	tx := rs.Parse(msg, "VM-TESTBK", 1756700000)
	require.NotNil(t, tx)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, Expense, tx.Type)
	assert.Equal(t, "INR", tx.Currency)
	assert.Equal(t, "Swiggy", tx.Merchant)
	assert.Equal(t, "123456789", tx.Reference)
	assert.Equal(t, "1234", tx.AccountLast4)
	assert.False(t, tx.IsFromCard)
	assert.Equal(t, "Test Bank", tx.BankName)
	assert.Equal(t, msg, tx.SMSBody)

	tx = rs.Parse("INR 2,000.00 credited to your Account XX9876. Avl Bal INR 5,000.00", "VM-TESTBK", 1756700001)
	require.NotNil(t, tx)
	assert.Equal(t, Income, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(2000)))
	require.NotNil(t, tx.Balance)
	assert.True(t, tx.Balance.Equal(decimal.NewFromInt(5000)))

	assert.Nil(t, rs.Parse("Your OTP for txn of Rs.500 is 123456.", "VM-TESTBK", 0))
	assert.Nil(t, rs.Parse("debited your attention: read our newsletter", "VM-TESTBK", 0))
}

func TestRuleSetPrependOverride(t *testing.T) {
	rs := &RuleSet{
		Name:     "Wallet",
		Currency: "INR",
		Type:     []TypeFunc{FixedType(Credit)},
	}
	tx := rs.Parse("Rs.350.00 spent via wallet at Zomato Ref 99881122.", "WALLET", 1756700002)
	require.NotNil(t, tx)
	assert.Equal(t, Credit, tx.Type)
}

func TestSenderRule(t *testing.T) {
	r := SenderRule{
		Exact:    []string{"HDFCBK"},
		Contains: []string{"FEDBNK"},
	}
	assert.True(t, r.Matches("hdfcbk"))
	assert.True(t, r.Matches("VM-FEDBNK"))
	assert.False(t, r.Matches("VM-SBIINB"))
}
