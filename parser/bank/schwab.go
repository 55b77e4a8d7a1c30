package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	schwabDollarPats = []*regexp.Regexp{
		regexp.MustCompile(`(?i)A\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+debit card transaction`),
		regexp.MustCompile(`(?i)A\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+ATM transaction`),
		regexp.MustCompile(`(?i)A\s+\$([0-9,]+(?:\.[0-9]{2})?)\s+ACH\s+(?:transaction|was debited)`),
	}
	reSchwabForeign = regexp.MustCompile(`(?i)A\s+([A-Z]{3})\s*([0-9,]+(?:\.[0-9]{2})?)\s+(?:debit card|ATM|ACH)\s+transaction`)
	reSchwabAcctEnd = regexp.MustCompile(`(?i)account ending (\d{4})`)
)

var Schwab = &common.RuleSet{
	Name:     "Charles Schwab",
	Currency: "USD",
	Senders: common.SenderRule{
		Exact:    []string{"SCHWAB", "24465"},
		Contains: []string{"CHARLES SCHWAB", "SCHWAB BANK"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-SCHWAB-[A-Z]$`)},
	},
	Reject: []common.RejectFunc{schwabReject},
	Amount: []common.AmountFunc{
		common.AmountPatterns(schwabDollarPats...),
		schwabForeignAmount,
	},
	Type:       []common.TypeFunc{schwabType},
	CurrencyIn: []common.CurrencyFunc{schwabCurrency},
	Account: []common.TextFunc{
		common.TextPatterns(reSchwabAcctEnd),
	},
}

func schwabReject(lower string) common.Verdict {
	if strings.Contains(lower, "transaction exceeded") ||
		strings.Contains(lower, "debit card transaction") ||
		strings.Contains(lower, "atm transaction") ||
		strings.Contains(lower, "ach") {
		return common.Accept
	}
	return common.Continue
}

func schwabType(lower string) (common.TransactionType, bool) {
	if strings.Contains(lower, "debit") || strings.Contains(lower, "atm") {
		return common.Expense, true
	}
	return "", false
}

func schwabForeignAmount(msg string) (decimal.Decimal, bool) {
	if m := reSchwabForeign.FindStringSubmatch(msg); m != nil && !isMonthToken(m[1]) {
		return common.ParseAmount(m[2])
	}
	return decimal.Zero, false
}

func schwabCurrency(msg string) (string, bool) {
	if m := reSchwabForeign.FindStringSubmatch(msg); m != nil && !isMonthToken(m[1]) {
		return m[1], true
	}
	return "", false
}
