package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reCBEAmount  = regexp.MustCompile(`(?i)ETB\s*([0-9,]+(?:\.[0-9]{2})?)`)
	reCBECredit  = regexp.MustCompile(`(?i)(?:Credited|debited|transfered)\s+(?:with\s+)?ETB\s+([0-9,]+(?:\.[0-9]{2})?)`)
	reCBEAcct    = regexp.MustCompile(`(?i)Account\s+\d?\*+(\d{4})`)
	reCBEBalance = regexp.MustCompile(`(?i)Current Balance is ETB\s+([0-9,]+(?:\.[0-9]{2})?)`)
	reCBERef     = regexp.MustCompile(`(?i)Ref No\s+(\*{0,9}[A-Z0-9]+)`)
	reCBEURLRef  = regexp.MustCompile(`(?i)id=([A-Z0-9]+)`)
	reCBEFrom    = regexp.MustCompile(`(?i)from\s+([^,\s]+\*{0,3}[^,\s]*)`)
	reCBETo      = regexp.MustCompile(`(?i)to\s+([^,\s]+\*{0,5}[^,\s]*)`)
)

var CBE = &common.RuleSet{
	Name:     "Commercial Bank of Ethiopia",
	Currency: "ETB",
	Senders: common.SenderRule{
		Exact:    []string{"CBE"},
		Contains: []string{"COMMERCIALBANK", "CBEBANK"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-CBE-[A-Z]$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reCBECredit, reCBEAmount),
	},
	Merchant: []common.MerchantFunc{cbeMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reCBERef, reCBEURLRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reCBEAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reCBEBalance),
	},
}

func cbeMerchant(msg, sender string) (string, bool) {
	lower := strings.ToLower(msg)
	var m []string
	if strings.Contains(lower, "credited") {
		m = reCBEFrom.FindStringSubmatch(msg)
	} else {
		m = reCBETo.FindStringSubmatch(msg)
	}
	if m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
