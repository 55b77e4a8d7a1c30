package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reUnionDebit  = regexp.MustCompile(`(?i)Rs\s*[:.]?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reUnionCredit = regexp.MustCompile(`(?i)Rs\s*[:.]?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reUnionPaid   = regexp.MustCompile(`(?i)Rs\s*[:.]?\s*([0-9,]+(?:\.\d{2})?)\s+paid`)
	reUnionVPA    = regexp.MustCompile(`(?i)(?:to|from)\s+VPA\s+([A-Za-z0-9.\-_]+@[A-Za-z]+)`)
	reUnionAcct   = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reUnionBal    = regexp.MustCompile(`(?i)Bal\s*:?\s*Rs\s*[:.]?\s*([0-9,]+(?:\.\d{2})?)`)
)

var Union = &common.RuleSet{
	Name:     "Union Bank of India",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"UNIONB", "UNIONBANK", "UBOI"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reUnionDebit, reUnionCredit, reUnionPaid),
	},
	Merchant: []common.MerchantFunc{unionMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reUnionAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reUnionBal),
	},
}

func unionMerchant(msg, sender string) (string, bool) {
	if m := reUnionVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	return "", false
}
