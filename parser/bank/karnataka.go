package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reKBLDebit = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reKBLCred  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reKBLVPA   = regexp.MustCompile(`(?i)(?:to|from)\s+([A-Za-z0-9.\-_]+@[A-Za-z]+)`)
	reKBLAcct  = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reKBLBal   = regexp.MustCompile(`(?i)Bal\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var Karnataka = &common.RuleSet{
	Name:     "Karnataka Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"KBLBNK", "KTKBANK", "KARBANK", "KARNATAKA BANK"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reKBLDebit, reKBLCred),
	},
	Merchant: []common.MerchantFunc{karnatakaMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reKBLAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reKBLBal),
	},
}

func karnatakaMerchant(msg, sender string) (string, bool) {
	if m := reKBLVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	return "", false
}
