package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reUCODebit = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reUCOCred  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reUCOBy    = regexp.MustCompile(`(?i)\bby\s+([^.\n]+?)\s*\.\s*Avl\b`)
	reUCOAcct  = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reUCOBal   = regexp.MustCompile(`(?i)Avl\s*Bal\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var UCO = &common.RuleSet{
	Name:     "UCO Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"UCOBNK", "UCOBANK", "UCO BANK"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reUCODebit, reUCOCred),
	},
	Merchant: []common.MerchantFunc{ucoMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reUCOAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reUCOBal),
	},
}

func ucoMerchant(msg, sender string) (string, bool) {
	if m := reUCOBy.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
