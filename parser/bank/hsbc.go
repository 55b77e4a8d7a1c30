package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reHSBCSpent  = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+(?:was\s+)?spent`)
	reHSBCDebit  = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reHSBCCred   = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reHSBCAt     = regexp.MustCompile(`(?i)\bat\s+([^.\n]+?)\s+on\b`)
	reHSBCCard   = regexp.MustCompile(`(?i)(?:credit|debit)\s+card\s+ending\s+(?:in\s+)?(\d{4})`)
	reHSBCAcct   = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reHSBCBal    = regexp.MustCompile(`(?i)Avl\s*Bal(?:ance)?\s*:?\s*(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)`)
)

var HSBC = &common.RuleSet{
	Name:     "HSBC",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"HSBCIN", "HSBC"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reHSBCSpent, reHSBCDebit, reHSBCCred),
	},
	Type: []common.TypeFunc{hsbcType},
	Merchant: []common.MerchantFunc{
		common.MerchantPatterns(reHSBCAt),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reHSBCCard, reHSBCAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reHSBCBal),
	},
}

func hsbcType(lower string) (common.TransactionType, bool) {
	if strings.Contains(lower, "credit card") && strings.Contains(lower, "spent") {
		return common.Credit, true
	}
	return "", false
}
