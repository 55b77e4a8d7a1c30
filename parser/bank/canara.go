package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reCanaraPaidThru = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+paid\s+thru`)
	reCanaraDebit    = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+(?:debited|withdrawn)`)
	reCanaraUPIMerch = regexp.MustCompile(`(?i)thru\s+UPI.*?to\s+([^.\n]+?)(?:\s+on|,|\.)`)
	reCanaraAcct     = regexp.MustCompile(`(?i)A/?c\s+[X\*]*(\d{4})`)
	reCanaraBal      = regexp.MustCompile(`(?i)(?:Avl|Total)\s+Bal\s+(?:is\s+)?Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reCanaraUPIRef   = regexp.MustCompile(`(?i)UPI\s+Ref\s+(\d+)`)
)

var Canara = &common.RuleSet{
	Name:     "Canara Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"CANBNK", "CANARA"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reCanaraPaidThru, reCanaraDebit),
	},
	Merchant: []common.MerchantFunc{canaraMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reCanaraUPIRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reCanaraAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reCanaraBal),
	},
}

func canaraMerchant(msg, sender string) (string, bool) {
	if m := reCanaraUPIMerch.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
