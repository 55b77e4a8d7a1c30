package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reAUCreditTo = regexp.MustCompile(`(?i)Credited\s+INR\s*([0-9,]+(?:\.\d{2})?)\s+to`)
	reAUDebit    = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reAUUPIParen = regexp.MustCompile(`(?i)UPI[/:][^(\n]*\(([^)\n]+)\)`)
	reAUAcct     = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reAUBal      = regexp.MustCompile(`(?i)Bal\s*:?\s*INR\s*([0-9,]+(?:\.\d{2})?)`)
	reAURef      = regexp.MustCompile(`(?i)Ref\s*(?:No)?\.?[:\s]+(\d+)`)
)

var AU = &common.RuleSet{
	Name:     "AU Small Finance Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"AUBANK"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reAUCreditTo, reAUDebit),
	},
	Merchant: []common.MerchantFunc{auMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reAURef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reAUAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reAUBal),
	},
}

func auMerchant(msg, sender string) (string, bool) {
	if m := reAUUPIParen.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
