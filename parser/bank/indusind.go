package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reIndusDebit   = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reIndusCredit  = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reIndusSpent   = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	reIndusTowards = regexp.MustCompile(`(?i)towards\s+(\S+)`)
	reIndusFrom    = regexp.MustCompile(`(?i)from\s+(\S+?)(?:\.|,|$)`)
	reIndusAt      = regexp.MustCompile(`(?i)\bat\s+([^.\n]+?)\s+on\b`)
	reIndusAcct    = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reIndusBal     = regexp.MustCompile(`(?i)/\s*X+(\d{4})\s*\.?\s*Bal\s*:?\s*(?:INR|Rs\.?)\s*[0-9,]+`)
	reIndusBalAmt  = regexp.MustCompile(`(?i)Bal\s*:?\s*(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)`)
)

var IndusInd = &common.RuleSet{
	Name:     "IndusInd Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Exact:    []string{"INDUSB", "INDUSIND"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-INDUSB(?:-[ST])?$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reIndusDebit, reIndusCredit, reIndusSpent),
	},
	Merchant: []common.MerchantFunc{indusMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reIndusAcct, reIndusBal),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reIndusBalAmt),
	},
}

func indusMerchant(msg, sender string) (string, bool) {
	if m := reIndusAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reIndusTowards.FindStringSubmatch(msg); m != nil {
		return m[1], true
	}
	if m := reIndusFrom.FindStringSubmatch(msg); m != nil {
		return m[1], true
	}
	return "", false
}
