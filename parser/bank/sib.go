package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reSIBInfoUPI = regexp.MustCompile(`(?i)Info\s*:?\s*UPI/[^/\n]*/[^/\n]*/([^/\n]+?)(?:\s+on\b|/|\.|$)`)
	reSIBAcct    = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reSIBBal     = regexp.MustCompile(`(?i)Bal\s*:?\s*(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
)

var SIB = &common.RuleSet{
	Name:     "South Indian Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"SIBSMS"},
	},
	Merchant: []common.MerchantFunc{sibMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reSIBAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reSIBBal),
	},
}

func sibMerchant(msg, sender string) (string, bool) {
	if m := reSIBInfoUPI.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
