package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reIPPBDebit = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reIPPBCred  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reIPPBAcct  = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reIPPBBal   = regexp.MustCompile(`(?i)Bal(?:ance)?\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var IPPB = &common.RuleSet{
	Name:     "India Post Payments Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-IPBMSG-[ST]$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reIPPBDebit, reIPPBCred),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reIPPBAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reIPPBBal),
	},
}
