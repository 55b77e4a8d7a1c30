package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reBandhanDebit   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reBandhanCred    = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reBandhanTowards = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+on|\s+Ref|\.|$)`)
	reBandhanAcct    = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reBandhanBal     = regexp.MustCompile(`(?i)Clear\s+Bal(?:ance)?\s*(?:is)?\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var Bandhan = &common.RuleSet{
	Name:     "Bandhan Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"BANDHAN"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-(?:BDNSMS|BANDHN)(?:-[ST])?$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reBandhanDebit, reBandhanCred),
	},
	Merchant: []common.MerchantFunc{
		common.MerchantPatterns(reBandhanTowards),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reBandhanAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reBandhanBal),
	},
}
