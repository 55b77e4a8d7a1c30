package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reCUBDebFor = regexp.MustCompile(`(?i)debited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reCUBCrFor  = regexp.MustCompile(`(?i)credited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reCUBCrINR  = regexp.MustCompile(`(?i)credited\s+with\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	reCUBAcct   = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reCUBBal    = regexp.MustCompile(`(?i)Bal\s*:?\s*(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
)

var CUB = &common.RuleSet{
	Name:     "City Union Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"CUBANK", "CUBLTD", "CUB"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reCUBDebFor, reCUBCrFor, reCUBCrINR),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reCUBAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reCUBBal),
	},
}
