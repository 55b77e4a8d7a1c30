package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reCBoIDebit = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+(?:is\s+)?debited`)
	reCBoICred  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+(?:is\s+)?credited`)
	reCBoIAcct  = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reCBoIBal   = regexp.MustCompile(`(?i)(?:Avl\s+)?Bal(?:ance)?\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var CentralBank = &common.RuleSet{
	Name:     "Central Bank of India",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"CENTBK", "CBOI", "CENTRALBANK", "CENTRAL"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reCBoIDebit, reCBoICred),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reCBoIAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reCBoIBal),
	},
}
