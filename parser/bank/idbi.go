package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reIDBIDebWith = regexp.MustCompile(`(?i)debited\s+(?:with|for)\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIDBICrWith  = regexp.MustCompile(`(?i)credited\s+(?:with|for)\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIDBIAcct    = regexp.MustCompile(`(?i)A/?c\s+[X\*]*(\d{4})`)
	reIDBIBal     = regexp.MustCompile(`(?i)Bal\s+(?:is\s+)?Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var IDBI = &common.RuleSet{
	Name:     "IDBI Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"IDBIBK", "IDBIBANK", "IDBI"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reIDBIDebWith, reIDBICrWith),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reIDBIAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reIDBIBal),
	},
}
