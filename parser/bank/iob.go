package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reIOBCrBy = regexp.MustCompile(`(?i)credited\s+(?:by|with)\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIOBDrBy = regexp.MustCompile(`(?i)debited\s+(?:by|for|with)\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIOBAcct = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reIOBBal  = regexp.MustCompile(`(?i)Bal\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var IOB = &common.RuleSet{
	Name:     "Indian Overseas Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"IOBCHN", "IOB"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reIOBCrBy, reIOBDrBy),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reIOBAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reIOBBal),
	},
}
