package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reIDFCDebitRs = regexp.MustCompile(`(?i)Debit\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIDFCDebBy   = regexp.MustCompile(`(?i)debited\s+by\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIDFCCrBy    = regexp.MustCompile(`(?i)credited\s+(?:by|with)\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIDFCAcct    = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reIDFCNewBal  = regexp.MustCompile(`(?i)New\s+Bal\s*:?\s*(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)`)
)

var IDFC = &common.RuleSet{
	Name:     "IDFC FIRST Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"IDFCBK", "IDFCFB", "IDFC"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reIDFCDebitRs, reIDFCDebBy, reIDFCCrBy),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reIDFCAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reIDFCNewBal),
	},
}
