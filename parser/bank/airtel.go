package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reAirtelCrWith  = regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reAirtelDebFrom = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited\s+from`)
	reAirtelDebWith = regexp.MustCompile(`(?i)debited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reAirtelTxnID   = regexp.MustCompile(`(?i)Txn\s*ID\s*:?\s*([A-Za-z0-9]+)`)
	reAirtelBal     = regexp.MustCompile(`(?i)Bal(?:ance)?\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var Airtel = &common.RuleSet{
	Name:     "Airtel Payments Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"AIRBNK"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reAirtelCrWith, reAirtelDebFrom, reAirtelDebWith),
	},
	Reference: []common.TextFunc{
		common.TextPatterns(reAirtelTxnID),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reAirtelBal),
	},
}
