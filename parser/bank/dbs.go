package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reDBSDebWith = regexp.MustCompile(`(?i)debited\s+with\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	reDBSCrWith  = regexp.MustCompile(`(?i)credited\s+with\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
	reDBSINRDeb  = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)\s+(?:is\s+)?debited`)
	reDBSINRCr   = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)\s+(?:is\s+)?credited`)
	reDBSAcct    = regexp.MustCompile(`(?i)account\s+no\.?\s*\*+(\d{4})`)
	reDBSBal     = regexp.MustCompile(`(?i)Current\s+Balance\s+is\s+INR\s*([0-9,]+(?:\.\d{2})?)`)
)

var DBS = &common.RuleSet{
	Name:     "DBS Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"DBSBNK", "DBS"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reDBSDebWith, reDBSCrWith, reDBSINRDeb, reDBSINRCr),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reDBSAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reDBSBal),
	},
}
