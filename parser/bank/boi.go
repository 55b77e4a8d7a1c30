package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reBOIDebit   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reBOICredit  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reBOITowards = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+Ref|\s+on|\.|$)`)
	reBOICredTo  = regexp.MustCompile(`(?i)credited\s+to\s+([^.\n]+?)(?:\s+on|\.|$)`)
	reBOIDebFrom = regexp.MustCompile(`(?i)debited\s+from\s+([^.\n]+?)(?:\s+on|\.|$)`)
	reBOIAcct    = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reBOIBal     = regexp.MustCompile(`(?i)(?:Avl\s+)?Bal\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var BankOfIndia = &common.RuleSet{
	Name:     "Bank of India",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"BOIIND", "BOIBNK"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-BOIIND.*$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reBOIDebit, reBOICredit),
	},
	Merchant: []common.MerchantFunc{
		common.MerchantPatterns(reBOITowards, reBOICredTo, reBOIDebFrom),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reBOIAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reBOIBal),
	},
}
