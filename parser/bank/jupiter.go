package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reJupiterDebit  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reJupiterCredit = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reJupiterEnding = regexp.MustCompile(`(?i)a/c\s+ending\s+(\d{4})`)
	reJupiterCard   = regexp.MustCompile(`(?i)card\s+ending\s+(\d{4})`)
	reJupiterUPIRef = regexp.MustCompile(`(?i)UPI\s+Ref[:\s]*(\d+)`)
)

var Jupiter = &common.RuleSet{
	Name:     "Jupiter",
	Currency: "INR",
	Senders: common.SenderRule{
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-JTEDGE(?:-[ST])?$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reJupiterDebit, reJupiterCredit),
	},
	Reference: []common.TextFunc{
		common.TextPatterns(reJupiterUPIRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reJupiterEnding, reJupiterCard),
	},
}
