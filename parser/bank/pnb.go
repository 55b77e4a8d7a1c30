package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	rePNBDebit  = regexp.MustCompile(`(?i)(?:debited|withdrawn)\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	rePNBCredit = regexp.MustCompile(`(?i)credited\s+(?:with\s+)?(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	rePNBFrom   = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\s+on|\s+Ref|\.)`)
	rePNBAcct   = regexp.MustCompile(`(?i)A/?c\s+[X\*]*(\d{4})`)
	rePNBNEFT   = regexp.MustCompile(`(?i)NEFT[:\s-]+([A-Z0-9]+)`)
	rePNBUPIRef = regexp.MustCompile(`(?i)UPI[:\s]+(\d+)`)
	rePNBBal    = regexp.MustCompile(`(?i)Bal\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
)

var PNB = &common.RuleSet{
	Name:     "Punjab National Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Exact:    []string{"PNBBNK", "PNB"},
		Contains: []string{"PUNJAB NATIONAL BANK", "PNBBNK", "PUNBN"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-PNB(?:BNK)?(?:-S)?$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(rePNBDebit, rePNBCredit),
	},
	Merchant: []common.MerchantFunc{pnbMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(rePNBNEFT, rePNBUPIRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(rePNBAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(rePNBBal),
	},
}

func pnbMerchant(msg, sender string) (string, bool) {
	if m := rePNBFrom.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
