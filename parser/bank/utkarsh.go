package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reUtkDebit  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reUtkCred   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reUtkForUPI = regexp.MustCompile(`(?i)for\s+UPI\s*-\s*([^.\n]+?)(?:\s+on|\.|$)`)
	reUtkCard   = regexp.MustCompile(`(?i)SuperCard\s+[X\*x]+(\d{4})`)
	reUtkAcct   = regexp.MustCompile(`(?i)A/?c\s+[X\*x]+(\d{4})`)
	reUtkBal    = regexp.MustCompile(`(?i)Bal(?:ance)?\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)

	reUtkMasked = regexp.MustCompile(`^[x0-9]+$`)
)

var Utkarsh = &common.RuleSet{
	Name:     "Utkarsh Small Finance Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"UTKSPR", "UTKARSH", "UTKSFB"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reUtkDebit, reUtkCred),
	},
	Merchant: []common.MerchantFunc{utkarshMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reUtkCard, reUtkAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reUtkBal),
	},
}

// UPI remarks sometimes carry a masked card token instead of a payee name.
func utkarshMerchant(msg, sender string) (string, bool) {
	m := reUtkForUPI.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if reUtkMasked.MatchString(strings.ToLower(name)) {
		return "", false
	}
	return name, true
}
