package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reEverestNPR  = regexp.MustCompile(`(?i)NPR\s+([0-9,]+(?:\.[0-9]{2})?)`)
	reEverestFor  = regexp.MustCompile(`(?i)For:\s*([^.\n]+?)(?:\.\s|$)`)
	reEverestAcct = regexp.MustCompile(`(?i)A/c\s+([^\s]+)`)
	reEverestRef  = regexp.MustCompile(`(\d{6,})`)
)

var Everest = &common.RuleSet{
	Name:     "Everest Bank",
	Currency: "NPR",
	Senders: common.SenderRule{
		Exact:    []string{"EVEREST"},
		Contains: []string{"EVERESTBANK"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^\d{7,10}$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reEverestNPR),
	},
	Merchant: []common.MerchantFunc{everestMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reEverestAcct),
	},
}

// The "For:" remark holds whatever label the payer typed, often a payment
// type and counterparty separated by dashes.
func everestMerchant(msg, sender string) (string, bool) {
	m := reEverestFor.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	remark := strings.TrimSpace(m[1])
	parts := strings.Split(remark, "-")
	for _, p := range parts {
		clean := strings.TrimSpace(p)
		if clean == "" || reEverestRef.MatchString(clean) {
			continue
		}
		return clean, true
	}
	if remark != "" {
		return remark, true
	}
	return "", false
}
