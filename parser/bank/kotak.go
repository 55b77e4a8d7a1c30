package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reKotakToVPA   = regexp.MustCompile(`(?i)to\s+([^\s]+@[^\s]+)\s+on`)
	reKotakFromVPA = regexp.MustCompile(`(?i)from\s+([^\s]+@[^\s]+)\s+on`)
	reKotakAcct    = regexp.MustCompile(`(?i)AC\s+[X\*]*([0-9]{4})(?:\s|,|\.)`)
	reKotakUPIRef  = regexp.MustCompile(`(?i)UPI\s+Ref\s+([0-9]+)`)
)

// Kotak UPI alerts identify the counterparty only by payment address, so
// the brand table does the naming.
var Kotak = &common.RuleSet{
	Name:     "Kotak Mahindra Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-KOTAKB-[ST]$`)},
	},
	Merchant: []common.MerchantFunc{kotakMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reKotakUPIRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reKotakAcct),
	},
}

func kotakMerchant(msg, sender string) (string, bool) {
	if m := reKotakToVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	if m := reKotakFromVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	return "", false
}
