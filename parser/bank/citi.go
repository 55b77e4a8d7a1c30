package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reCitiAmount  = regexp.MustCompile(`(?i)\$([0-9,]+(?:\.[0-9]{2})?)\s+transaction`)
	reCitiAmount2 = regexp.MustCompile(`(?i)transaction.*?\$([0-9,]+(?:\.[0-9]{2})?)`)
	reCitiMadeAt  = regexp.MustCompile(`(?i)transaction was made at\s+([^.]+?)(?:\s+on|$)`)
	reCitiTxnAt   = regexp.MustCompile(`(?i)transaction at\s+([^.]+?)(?:\s+View|\.|$)`)
	reCitiCard    = regexp.MustCompile(`(?i)card ending in\s+(\d{4})`)
)

var Citi = &common.RuleSet{
	Name:     "Citi",
	Currency: "USD",
	Senders: common.SenderRule{
		Exact:    []string{"CITI", "692484"},
		Contains: []string{"CITIBANK"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-CITI-[A-Z]$`)},
	},
	Reject: []common.RejectFunc{citiReject},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reCitiAmount, reCitiAmount2),
	},
	Type:     []common.TypeFunc{common.FixedType(common.Credit)},
	Merchant: []common.MerchantFunc{citiMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reCitiCard),
	},
	Card: []common.CardFunc{alwaysCard},
}

func citiReject(lower string) common.Verdict {
	if strings.Contains(lower, "transaction was made") || strings.Contains(lower, "transaction at") {
		return common.Accept
	}
	return common.Continue
}

func citiMerchant(msg, sender string) (string, bool) {
	if m := reCitiMadeAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reCitiTxnAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
