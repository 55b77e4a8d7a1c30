package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reOHTxnFor   = regexp.MustCompile(`(?i)transaction for\s+\$([0-9,]+(?:\.[0-9]{2})?)`)
	reOHPosted   = regexp.MustCompile(`(?i)posted.*?\$([0-9,]+(?:\.[0-9]{2})?)`)
	reOHDollar   = regexp.MustCompile(`\$([0-9,]+(?:\.[0-9]{2})?)`)
	reOHPostedTo = regexp.MustCompile(`(?i)posted to\s+([^(]+)`)
	reOHPartOf   = regexp.MustCompile(`(?i)\(part of\s+([^)]+)\)`)
	reOHDigits   = regexp.MustCompile(`(\d{4,})`)
)

// OldHickory alerts arrive from a phone number, so the sender match strips
// formatting first.
var OldHickory = &common.RuleSet{
	Name:     "Old Hickory Credit Union",
	Currency: "USD",
	Senders: common.SenderRule{
		Contains: []string{"OLD HICKORY", "OLDHICKORY"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^\(?877\)?[\s-]?590[\s-]?7589$`)},
	},
	Reject: []common.RejectFunc{oldHickoryReject},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reOHTxnFor, reOHPosted, reOHDollar),
	},
	Type:     []common.TypeFunc{common.FixedType(common.Expense)},
	Merchant: []common.MerchantFunc{oldHickoryMerchant},
	Account:  []common.TextFunc{oldHickoryAccount},
}

func oldHickoryReject(lower string) common.Verdict {
	if strings.Contains(lower, "posted to") || strings.Contains(lower, "transaction for") {
		return common.Accept
	}
	return common.Continue
}

func oldHickoryMerchant(msg, sender string) (string, bool) {
	if m := reOHPostedTo.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func oldHickoryAccount(msg string) (string, bool) {
	if m := reOHPartOf.FindStringSubmatch(msg); m != nil {
		if d := reOHDigits.FindStringSubmatch(m[1]); d != nil {
			return d[1], true
		}
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
