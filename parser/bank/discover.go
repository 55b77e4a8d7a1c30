package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reDiscAmount  = regexp.MustCompile(`(?i)transaction of\s+\$([0-9,]+(?:\.[0-9]{2})?)`)
	reDiscAmount2 = regexp.MustCompile(`(?i)\$([0-9,]+(?:\.[0-9]{2})?)\s+at`)
	reDiscPaypal  = regexp.MustCompile(`(?i)at\s+(PAYPAL\s+\*[^\s]+)`)
	reDiscAt      = regexp.MustCompile(`(?i)at\s+([^\s]+(?:\s+[^\s]*)*?)(?:\s+on|\s+Text|$)`)
	reDiscDate    = regexp.MustCompile(`^\w+\s+\d{1,2},\s+\d{4}$`)
)

var Discover = &common.RuleSet{
	Name:     "Discover",
	Currency: "USD",
	Senders: common.SenderRule{
		Exact:    []string{"DISCOVER", "347268"},
		Contains: []string{"DISCOVERCARD"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-DISCOVER-[A-Z]$`)},
	},
	Reject: []common.RejectFunc{discoverReject},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reDiscAmount, reDiscAmount2),
	},
	Type:     []common.TypeFunc{common.FixedType(common.Credit)},
	Merchant: []common.MerchantFunc{discoverMerchant},
	Card:     []common.CardFunc{alwaysCard},
}

func discoverReject(lower string) common.Verdict {
	if strings.Contains(lower, "transaction of") {
		return common.Accept
	}
	return common.Continue
}

func discoverMerchant(msg, sender string) (string, bool) {
	if m := reDiscPaypal.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reDiscAt.FindStringSubmatch(msg); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" && !reDiscDate.MatchString(name) {
			return name, true
		}
	}
	return "", false
}
