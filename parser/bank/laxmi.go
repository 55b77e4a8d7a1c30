package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reLaxmiNPR     = regexp.MustCompile(`(?i)NPR\s+([0-9,]+(?:\.[0-9]{2})?)`)
	reLaxmiRemarks = regexp.MustCompile(`(?i)Remarks:\s*\(?([^)\n]+)\)?`)
	reLaxmiAcct    = regexp.MustCompile(`(?i)Your\s+#(\d+)\s+has\s+been`)
	reLaxmiRefNum  = regexp.MustCompile(`(?i)Remarks:.*?([0-9]{6,})`)
)

var Laxmi = &common.RuleSet{
	Name:     "Laxmi Sunrise Bank",
	Currency: "NPR",
	Senders: common.SenderRule{
		Exact:    []string{"LAXMI_ALERT"},
		Contains: []string{"LAXMISUNRISE", "LAXMI"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-LAXMI-[A-Z]$`)},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reLaxmiNPR),
	},
	Merchant: []common.MerchantFunc{laxmiMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reLaxmiRefNum),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reLaxmiAcct),
	},
}

func laxmiMerchant(msg, sender string) (string, bool) {
	if m := reLaxmiRemarks.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
