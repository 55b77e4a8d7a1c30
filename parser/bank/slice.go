package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reSliceSentTo = regexp.MustCompile(`(?i)sent.*to\s+([A-Z][A-Z\s]+?)\s*\(`)
	reSliceFrom   = regexp.MustCompile(`(?i)from\s+([A-Z][A-Z0-9\s]+?)(?:\s+on|\s+\(|$)`)
)

var Slice = &common.RuleSet{
	Name:     "Slice",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"SLICEIT", "SLCEIT", "SLICE"},
	},
	Type:     []common.TypeFunc{common.FixedType(common.Credit)},
	Merchant: []common.MerchantFunc{sliceMerchant},
}

func sliceMerchant(msg, sender string) (string, bool) {
	if m := reSliceSentTo.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reSliceFrom.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
