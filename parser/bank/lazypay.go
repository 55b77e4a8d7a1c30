package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reLazyAmount    = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reLazyOnMerch   = regexp.MustCompile(`(?i)on\s+([^.]+?)\s+was\s+successful`)
	reLazyTxn       = regexp.MustCompile(`(?i)txn\s+([A-Z0-9]+)`)
	reLazyCorporate = regexp.MustCompile(`(?i)\s*(Private|Pvt\.?|Ltd\.?|Limited|Inc\.?|LLC|LLP).*$`)
	reLazyTrailNum  = regexp.MustCompile(`\s*\d+$`)
)

var LazyPay = &common.RuleSet{
	Name:     "LazyPay",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"LZYPAY", "LAZYPAY"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reLazyAmount),
	},
	Type:     []common.TypeFunc{common.FixedType(common.Credit)},
	Merchant: []common.MerchantFunc{lazyPayMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reLazyTxn),
	},
}

func lazyPayMerchant(msg, sender string) (string, bool) {
	m := reLazyOnMerch.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	name = reLazyCorporate.ReplaceAllString(name, "")
	name = reLazyTrailNum.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}
