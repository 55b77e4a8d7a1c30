package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reApayDebit   = regexp.MustCompile(`(?i)debited\s+for\s+INR\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	reApayPayment = regexp.MustCompile(`(?i)Payment\s+of\s+Rs\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	reApayRs      = regexp.MustCompile(`(?i)Rs\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	reApayINR     = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.[0-9]{1,2})?)`)
	reApayMerch   = regexp.MustCompile(`(?i)successful\s+at\s+([^.\s]+)`)
	reApayRef     = regexp.MustCompile(`(?i)(?:Order|Txn)\s+(?:ID|No\.?)[:\s]*([A-Za-z0-9\-]+)`)
)

// AmazonPay covers Amazon Pay wallet alerts routed through Juspay. Wallet
// spends are borrowed-balance, so the type is fixed.
var AmazonPay = &common.RuleSet{
	Name:     "Amazon Pay",
	Currency: "INR",
	Senders: common.SenderRule{
		Exact:    []string{"AMAZON PAY"},
		Contains: []string{"JUSPAY", "APAY"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reApayDebit, reApayPayment, reApayRs, reApayINR),
	},
	Type:     []common.TypeFunc{common.FixedType(common.Credit)},
	Merchant: []common.MerchantFunc{amazonPayMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reApayRef),
	},
}

func amazonPayMerchant(msg, sender string) (string, bool) {
	if m := reApayMerch.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
